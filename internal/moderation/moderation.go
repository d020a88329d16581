package moderation

import (
	"context"
	"encoding/json"
	"strings"
)

// Verdict is the outcome of reviewing one guestbook entry.
type Verdict string

const (
	VerdictApprove Verdict = "approve"
	VerdictReject  Verdict = "reject"
	// VerdictFlag leaves the entry pending for manual review.
	VerdictFlag Verdict = "flag"
)

type Result struct {
	Verdict Verdict
	Reason  string
}

// Client reviews a submitted guestbook message.
type Client interface {
	Review(ctx context.Context, authorName, message string) (Result, error)
}

const systemPrompt = `You review guestbook messages left on wedding invitation pages.
Approve warm, congratulatory, or neutral messages. Reject spam, advertising,
harassment, or explicit content. Flag anything you are unsure about.
Respond with JSON only: {"verdict": "approve" | "reject" | "flag", "reason": "<short reason>"}`

func reviewPrompt(authorName, message string) string {
	return "Author: " + authorName + "\nMessage: " + message
}

// ParseVerdict extracts a verdict from raw model output. Providers are asked
// for JSON but do not always comply; unparseable output degrades to flag so a
// confused model can never reject a guest outright.
func ParseVerdict(raw string) Result {
	trimmed := strings.TrimSpace(raw)

	// strip a markdown code fence if the model added one
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var parsed struct {
		Verdict string `json:"verdict"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
		switch Verdict(strings.ToLower(parsed.Verdict)) {
		case VerdictApprove:
			return Result{Verdict: VerdictApprove, Reason: parsed.Reason}
		case VerdictReject:
			return Result{Verdict: VerdictReject, Reason: parsed.Reason}
		case VerdictFlag:
			return Result{Verdict: VerdictFlag, Reason: parsed.Reason}
		}
	}

	return Result{Verdict: VerdictFlag, Reason: "unparseable moderation output"}
}
