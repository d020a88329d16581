package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerdictJSON(t *testing.T) {
	r := ParseVerdict(`{"verdict": "approve", "reason": "warm wishes"}`)
	assert.Equal(t, VerdictApprove, r.Verdict)
	assert.Equal(t, "warm wishes", r.Reason)

	r = ParseVerdict(`{"verdict": "REJECT", "reason": "spam link"}`)
	assert.Equal(t, VerdictReject, r.Verdict)

	r = ParseVerdict(`{"verdict": "flag", "reason": "ambiguous"}`)
	assert.Equal(t, VerdictFlag, r.Verdict)
}

func TestParseVerdictCodeFence(t *testing.T) {
	raw := "```json\n{\"verdict\": \"approve\", \"reason\": \"fine\"}\n```"
	r := ParseVerdict(raw)
	assert.Equal(t, VerdictApprove, r.Verdict)
}

func TestParseVerdictUnparseableDegradesToFlag(t *testing.T) {
	for _, raw := range []string{
		"",
		"I think this message is fine",
		`{"verdict": "maybe"}`,
		"{broken json",
	} {
		r := ParseVerdict(raw)
		assert.Equal(t, VerdictFlag, r.Verdict, "input %q", raw)
	}
}
