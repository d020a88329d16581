package moderation

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient implements Client for Gemini via Google AI API
type GeminiClient struct {
	client  *genai.Client
	modelID string

	Temperature float32
	MaxTokens   int32
}

func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	modelID := os.Getenv("GEMINI_MODEL_ID")

	if apiKey == "" || modelID == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY and GEMINI_MODEL_ID must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GeminiClient{
		client:      client,
		modelID:     modelID,
		Temperature: 0,
		MaxTokens:   256,
	}, nil
}

func (c *GeminiClient) Review(ctx context.Context, authorName, message string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:     &c.Temperature,
		MaxOutputTokens: c.MaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: reviewPrompt(authorName, message)}},
	}}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelID, contents, genConfig)
	if err != nil {
		return Result{}, fmt.Errorf("gemini GenerateContent: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return Result{}, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
		}
	}

	return ParseVerdict(sb.String()), nil
}
