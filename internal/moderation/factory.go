package moderation

import (
	"context"
	"fmt"
)

type Provider string

const (
	ProviderGemini       Provider = "gemini"
	ProviderOpenAI       Provider = "openai" // openai / groq / llama etc.
	ProviderVertexClaude Provider = "vertex_claude"
)

// NewClient builds a moderation client for the configured provider kind.
func NewClient(ctx context.Context, kind string) (Client, error) {
	switch Provider(kind) {
	case ProviderGemini:
		return NewGeminiClient(ctx)
	case ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{})
	case ProviderVertexClaude:
		return NewVertexClaudeClient(), nil
	default:
		return nil, fmt.Errorf("unknown moderation provider %s", kind)
	}
}
