package moderation

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIClient implements Client for any OpenAI-compatible API (OpenAI, Groq,
// local llama servers) via langchaingo.
type OpenAIClient struct {
	llm llms.Model
}

type OpenAIConfig struct {
	Model   string // e.g. "gpt-4.1", "llama-3.1-70b-versatile"
	BaseURL string // optional: for Groq or other OpenAI-compatible APIs
	APIKey  string // if not set, it falls back to env
}

func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &OpenAIClient{llm: llm}, nil
}

func (c *OpenAIClient) Review(ctx context.Context, authorName, message string) (Result, error) {
	msgs := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, reviewPrompt(authorName, message)),
	}

	resp, err := c.llm.GenerateContent(ctx, msgs)
	if err != nil {
		return Result{}, err
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("no choices returned from LLM")
	}

	return ParseVerdict(resp.Choices[0].Content), nil
}
