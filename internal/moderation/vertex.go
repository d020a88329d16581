package moderation

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// VertexClaudeClient implements Client against Claude on Vertex AI via the
// rawPredict HTTP endpoint, authenticated with a service-account token source.
type VertexClaudeClient struct {
	ModelID string
}

func NewVertexClaudeClient() *VertexClaudeClient {
	modelID := os.Getenv("VERTEX_CLAUDE_MODEL_ID")
	if modelID == "" {
		modelID = "claude-sonnet-4-5@20250929"
	}
	return &VertexClaudeClient{ModelID: modelID}
}

func (c *VertexClaudeClient) Review(ctx context.Context, authorName, message string) (Result, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	location := os.Getenv("GOOGLE_CLOUD_VERTEXAI_LOCATION") // "us-east5"

	// Build authed HTTP client from SA JSON
	enc := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if enc == "" {
		return Result{}, fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}
	saJSON, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return Result{}, fmt.Errorf("decode sa json: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, saJSON, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return Result{}, fmt.Errorf("CredentialsFromJSON: %w", err)
	}
	httpClient := oauth2.NewClient(ctx, creds.TokenSource)

	url := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/anthropic/models/%s:rawPredict",
		location, projectID, location, c.ModelID,
	)

	body := map[string]interface{}{
		"anthropic_version": "vertex-2023-10-16",
		"system":            systemPrompt,
		"messages": []map[string]interface{}{
			{"role": "user", "content": reviewPrompt(authorName, message)},
		},
		"max_tokens": 256,
		"stream":     false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("vertex rawPredict status %d: %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, fmt.Errorf("unmarshal response: %w", err)
	}

	var sb strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return ParseVerdict(sb.String()), nil
}
