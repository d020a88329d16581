package libraries

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type Clients struct {
	GCS          *storage.Client
	Vertex       *aiplatform.PredictionClient
	ProjectID    string
	VertexRegion string
	Bucket       string
}

var clients *Clients

func GetClients() *Clients {
	return clients
}

func NewClients(ctx context.Context) (*Clients, error) {
	// read base64 encoded JSON
	encoded := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if encoded == "" {
		return nil, fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}

	// decode JSON
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account json: %w", err)
	}

	credOpt := option.WithCredentialsJSON(decoded)

	// create GCS client
	gcsClient, err := storage.NewClient(ctx, credOpt)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	// create Vertex AI Prediction client
	vertexClient, err := aiplatform.NewPredictionClient(ctx, credOpt)
	if err != nil {
		return nil, fmt.Errorf("vertex.NewPredictionClient: %w", err)
	}

	clients = &Clients{
		GCS:          gcsClient,
		Vertex:       vertexClient,
		ProjectID:    os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		VertexRegion: os.Getenv("GOOGLE_CLOUD_VERTEXAI_LOCATION"),
		Bucket:       os.Getenv("ORNAMENT_ARTWORK_BUCKET"),
	}

	return clients, nil
}

// UploadArtwork writes decoded ornament artwork to the configured bucket and
// returns its public URL. Callers fall back to inline storage when no bucket
// is configured.
func (c *Clients) UploadArtwork(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if c.Bucket == "" {
		return "", fmt.Errorf("ORNAMENT_ARTWORK_BUCKET not set")
	}

	w := c.GCS.Bucket(c.Bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("write artwork object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close artwork object: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.Bucket, objectName), nil
}

func (c *Clients) Close() {
	c.GCS.Close()
	c.Vertex.Close()
}
