package ai

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client      *genai.Client
	textModel   string
	visionModel string
}

// GeminiConfig configures NewGeminiGenerator.
type GeminiConfig struct {
	APIKey      string
	TextModel   string
	VisionModel string
	// HTTPClient is optional; the SDK default is used when nil.
	HTTPClient *http.Client
}

// NewGeminiGenerator creates a generator for the Gemini developer API.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{
		client:      client,
		textModel:   cfg.TextModel,
		visionModel: cfg.VisionModel,
	}, nil
}

// GenerateText sends prompt to the text model.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content (%s): %w", g.textModel, err)
	}
	return resp.Text(), nil
}

// GenerateVision sends prompt followed by the image to the vision model.
func (g *GeminiGenerator) GenerateVision(ctx context.Context, prompt string, img Image) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(img.Data, img.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.visionModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content (%s): %w", g.visionModel, err)
	}
	return resp.Text(), nil
}
