package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API through the official client.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini builds a generator for the given API key and model name. An
// empty key returns nil so the assistant falls back to local answers.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{{Text: req.Text}}
	if req.Blob != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Blob.MIMEType,
				Data:     req.Blob.Data,
			},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	var cfg *genai.GenerateContentConfig
	if req.System != "" || req.JSON {
		cfg = &genai.GenerateContentConfig{}
		if req.System != "" {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: req.System}},
			}
		}
		if req.JSON {
			cfg.ResponseMIMEType = "application/json"
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
