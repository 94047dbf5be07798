package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider answers prompts with a Gemini model in JSON mode
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider connects to the Gemini API. It fails with ErrNoCredential when apiKey is empty.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoCredential
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model, temperature: 0.4}, nil
}

func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

func (g *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(g.temperature)
	m.ResponseMIMEType = "application/json"
	if schema != nil {
		s, err := ToGenaiSchema(schema)
		if err != nil {
			return "", fmt.Errorf("convert schema: %w", err)
		}
		m.ResponseSchema = s
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := extractText(resp)
	if text == "" {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w: blocked (%s)", ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
		// first candidate only
		break
	}
	return text.String()
}
