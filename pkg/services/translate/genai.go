package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMalformedTranslation means the model reply was not the expected JSON
// object of field values.
var ErrMalformedTranslation = errors.New("malformed translation response")

// Client translates a flat field map into the target language. Keys are
// returned unchanged; only values are translated.
type Client interface {
	TranslateFields(ctx context.Context, fields map[string]string, lang string) (map[string]string, error)
}

// GenAIClient talks to the Gemini API.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a Gemini-backed translation client.
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

// TranslateFields sends the whole field map in one request and expects the
// same keys back with translated values.
func (c *GenAIClient) TranslateFields(ctx context.Context, fields map[string]string, lang string) (map[string]string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(string(payload), lang)
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI translate failed: %w", err)
	}

	var out map[string]string
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTranslation, err)
	}
	if len(out) == 0 {
		return nil, ErrMalformedTranslation
	}
	return out, nil
}

func buildPrompt(payload, lang string) string {
	var b strings.Builder
	b.WriteString("Translate every value in the following JSON object to ")
	b.WriteString(lang)
	b.WriteString(". Keep all keys exactly as they are, keep dates, numbers and ")
	b.WriteString("codes unchanged, and reply with the translated JSON object only.\n\n")
	b.WriteString(payload)
	return b.String()
}
