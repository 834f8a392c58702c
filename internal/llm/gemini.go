package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"pharmacademy/internal/config"
)

// GeminiClient calls the Gemini API
type GeminiClient struct {
	client       *genai.Client
	defaultModel string
}

func NewGemini(ctx context.Context, cfg *config.AIConfig, httpClient *http.Client) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &GeminiClient{client: client, defaultModel: cfg.Models.Chat}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	gc := &genai.GenerateContentConfig{}
	if len(system) > 0 {
		gc.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	if params.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(params.Temperature))
	}
	if params.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(params.MaxTokens)
	}

	model := params.Model
	if model == "" {
		model = c.defaultModel
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, gc)
	if err != nil {
		return "", fmt.Errorf("llm: generate: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	return result.Text(), nil
}
