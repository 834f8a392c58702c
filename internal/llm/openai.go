package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"pharmacademy/internal/config"
)

// OpenAIClient talks to any OpenAI-compatible endpoint (Groq by default)
type OpenAIClient struct {
	llm          llms.Model
	defaultModel string
}

// NewOpenAI creates a client for cfg.BaseURL
func NewOpenAI(cfg *config.AIConfig, httpClient *http.Client) (*OpenAIClient, error) {
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Models.Chat),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create openai client: %w", err)
	}
	return &OpenAIClient{llm: model, defaultModel: cfg.Models.Chat}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	history := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		history = append(history, llms.TextParts(messageType(m.Role), m.Content))
	}

	model := params.Model
	if model == "" {
		model = c.defaultModel
	}
	opts := []llms.CallOption{llms.WithModel(model)}
	if params.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(params.Temperature))
	}
	if params.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(params.MaxTokens))
	}

	resp, err := c.llm.GenerateContent(ctx, history, opts...)
	if err != nil {
		return "", fmt.Errorf("llm: generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

func messageType(r Role) llms.ChatMessageType {
	switch r {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	}
	return llms.ChatMessageTypeHuman
}
