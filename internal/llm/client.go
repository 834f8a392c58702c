// Package llm wraps the external completion providers behind one interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pharmacademy/internal/config"
)

// ErrDisabled is returned by the client used when no provider key is configured
var ErrDisabled = errors.New("llm: no provider configured")

// ErrEmptyResponse means the provider answered without any choice
var ErrEmptyResponse = errors.New("llm: empty response")

// Role of a chat message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat-style turn sent to the provider
type Message struct {
	Role    Role
	Content string
}

// Params are per-call generation settings. Zero values use provider defaults.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Completer performs a single completion round trip
type Completer interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}

// New builds the completer selected by cfg.Provider
func New(ctx context.Context, cfg *config.AIConfig) (Completer, error) {
	if !cfg.IsEnabled() {
		return Disabled{}, nil
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGemini(ctx, cfg, httpClient)
	case config.ProviderGroq:
		return NewOpenAI(cfg, httpClient)
	}
	return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
}

// System and User are shorthands for building message lists
func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

func User(content string) Message { return Message{Role: RoleUser, Content: content} }

// Disabled fails every call; callers fall back as they would on a network error
type Disabled struct{}

func (Disabled) Complete(context.Context, []Message, Params) (string, error) {
	return "", ErrDisabled
}
