package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
	"pharmacademy/internal/repository"
)

const (
	chatTitleLength = 50
	noReplyMessage  = "Sorry, I could not generate a response."
)

// ChatService runs conversations with the pharmacy assistant
type ChatService struct {
	completer llm.Completer
	model     string
	chats     repository.ChatRepo
}

func NewChatService(completer llm.Completer, model string, chats repository.ChatRepo) *ChatService {
	return &ChatService{completer: completer, model: model, chats: chats}
}

// Send appends message to an existing chat, or starts a new one when
// chatID is empty, and returns the assistant's reply
func (s *ChatService) Send(ctx context.Context, userID primitive.ObjectID, req model.SendMessageRequest) (*model.ChatReply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: please provide a message", ErrInvalidInput)
	}

	var chat *model.Chat
	if req.ChatID != "" {
		existing, err := s.Get(ctx, userID, req.ChatID)
		if err != nil {
			return nil, err
		}
		chat = existing
	} else {
		chat = &model.Chat{
			User:      userID,
			Title:     chatTitle(req.Message),
			CreatedAt: time.Now(),
		}
	}

	userMsg := model.ChatMessage{Role: model.ChatRoleUser, Content: req.Message, Timestamp: time.Now()}

	history := make([]llm.Message, 0, len(chat.Messages)+2)
	history = append(history, llm.System(chatSystemPrompt))
	for _, m := range chat.Messages {
		role := llm.RoleUser
		if m.Role == model.ChatRoleAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	history = append(history, llm.User(req.Message))

	reply, err := s.completer.Complete(ctx, history, llm.Params{Model: s.model, Temperature: 0.7, MaxTokens: 1024})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = noReplyMessage
	}

	assistantMsg := model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply, Timestamp: time.Now()}
	chat.Messages = append(chat.Messages, userMsg, assistantMsg)
	chat.LastMessage = assistantMsg.Timestamp

	if chat.ID.IsZero() {
		err = s.chats.Create(ctx, chat)
	} else {
		err = s.chats.Append(ctx, chat, userMsg, assistantMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("save chat: %w", err)
	}

	return &model.ChatReply{ChatID: chat.ID.Hex(), Message: reply, Chat: chat}, nil
}

func (s *ChatService) List(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error) {
	return s.chats.ListForUser(ctx, userID)
}

func (s *ChatService) Get(ctx context.Context, userID primitive.ObjectID, id string) (*model.Chat, error) {
	chatID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("chat %s: %w", id, ErrNotFound)
	}
	chat, err := s.chats.GetForUser(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, fmt.Errorf("chat %s: %w", id, ErrNotFound)
	}
	return chat, nil
}

func (s *ChatService) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	chatID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("chat %s: %w", id, ErrNotFound)
	}
	deleted, err := s.chats.DeleteForUser(ctx, chatID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("chat %s: %w", id, ErrNotFound)
	}
	return nil
}

// chatTitle is the first 50 characters of the opening message plus an ellipsis
func chatTitle(message string) string {
	return truncateRunes(message, chatTitleLength) + "..."
}
