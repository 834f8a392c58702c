package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat roles stored in history
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation
type ChatMessage struct {
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Chat is a conversation with the pharmacy assistant
type Chat struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Title       string             `json:"title" bson:"title"`
	Messages    []ChatMessage      `json:"messages,omitempty" bson:"messages"`
	LastMessage time.Time          `json:"lastMessage" bson:"lastMessage"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ChatReply is returned after a message is sent
type ChatReply struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
	Chat    *Chat  `json:"chat"`
}

// SendMessageRequest is the body of a chat message
type SendMessageRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}
