package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
)

// Assistant runs chats with the pharmacy assistant
type Assistant interface {
	Send(ctx context.Context, userID primitive.ObjectID, req model.SendMessageRequest) (*model.ChatReply, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error)
	Get(ctx context.Context, userID primitive.ObjectID, id string) (*model.Chat, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
}

// ChatHandler handles chat endpoints
type ChatHandler struct {
	assistant Assistant
}

func NewChatHandler(assistant Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Send handles POST /api/chat/message
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.SendMessageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.assistant.Send(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// List handles GET /api/chat
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	chats, err := h.assistant.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if chats == nil {
		chats = []*model.Chat{}
	}

	writeJSON(w, http.StatusOK, chats)
}

// Get handles GET /api/chat/{id}
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	chat, err := h.assistant.Get(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chat)
}

// Delete handles DELETE /api/chat/{id}
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.assistant.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat deleted"})
}
