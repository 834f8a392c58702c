package handler

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
)

// QuizRunner generates, grades and lists quizzes
type QuizRunner interface {
	Generate(ctx context.Context, userID primitive.ObjectID, req model.GenerateQuizRequest) (*model.Quiz, error)
	Submit(ctx context.Context, userID primitive.ObjectID, req model.SubmitQuizRequest) (*model.SubmitResult, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]*model.QuizResult, error)
}

// Leaderboard returns the global ranking
type Leaderboard interface {
	Top(ctx context.Context) ([]model.LeaderboardEntry, error)
}

// QuizHandler handles quiz endpoints
type QuizHandler struct {
	quizSvc     QuizRunner
	leaderboard Leaderboard
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc QuizRunner, leaderboard Leaderboard) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc, leaderboard: leaderboard}
}

// Generate handles POST /api/quiz/generate
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.GenerateQuizRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.quizSvc.Generate(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

// Submit handles POST /api/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.SubmitQuizRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.quizSvc.Submit(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /api/quiz/history
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	results, err := h.quizSvc.History(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if results == nil {
		results = []*model.QuizResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

// Leaderboard handles GET /api/quiz/leaderboard
func (h *QuizHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.Top(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
