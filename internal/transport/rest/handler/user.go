package handler

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
	"pharmacademy/internal/service"
)

// Profiles serves the account, stats and activity of a user
type Profiles interface {
	Profile(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update model.ProfileUpdate) (*model.User, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (*model.UserStatsReport, error)
	Activity(ctx context.Context, userID primitive.ObjectID) ([]model.Activity, error)
	UploadAvatar(ctx context.Context, userID primitive.ObjectID, upload service.Upload) (string, error)
}

// UserHandler handles profile endpoints
type UserHandler struct {
	profiles Profiles
	maxBytes int64
}

func NewUserHandler(profiles Profiles, maxBytes int64) *UserHandler {
	return &UserHandler{profiles: profiles, maxBytes: maxBytes}
}

// Profile handles GET /api/user/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.profiles.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var update model.ProfileUpdate
	if err := decode(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.profiles.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Stats handles GET /api/user/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	report, err := h.profiles.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Activity handles GET /api/user/activity
func (h *UserHandler) Activity(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	activity, err := h.profiles.Activity(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// UploadAvatar handles POST /api/user/avatar
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	upload, cleanup, err := readUpload(w, r, h.maxBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	url, err := h.profiles.UploadAvatar(r.Context(), userID, upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"avatar": url})
}
