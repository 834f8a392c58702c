package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"pharmacademy/internal/model"
)

// InteractionChecker looks up drug interactions and monographs
type InteractionChecker interface {
	Check(ctx context.Context, drugs []string) (*model.InteractionReport, error)
	DrugInfo(ctx context.Context, name string) (*model.DrugInfo, error)
}

// InteractionHandler handles drug interaction endpoints
type InteractionHandler struct {
	interactions InteractionChecker
}

func NewInteractionHandler(interactions InteractionChecker) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

// Check handles POST /api/interaction/check
func (h *InteractionHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req model.CheckInteractionsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.interactions.Check(r.Context(), req.Drugs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// DrugInfo handles GET /api/interaction/drug/{name}
func (h *InteractionHandler) DrugInfo(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	info, err := h.interactions.DrugInfo(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
