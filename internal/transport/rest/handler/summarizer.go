package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
	"pharmacademy/internal/service"
)

// Summarizer stores and summarizes research papers
type Summarizer interface {
	Summarize(ctx context.Context, userID primitive.ObjectID, upload service.Upload) (*model.Paper, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*model.Paper, error)
	Get(ctx context.Context, userID primitive.ObjectID, id string) (*model.Paper, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
}

const uploadField = "file"

// SummarizerHandler handles paper endpoints
type SummarizerHandler struct {
	summarizer Summarizer
	maxBytes   int64
}

func NewSummarizerHandler(summarizer Summarizer, maxBytes int64) *SummarizerHandler {
	return &SummarizerHandler{summarizer: summarizer, maxBytes: maxBytes}
}

// Upload handles POST /api/summarizer/upload
func (h *SummarizerHandler) Upload(w http.ResponseWriter, r *http.Request) {
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

	paper, err := h.summarizer.Summarize(r.Context(), userID, upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paper)
}

// List handles GET /api/summarizer/papers
func (h *SummarizerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	papers, err := h.summarizer.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if papers == nil {
		papers = []*model.Paper{}
	}

	writeJSON(w, http.StatusOK, papers)
}

// Get handles GET /api/summarizer/papers/{id}
func (h *SummarizerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	paper, err := h.summarizer.Get(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paper)
}

// Delete handles DELETE /api/summarizer/papers/{id}
func (h *SummarizerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.summarizer.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Paper deleted"})
}

// multipartOverhead is the room left for boundaries and part headers on top of the file cap
const multipartOverhead = 1 << 20

// readUpload pulls the single file part out of a multipart request; the file itself is capped at maxBytes
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (service.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return service.Upload{}, nil, sizeLimitError(maxBytes)
		}
		return service.Upload{}, nil, errors.New("invalid multipart form")
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		r.MultipartForm.RemoveAll()
		return service.Upload{}, nil, errors.New("please upload a file")
	}

	cleanup := func() {
		file.Close()
		r.MultipartForm.RemoveAll()
	}
	if header.Size > maxBytes {
		cleanup()
		return service.Upload{}, nil, sizeLimitError(maxBytes)
	}
	return service.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, cleanup, nil
}

func sizeLimitError(maxBytes int64) error {
	if maxBytes >= 1<<20 {
		return fmt.Errorf("file exceeds %d MB limit", maxBytes>>20)
	}
	return fmt.Errorf("file exceeds %d byte limit", maxBytes)
}
