package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/config"
	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
	"pharmacademy/internal/repository"
	"pharmacademy/internal/storage"
)

const (
	// summaryInputLimit caps the characters of paper text sent to the model
	summaryInputLimit = 8000
	papersFolder      = "pharmacademy/papers"
	defaultCategory   = "General"
	pdfContentType    = "application/pdf"
)

// TextExtractor pulls plain text out of a file on disk
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Upload is an incoming paper
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// SummarizerService stores uploaded papers and summarizes them
type SummarizerService struct {
	completer llm.Completer
	model     string
	store     storage.BlobStore
	extractor TextExtractor
	papers    repository.PaperRepo
	users     repository.UserRepo
	spoolDir  string
}

func NewSummarizerService(
	completer llm.Completer,
	model string,
	store storage.BlobStore,
	extractor TextExtractor,
	papers repository.PaperRepo,
	users repository.UserRepo,
	spoolDir string,
) *SummarizerService {
	return &SummarizerService{
		completer: completer,
		model:     model,
		store:     store,
		extractor: extractor,
		papers:    papers,
		users:     users,
		spoolDir:  spoolDir,
	}
}

// Summarize spools the upload to a temp file, stores it, extracts its text
// and asks the model for a structured summary. An unparsable answer is
// kept verbatim as the full summary. The temp file never outlives the call.
func (s *SummarizerService) Summarize(ctx context.Context, userID primitive.ObjectID, upload Upload) (*model.Paper, error) {
	if upload.ContentType != pdfContentType {
		return nil, fmt.Errorf("%w: only PDF files are allowed", ErrInvalidInput)
	}
	log := config.WithContext(ctx).WithField("file", upload.FileName)

	spool, err := os.CreateTemp(s.spoolDir, "paper-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	defer os.Remove(spool.Name())
	defer spool.Close()

	if _, err := io.Copy(spool, upload.Body); err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}

	obj, err := s.store.Upload(ctx, spool, storage.UploadOptions{
		Folder:       papersFolder,
		FileName:     upload.FileName,
		ResourceType: storage.ResourceRaw,
	})
	if err != nil {
		return nil, fmt.Errorf("store paper: %w", err)
	}

	text, err := s.extractor.ExtractText(spool.Name())
	if err != nil {
		s.discard(ctx, obj)
		return nil, fmt.Errorf("extract text: %w", err)
	}

	completion, err := s.completer.Complete(ctx, []llm.Message{
		llm.System(summarySystemPrompt),
		llm.User(fmt.Sprintf(summaryUserPrompt, truncateRunes(text, summaryInputLimit))),
	}, llm.Params{Model: s.model, Temperature: 0.5, MaxTokens: 1500})
	if err != nil {
		s.discard(ctx, obj)
		return nil, fmt.Errorf("summarize: %w", err)
	}

	var summary model.PaperSummary
	if err := llm.FirstObject(completion).Decode(&summary); err != nil {
		log.WithError(err).Warn("unparsable summary, keeping raw completion")
		summary = model.PaperSummary{
			KeyFindings: model.SummaryPlaceholder,
			Methodology: model.SummaryPlaceholder,
			Conclusions: model.SummaryPlaceholder,
			FullSummary: completion,
		}
	}

	paper := &model.Paper{
		User:             userID,
		Title:            paperTitle(upload.FileName),
		OriginalFileName: upload.FileName,
		FileURL:          obj.URL,
		BlobID:           obj.PublicID,
		Summary:          summary,
		Category:         defaultCategory,
		CreatedAt:        time.Now(),
	}
	if err := s.papers.Create(ctx, paper); err != nil {
		s.discard(ctx, obj)
		return nil, fmt.Errorf("save paper: %w", err)
	}
	if err := s.users.IncrementStats(ctx, userID, repository.StatsDelta{PapersSummarized: 1}); err != nil {
		log.WithError(err).Warn("failed to update papers summarized")
	}
	return paper, nil
}

// discard removes a stored blob whose paper was never saved
func (s *SummarizerService) discard(ctx context.Context, obj *storage.Object) {
	if err := s.store.Delete(ctx, obj.PublicID, storage.ResourceRaw); err != nil {
		config.WithContext(ctx).WithError(err).Warn("failed to remove orphaned upload")
	}
}

func (s *SummarizerService) List(ctx context.Context, userID primitive.ObjectID) ([]*model.Paper, error) {
	return s.papers.ListForUser(ctx, userID)
}

func (s *SummarizerService) Get(ctx context.Context, userID primitive.ObjectID, id string) (*model.Paper, error) {
	paperID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("paper %s: %w", id, ErrNotFound)
	}
	paper, err := s.papers.GetForUser(ctx, paperID, userID)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, fmt.Errorf("paper %s: %w", id, ErrNotFound)
	}
	return paper, nil
}

// Delete removes the stored file, then the record
func (s *SummarizerService) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	paper, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if paper.BlobID != "" {
		if err := s.store.Delete(ctx, paper.BlobID, storage.ResourceRaw); err != nil {
			return fmt.Errorf("delete stored file: %w", err)
		}
	}
	return s.papers.Delete(ctx, paper.ID)
}

func paperTitle(fileName string) string {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return fileName[:len(fileName)-len(".pdf")]
	}
	return fileName
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
