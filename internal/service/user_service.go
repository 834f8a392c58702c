package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
	"pharmacademy/internal/repository"
	"pharmacademy/internal/storage"
)

const (
	recentQuizLimit  = 5
	activityLimit    = 10
	avatarsFolder    = "pharmacademy/avatars"
	avatarTransform  = "c_fill,h_200,w_200"
	activityTypeQuiz = "quiz"
)

// UserService serves profile, stats and activity
type UserService struct {
	users   repository.UserRepo
	results repository.ResultRepo
	store   storage.BlobStore
}

func NewUserService(users repository.UserRepo, results repository.ResultRepo, store storage.BlobStore) *UserService {
	return &UserService{users: users, results: results, store: store}
}

func (s *UserService) Profile(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.Hex(), ErrNotFound)
	}
	return user, nil
}

// UpdateProfile changes only the non-empty fields of update
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update model.ProfileUpdate) (*model.User, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.University = strings.TrimSpace(update.University)

	user, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.Hex(), ErrNotFound)
	}
	return user, nil
}

// Stats returns the counters, the latest five results and the rounded average score
func (s *UserService) Stats(ctx context.Context, userID primitive.ObjectID) (*model.UserStatsReport, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.results.Recent(ctx, userID, recentQuizLimit)
	if err != nil {
		return nil, err
	}
	summary, err := s.results.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &model.UserStatsReport{
		Stats:         user.Stats,
		RecentQuizzes: make([]model.QuizResult, 0, len(recent)),
		TotalQuizzes:  summary.Count,
	}
	for _, r := range recent {
		report.RecentQuizzes = append(report.RecentQuizzes, *r)
	}
	if summary.Count > 0 {
		report.AverageScore = int(math.Round(float64(summary.TotalScore) / float64(summary.Count)))
	}
	return report, nil
}

// Activity lists the latest quiz completions as feed items
func (s *UserService) Activity(ctx context.Context, userID primitive.ObjectID) ([]model.Activity, error) {
	recent, err := s.results.Recent(ctx, userID, activityLimit)
	if err != nil {
		return nil, err
	}
	activity := make([]model.Activity, len(recent))
	for i, r := range recent {
		activity[i] = model.Activity{
			Type:  activityTypeQuiz,
			Title: fmt.Sprintf("Completed %s Quiz", r.Category),
			Score: r.Score,
			Time:  r.CreatedAt,
		}
	}
	return activity, nil
}

// UploadAvatar stores a square-cropped image and returns its URL
func (s *UserService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, upload Upload) (string, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", fmt.Errorf("%w: please upload an image", ErrInvalidInput)
	}
	obj, err := s.store.Upload(ctx, upload.Body, storage.UploadOptions{
		Folder:         avatarsFolder,
		FileName:       upload.FileName,
		ResourceType:   storage.ResourceImage,
		Transformation: avatarTransform,
	})
	if err != nil {
		return "", fmt.Errorf("store avatar: %w", err)
	}
	if err := s.users.SetAvatar(ctx, userID, obj.URL); err != nil {
		return "", err
	}
	return obj.URL, nil
}
