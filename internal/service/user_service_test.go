package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
	"pharmacademy/internal/storage"
)

func TestUpdateProfileKeepsEmptyFields(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Name: "Ada", University: "Cairo", Role: model.RoleStudent}
	svc := NewUserService(newFakeUserRepo(user), &fakeResultRepo{}, newFakeBlobStore())

	updated, err := svc.UpdateProfile(context.Background(), user.ID, model.ProfileUpdate{University: "  Alexandria "})

	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "Alexandria", updated.University)
	assert.Equal(t, model.RoleStudent, updated.Role)

	_, err = svc.UpdateProfile(context.Background(), primitive.NewObjectID(), model.ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Stats: model.UserStats{QuizzesCompleted: 7, TotalScore: 215}}
	results := &fakeResultRepo{}
	for i, score := range []int{10, 20, 30, 40, 50, 60, 5} {
		results.results = append(results.results, &model.QuizResult{
			ID:        primitive.NewObjectID(),
			User:      user.ID,
			Score:     score,
			CreatedAt: time.Unix(int64(i), 0),
		})
	}
	results.results = append(results.results, &model.QuizResult{User: primitive.NewObjectID(), Score: 100})
	svc := NewUserService(newFakeUserRepo(user), results, newFakeBlobStore())

	report, err := svc.Stats(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Stats, report.Stats)
	assert.Equal(t, 7, report.TotalQuizzes)
	assert.Equal(t, 31, report.AverageScore) // 215 / 7 = 30.7
	require.Len(t, report.RecentQuizzes, 5)
	assert.Equal(t, 5, report.RecentQuizzes[0].Score)
}

func TestStatsWithoutQuizzes(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID()}
	svc := NewUserService(newFakeUserRepo(user), &fakeResultRepo{}, newFakeBlobStore())

	report, err := svc.Stats(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Zero(t, report.AverageScore)
	assert.NotNil(t, report.RecentQuizzes)
	assert.Empty(t, report.RecentQuizzes)
}

func TestActivity(t *testing.T) {
	userID := primitive.NewObjectID()
	results := &fakeResultRepo{}
	for i := 0; i < 12; i++ {
		results.results = append(results.results, &model.QuizResult{User: userID, Category: "Toxicology", Score: i})
	}
	svc := NewUserService(newFakeUserRepo(), results, newFakeBlobStore())

	activity, err := svc.Activity(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, activity, 10)
	assert.Equal(t, "Completed Toxicology Quiz", activity[0].Title)
	assert.Equal(t, "quiz", activity[0].Type)
	assert.Equal(t, 11, activity[0].Score)
}

func TestUploadAvatar(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID()}
	store := newFakeBlobStore()
	svc := NewUserService(newFakeUserRepo(user), &fakeResultRepo{}, store)

	url, err := svc.UploadAvatar(context.Background(), user.ID, Upload{
		FileName:    "me.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, url, user.Avatar)
	assert.Equal(t, storage.ResourceImage, store.lastOpts.ResourceType)
	assert.Equal(t, "c_fill,h_200,w_200", store.lastOpts.Transformation)

	_, err = svc.UploadAvatar(context.Background(), user.ID, Upload{ContentType: "application/pdf", Body: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
