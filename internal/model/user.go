package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user may hold
const (
	RoleStudent    = "student"
	RoleProfessor  = "professor"
	RolePharmacist = "pharmacist"
)

// UserStats are aggregate counters; only ever incremented
type UserStats struct {
	QuizzesCompleted int `json:"quizzesCompleted" bson:"quizzesCompleted"`
	StudyStreak      int `json:"studyStreak" bson:"studyStreak"`
	PapersSummarized int `json:"papersSummarized" bson:"papersSummarized"`
	TotalScore       int `json:"totalScore" bson:"totalScore"`
}

// User is a registered account
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	Role         string             `json:"role" bson:"role"`
	University   string             `json:"university,omitempty" bson:"university,omitempty"`
	Avatar       string             `json:"avatar" bson:"avatar"`
	Stats        UserStats          `json:"stats" bson:"stats"`
	LastActive   time.Time          `json:"lastActive" bson:"lastActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserStatsReport is returned by the stats endpoint
type UserStatsReport struct {
	Stats         UserStats    `json:"stats"`
	RecentQuizzes []QuizResult `json:"recentQuizzes"`
	AverageScore  int          `json:"averageScore"`
	TotalQuizzes  int          `json:"totalQuizzes"`
}

// Activity is one item of the activity feed
type Activity struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Score int       `json:"score"`
	Time  time.Time `json:"time"`
}

// ProfileUpdate carries the editable profile fields; empty fields are left unchanged
type ProfileUpdate struct {
	Name       string `json:"name"`
	University string `json:"university"`
	Role       string `json:"role" validate:"omitempty,oneof=student professor pharmacist"`
}
