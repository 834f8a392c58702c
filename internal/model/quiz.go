package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories accepted for quiz generation
var Categories = []string{
	"Pharmacology",
	"Medicinal Chemistry",
	"Clinical Pharmacy",
	"Pharmaceutics",
	"Pharmacotherapy",
	"Toxicology",
}

// Difficulty labels shown to users
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Difficulties accepted for quiz generation
var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// QuizSource records which path supplied the questions
type QuizSource string

const (
	QuizSourceBank     QuizSource = "bank"
	QuizSourceAI       QuizSource = "ai"
	QuizSourceFallback QuizSource = "fallback"
)

// PointsPerCorrect is awarded for every correctly answered question
const PointsPerCorrect = 10

// BankKey maps a difficulty label to the question bank's bucket key
func BankKey(difficulty string) string {
	switch difficulty {
	case DifficultyBeginner:
		return "easy"
	case DifficultyIntermediate:
		return "medium"
	case DifficultyAdvanced:
		return "hard"
	}
	return strings.ToLower(difficulty)
}

// Quiz is a generated question set; never mutated after creation
type Quiz struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Category   string             `json:"category" bson:"category"`
	Difficulty string             `json:"difficulty" bson:"difficulty"`
	Questions  []Question         `json:"questions" bson:"questions"`
	CreatedBy  primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Source     QuizSource         `json:"source" bson:"source"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// AnswerRecord is one graded answer inside a result
type AnswerRecord struct {
	QuestionID     primitive.ObjectID `json:"questionId" bson:"questionId"`
	SelectedAnswer int                `json:"selectedAnswer" bson:"selectedAnswer"`
	IsCorrect      bool               `json:"isCorrect" bson:"isCorrect"`
}

// QuizResult is a submitted attempt; owns its answer records
type QuizResult struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Quiz           primitive.ObjectID `json:"quiz" bson:"quiz"`
	Category       string             `json:"category" bson:"category"`
	Difficulty     string             `json:"difficulty" bson:"difficulty"`
	Score          int                `json:"score" bson:"score"`
	TotalQuestions int                `json:"totalQuestions" bson:"totalQuestions"`
	TimeTaken      int                `json:"timeTaken" bson:"timeTaken"` // seconds
	Answers        []AnswerRecord     `json:"answers" bson:"answers"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// Grade scores answers against the quiz; answers beyond the quiz length are ignored
func Grade(quiz *Quiz, answers []int) (int, []AnswerRecord) {
	score := 0
	records := make([]AnswerRecord, 0, len(answers))
	for i, selected := range answers {
		if i >= len(quiz.Questions) {
			break
		}
		q := quiz.Questions[i]
		correct := selected == q.CorrectAnswer
		if correct {
			score += PointsPerCorrect
		}
		records = append(records, AnswerRecord{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			IsCorrect:      correct,
		})
	}
	return score, records
}

// Percentage of the maximum score; zero for an empty quiz
func Percentage(score, totalQuestions int) float64 {
	if totalQuestions == 0 {
		return 0
	}
	return float64(score) / float64(totalQuestions*PointsPerCorrect) * 100
}

// LeaderboardEntry is one ranked row of the global leaderboard
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	University       string `json:"university,omitempty"`
	Score            int    `json:"score"`
	QuizzesCompleted int    `json:"quizzesCompleted"`
}

// DefaultQuestionCount is used when a generate request omits the count
const DefaultQuestionCount = 10

// GenerateQuizRequest is the body of a quiz generation request
type GenerateQuizRequest struct {
	Category          string `json:"category" validate:"required"`
	Difficulty        string `json:"difficulty" validate:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" validate:"omitempty,min=1,max=50"`
}

// SubmitQuizRequest is the body of a quiz submission
type SubmitQuizRequest struct {
	QuizID    string `json:"quizId" validate:"required"`
	Answers   []int  `json:"answers" validate:"required"`
	TimeTaken int    `json:"timeTaken" validate:"min=0"`
}

// SubmitResult is returned after grading
type SubmitResult struct {
	Result         *QuizResult `json:"result"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"totalQuestions"`
	Percentage     float64     `json:"percentage"`
}
