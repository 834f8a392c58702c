package model

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptionCount is the number of answer options every question carries
const OptionCount = 4

// Question is a single multiple-choice item
type Question struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Question      string             `json:"question" bson:"question"`
	Options       []string           `json:"options" bson:"options"`
	CorrectAnswer int                `json:"correctAnswer" bson:"correctAnswer"`
	Explanation   string             `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

// Validate checks the shape every stored or generated question must have
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
		return fmt.Errorf("correctAnswer %d out of range", q.CorrectAnswer)
	}
	return nil
}

// ValidateQuestions rejects the whole batch on the first invalid question
func ValidateQuestions(questions []Question) error {
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}
