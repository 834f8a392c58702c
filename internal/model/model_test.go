package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validQuestion() Question {
	return Question{
		Question:      "What is the antidote for acetaminophen overdose?",
		Options:       []string{"N-acetylcysteine", "Naloxone", "Flumazenil", "Activated charcoal"},
		CorrectAnswer: 0,
	}
}

func TestBankKey(t *testing.T) {
	assert.Equal(t, "easy", BankKey("Beginner"))
	assert.Equal(t, "medium", BankKey("Intermediate"))
	assert.Equal(t, "hard", BankKey("Advanced"))
	assert.Equal(t, "expert", BankKey("Expert"))
}

func TestQuestionValidate(t *testing.T) {
	q := validQuestion()
	require.NoError(t, q.Validate())

	t.Run("EmptyText", func(t *testing.T) {
		q := validQuestion()
		q.Question = "  "
		assert.Error(t, q.Validate())
	})

	t.Run("ThreeOptions", func(t *testing.T) {
		q := validQuestion()
		q.Options = q.Options[:3]
		assert.Error(t, q.Validate())
	})

	t.Run("CorrectAnswerOutOfRange", func(t *testing.T) {
		for _, idx := range []int{-1, 4} {
			q := validQuestion()
			q.CorrectAnswer = idx
			assert.Error(t, q.Validate(), "index %d", idx)
		}
	})
}

func TestValidateQuestionsRejectsWholeBatch(t *testing.T) {
	bad := validQuestion()
	bad.Options = nil

	err := ValidateQuestions([]Question{validQuestion(), bad, validQuestion()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1")
}

func TestGrade(t *testing.T) {
	quiz := &Quiz{}
	for _, correct := range []int{0, 1, 0} {
		q := validQuestion()
		q.ID = primitive.NewObjectID()
		q.CorrectAnswer = correct
		quiz.Questions = append(quiz.Questions, q)
	}

	score, records := Grade(quiz, []int{0, 0, 0})

	assert.Equal(t, 20, score)
	require.Len(t, records, 3)
	assert.True(t, records[0].IsCorrect)
	assert.False(t, records[1].IsCorrect)
	assert.Equal(t, quiz.Questions[1].ID, records[1].QuestionID)
	assert.InDelta(t, 66.7, Percentage(score, len(quiz.Questions)), 0.05)
}

func TestPercentageEmptyQuiz(t *testing.T) {
	assert.Zero(t, Percentage(0, 0))
}

func TestSamePair(t *testing.T) {
	a := DrugInteraction{Drugs: []string{"Aspirin", "Warfarin"}}
	b := DrugInteraction{Drugs: []string{"warfarin ", "aspirin"}}
	c := DrugInteraction{Drugs: []string{"aspirin", "ibuprofen"}}

	assert.True(t, a.SamePair(b))
	assert.False(t, a.SamePair(c))
	assert.False(t, a.SamePair(DrugInteraction{Drugs: []string{"aspirin"}}))
}

func TestInteractionNormalize(t *testing.T) {
	got, ok := DrugInteraction{
		Drugs:       []string{" warfarin ", "aspirin"},
		Severity:    "high",
		Description: " bleeding ",
	}.Normalize()
	require.True(t, ok)
	assert.Equal(t, []string{"warfarin", "aspirin"}, got.Drugs)
	assert.Equal(t, SeverityHigh, got.Severity)
	assert.Equal(t, "bleeding", got.Description)

	for name, d := range map[string]DrugInteraction{
		"OneDrug":         {Drugs: []string{"warfarin"}, Severity: "Low", Description: "x"},
		"ThreeDrugs":      {Drugs: []string{"a", "b", "c"}, Severity: "Low", Description: "x"},
		"BlankDrug":       {Drugs: []string{"a", " "}, Severity: "Low", Description: "x"},
		"UnknownSeverity": {Drugs: []string{"a", "b"}, Severity: "Severe", Description: "x"},
		"NoDescription":   {Drugs: []string{"a", "b"}, Severity: "Low"},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := d.Normalize()
			assert.False(t, ok)
		})
	}
}
