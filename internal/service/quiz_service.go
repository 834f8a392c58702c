package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/cache"
	"pharmacademy/internal/config"
	"pharmacademy/internal/llm"
	"pharmacademy/internal/model"
	"pharmacademy/internal/questionbank"
	"pharmacademy/internal/repository"
)

const (
	// minBankQuestions is the smallest bank sample served without asking the model
	minBankQuestions = 5
	historyLimit     = 20
	defaultExplain   = "No explanation provided"
)

// QuizService resolves quiz content and grades submissions
type QuizService struct {
	bank        *questionbank.Bank
	completer   llm.Completer
	model       string
	quizzes     repository.QuizRepo
	results     repository.ResultRepo
	users       repository.UserRepo
	quizCache   cache.QuizCache // optional
	leaderboard *LeaderboardService
}

// NewQuizService creates a new quiz service. quizCache may be nil.
func NewQuizService(
	bank *questionbank.Bank,
	completer llm.Completer,
	model string,
	quizzes repository.QuizRepo,
	results repository.ResultRepo,
	users repository.UserRepo,
	quizCache cache.QuizCache,
	leaderboard *LeaderboardService,
) *QuizService {
	return &QuizService{
		bank:        bank,
		completer:   completer,
		model:       model,
		quizzes:     quizzes,
		results:     results,
		users:       users,
		quizCache:   quizCache,
		leaderboard: leaderboard,
	}
}

// Resolve picks the questions for a quiz: a bank sample when it holds at
// least five, otherwise model generation, otherwise the static fallback table.
func (s *QuizService) Resolve(ctx context.Context, category, difficulty string, count int) ([]model.Question, model.QuizSource, error) {
	log := config.WithContext(ctx).WithField("category", category).WithField("difficulty", difficulty)

	key := model.BankKey(difficulty)
	if sample := s.bank.Sample(category, key, count); len(sample) >= minBankQuestions {
		log.WithField("available", s.bank.Available(category, key)).Info("serving quiz from question bank")
		return sample, model.QuizSourceBank, nil
	}

	questions, err := s.generate(ctx, category, difficulty, count)
	if err == nil {
		log.WithField("count", len(questions)).Info("generated quiz questions")
		return questions, model.QuizSourceAI, nil
	}
	log.WithError(err).Warn("quiz generation failed, trying fallback table")

	questions, err = questionbank.Fallback(category, count)
	if err != nil {
		return nil, "", fmt.Errorf("resolve quiz for %q: %w", category, err)
	}
	return questions, model.QuizSourceFallback, nil
}

func (s *QuizService) generate(ctx context.Context, category, difficulty string, count int) ([]model.Question, error) {
	text, err := s.completer.Complete(ctx, []llm.Message{
		llm.System(quizSystemPrompt),
		llm.User(fmt.Sprintf(quizUserPrompt, count, category, difficulty)),
	}, llm.Params{Model: s.model, Temperature: 0.7, MaxTokens: 3000})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, llm.ErrEmptyResponse
	}
	return parseQuestions(text)
}

// generatedQuestion mirrors the requested JSON shape; pointers detect absent fields
type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// parseQuestions accepts a bare JSON array or an object with a "questions" array.
// Any invalid question rejects the batch.
func parseQuestions(text string) ([]model.Question, error) {
	ex := llm.Whole(text)
	if !ex.OK() {
		return nil, ex.Err
	}

	var generated []generatedQuestion
	if strings.HasPrefix(ex.JSON, "[") {
		if err := ex.Decode(&generated); err != nil {
			return nil, err
		}
	} else {
		var wrapped struct {
			Questions []generatedQuestion `json:"questions"`
		}
		if err := ex.Decode(&wrapped); err != nil {
			return nil, err
		}
		if wrapped.Questions == nil {
			return nil, errors.New("response has no questions array")
		}
		generated = wrapped.Questions
	}
	if len(generated) == 0 {
		return nil, errors.New("no questions generated")
	}

	questions := make([]model.Question, len(generated))
	for i, g := range generated {
		if g.CorrectAnswer == nil {
			return nil, fmt.Errorf("question %d: missing correctAnswer", i)
		}
		questions[i] = model.Question{
			Question:      g.Question,
			Options:       g.Options,
			CorrectAnswer: *g.CorrectAnswer,
			Explanation:   lo.Ternary(g.Explanation == "", defaultExplain, g.Explanation),
		}
	}
	if err := model.ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Generate resolves questions and persists them as a new quiz
func (s *QuizService) Generate(ctx context.Context, userID primitive.ObjectID, req model.GenerateQuizRequest) (*model.Quiz, error) {
	if !lo.Contains(model.Categories, req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if !lo.Contains(model.Difficulties, req.Difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, req.Difficulty)
	}
	count := req.NumberOfQuestions
	if count <= 0 {
		count = model.DefaultQuestionCount
	}

	questions, source, err := s.Resolve(ctx, req.Category, req.Difficulty, count)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].ID = primitive.NewObjectID()
	}

	quiz := &model.Quiz{
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Questions:  questions,
		CreatedBy:  userID,
		Source:     source,
		CreatedAt:  time.Now(),
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}

	if s.quizCache != nil {
		if err := s.quizCache.Set(ctx, quiz); err != nil {
			config.WithContext(ctx).WithError(err).Warn("failed to cache quiz")
		}
	}
	return quiz, nil
}

// Submit grades answers, records the result and updates the user's stats
func (s *QuizService) Submit(ctx context.Context, userID primitive.ObjectID, req model.SubmitQuizRequest) (*model.SubmitResult, error) {
	quizID, err := primitive.ObjectIDFromHex(req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed quiz id", ErrInvalidInput)
	}
	quiz, err := s.getQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, fmt.Errorf("quiz %s: %w", req.QuizID, ErrNotFound)
	}
	if len(req.Answers) > len(quiz.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidInput, len(req.Answers), len(quiz.Questions))
	}

	score, records := model.Grade(quiz, req.Answers)
	result := &model.QuizResult{
		User:           userID,
		Quiz:           quiz.ID,
		Category:       quiz.Category,
		Difficulty:     quiz.Difficulty,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		TimeTaken:      req.TimeTaken,
		Answers:        records,
		CreatedAt:      time.Now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	// the result is already stored, so a stats failure must not turn the submission into an error
	if err := s.users.IncrementStats(ctx, userID, repository.StatsDelta{QuizzesCompleted: 1, TotalScore: score}); err != nil {
		config.WithContext(ctx).WithError(err).WithField("quiz", quiz.ID.Hex()).Warn("failed to update quiz stats")
	}

	if s.leaderboard != nil {
		s.leaderboard.Changed(ctx)
	}

	return &model.SubmitResult{
		Result:         result,
		Score:          score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     model.Percentage(score, result.TotalQuestions),
	}, nil
}

func (s *QuizService) getQuiz(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error) {
	if s.quizCache != nil {
		quiz, err := s.quizCache.Get(ctx, id.Hex())
		if err != nil {
			config.WithContext(ctx).WithError(err).Warn("quiz cache read failed")
		} else if quiz != nil {
			return quiz, nil
		}
	}
	return s.quizzes.GetByID(ctx, id)
}

// History returns the user's most recent results
func (s *QuizService) History(ctx context.Context, userID primitive.ObjectID) ([]*model.QuizResult, error) {
	return s.results.Recent(ctx, userID, historyLimit)
}
