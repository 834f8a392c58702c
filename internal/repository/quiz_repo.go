package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmacademy/internal/model"
)

// QuizRepo stores generated quizzes. Quizzes are insert-only.
type QuizRepo interface {
	Create(ctx context.Context, quiz *model.Quiz) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error)
}

type quizRepo struct {
	collection *mongo.Collection
}

func NewQuizRepo(db *mongo.Database) QuizRepo {
	return &quizRepo{
		collection: db.Collection(quizzesCollection),
	}
}

func (r *quizRepo) Create(ctx context.Context, quiz *model.Quiz) error {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, quiz)
	return err
}

func (r *quizRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Quiz not found
		}
		return nil, err
	}
	return &quiz, nil
}
