package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/model"
)

// ResultSummary aggregates every result of one user
type ResultSummary struct {
	Count      int `bson:"count"`
	TotalScore int `bson:"totalScore"`
}

type ResultRepo interface {
	Create(ctx context.Context, result *model.QuizResult) error
	// Recent returns the user's latest results, newest first
	Recent(ctx context.Context, userID primitive.ObjectID, limit int) ([]*model.QuizResult, error)
	Summary(ctx context.Context, userID primitive.ObjectID) (*ResultSummary, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection(quizResultsCollection),
	}
}

func (r *resultRepo) Create(ctx context.Context, result *model.QuizResult) error {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

func (r *resultRepo) Recent(ctx context.Context, userID primitive.ObjectID, limit int) ([]*model.QuizResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []*model.QuizResult{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepo) Summary(ctx context.Context, userID primitive.ObjectID) (*ResultSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"count":      bson.M{"$sum": 1},
			"totalScore": bson.M{"$sum": "$score"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summary := &ResultSummary{}
	if cursor.Next(ctx) {
		if err := cursor.Decode(summary); err != nil {
			return nil, err
		}
	}
	return summary, cursor.Err()
}
