package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/config"
)

// ErrDuplicate is returned when a unique index rejects a write
var ErrDuplicate = errors.New("repository: duplicate key")

// Collection names
const (
	usersCollection        = "users"
	quizzesCollection      = "quizzes"
	quizResultsCollection  = "quiz_results"
	papersCollection       = "papers"
	chatsCollection        = "chats"
	questionBankCollection = "question_bank"
)

// EnsureIndexes creates the indexes the repositories rely on.
// Failures are logged and do not stop start-up.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	createIndex(ctx, db.Collection(usersCollection), bson.D{{Key: "email", Value: 1}}, true)
	createIndex(ctx, db.Collection(usersCollection), bson.D{{Key: "stats.totalScore", Value: -1}}, false)
	createIndex(ctx, db.Collection(quizResultsCollection), bson.D{
		{Key: "user", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)
	createIndex(ctx, db.Collection(papersCollection), bson.D{
		{Key: "user", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)
	createIndex(ctx, db.Collection(chatsCollection), bson.D{
		{Key: "user", Value: 1},
		{Key: "lastMessage", Value: -1},
	}, false)
	createIndex(ctx, db.Collection(questionBankCollection), bson.D{
		{Key: "category", Value: 1},
		{Key: "difficulty", Value: 1},
	}, false)

	config.Log.Info("mongo indexes ensured")
}

func createIndex(ctx context.Context, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		config.Log.WithError(err).Warnf("failed to create index on %s", coll.Name())
	}
}
