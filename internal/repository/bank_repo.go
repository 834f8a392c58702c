package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmacademy/internal/model"
)

// bankQuestion is one stored question bank row
type bankQuestion struct {
	Category      string   `bson:"category"`
	Difficulty    string   `bson:"difficulty"`
	Question      string   `bson:"question"`
	Options       []string `bson:"options"`
	CorrectAnswer int      `bson:"correctAnswer"`
	Explanation   string   `bson:"explanation,omitempty"`
}

// BankBucket names one category and difficulty key pair
type BankBucket struct {
	Category   string
	Difficulty string
}

// BankRepo persists the question bank as one document per question
type BankRepo interface {
	// LoadAll groups every stored question by category and difficulty key
	LoadAll(ctx context.Context) (map[string]map[string][]model.Question, error)
	// ReplaceBucket swaps a bucket's contents for questions
	ReplaceBucket(ctx context.Context, category, key string, questions []model.Question) error
	// PruneExcept deletes every row outside keep and returns how many were removed
	PruneExcept(ctx context.Context, keep []BankBucket) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type bankRepo struct {
	collection *mongo.Collection
}

func NewBankRepo(db *mongo.Database) BankRepo {
	return &bankRepo{
		collection: db.Collection(questionBankCollection),
	}
}

func (r *bankRepo) LoadAll(ctx context.Context) (map[string]map[string][]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	data := map[string]map[string][]model.Question{}
	for cursor.Next(ctx) {
		var row bankQuestion
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode question bank row: %w", err)
		}
		if data[row.Category] == nil {
			data[row.Category] = map[string][]model.Question{}
		}
		data[row.Category][row.Difficulty] = append(data[row.Category][row.Difficulty], model.Question{
			Question:      row.Question,
			Options:       row.Options,
			CorrectAnswer: row.CorrectAnswer,
			Explanation:   row.Explanation,
		})
	}
	return data, cursor.Err()
}

func (r *bankRepo) ReplaceBucket(ctx context.Context, category, key string, questions []model.Question) error {
	filter := bson.M{"category": category, "difficulty": key}
	if _, err := r.collection.DeleteMany(ctx, filter); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = bankQuestion{
			Category:      category,
			Difficulty:    key,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *bankRepo) PruneExcept(ctx context.Context, keep []BankBucket) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, pruneFilter(keep))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// pruneFilter matches rows whose bucket is not in keep; an empty keep matches everything
func pruneFilter(keep []BankBucket) bson.M {
	if len(keep) == 0 {
		return bson.M{}
	}
	buckets := make(bson.A, len(keep))
	for i, b := range keep {
		buckets[i] = bson.M{"category": b.Category, "difficulty": b.Difficulty}
	}
	return bson.M{"$nor": buckets}
}

func (r *bankRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
