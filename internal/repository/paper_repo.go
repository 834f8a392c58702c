package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/model"
)

// PaperRepo scopes every read and delete to the owning user
type PaperRepo interface {
	Create(ctx context.Context, paper *model.Paper) error
	GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*model.Paper, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Paper, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type paperRepo struct {
	collection *mongo.Collection
}

func NewPaperRepo(db *mongo.Database) PaperRepo {
	return &paperRepo{
		collection: db.Collection(papersCollection),
	}
}

func (r *paperRepo) Create(ctx context.Context, paper *model.Paper) error {
	if paper.ID.IsZero() {
		paper.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, paper)
	return err
}

func (r *paperRepo) GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*model.Paper, error) {
	var paper model.Paper
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user": userID}).Decode(&paper)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepo) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Paper, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	papers := []*model.Paper{}
	if err = cursor.All(ctx, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *paperRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
