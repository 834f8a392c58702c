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

type ChatRepo interface {
	Create(ctx context.Context, chat *model.Chat) error
	GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*model.Chat, error)
	// ListForUser omits message bodies, newest conversation first
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error)
	// Append pushes messages onto an existing chat and bumps lastMessage
	Append(ctx context.Context, chat *model.Chat, messages ...model.ChatMessage) error
	DeleteForUser(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}

type chatRepo struct {
	collection *mongo.Collection
}

func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		collection: db.Collection(chatsCollection),
	}
}

func (r *chatRepo) Create(ctx context.Context, chat *model.Chat) error {
	if chat.ID.IsZero() {
		chat.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, chat)
	return err
}

func (r *chatRepo) GetForUser(ctx context.Context, id, userID primitive.ObjectID) (*model.Chat, error) {
	var chat model.Chat
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user": userID}).Decode(&chat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Chat not found
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepo) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lastMessage", Value: -1}}).
		SetProjection(bson.M{"title": 1, "user": 1, "lastMessage": 1, "createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	chats := []*model.Chat{}
	if err = cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepo) Append(ctx context.Context, chat *model.Chat, messages ...model.ChatMessage) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": chat.ID},
		bson.M{
			"$push": bson.M{"messages": bson.M{"$each": messages}},
			"$set":  bson.M{"lastMessage": chat.LastMessage},
		},
	)
	return err
}

func (r *chatRepo) DeleteForUser(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
