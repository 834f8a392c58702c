package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/model"
)

// StatsDelta is added to a user's counters with $inc
type StatsDelta struct {
	QuizzesCompleted int
	PapersSummarized int
	TotalScore       int
}

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update model.ProfileUpdate) (*model.User, error)
	SetAvatar(ctx context.Context, id primitive.ObjectID, url string) error
	IncrementStats(ctx context.Context, id primitive.ObjectID, delta StatsDelta) error
	TopByScore(ctx context.Context, limit int) ([]*model.User, error)
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection(usersCollection),
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, update model.ProfileUpdate) (*model.User, error) {
	set := bson.M{"lastActive": time.Now()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.University != "" {
		set["university"] = update.University
	}
	if update.Role != "" {
		set["role"] = update.Role
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) SetAvatar(ctx context.Context, id primitive.ObjectID, url string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"avatar": url}})
	return err
}

func (r *userRepo) IncrementStats(ctx context.Context, id primitive.ObjectID, delta StatsDelta) error {
	inc := bson.M{}
	if delta.QuizzesCompleted != 0 {
		inc["stats.quizzesCompleted"] = delta.QuizzesCompleted
	}
	if delta.PapersSummarized != 0 {
		inc["stats.papersSummarized"] = delta.PapersSummarized
	}
	if delta.TotalScore != 0 {
		inc["stats.totalScore"] = delta.TotalScore
	}
	update := bson.M{"$set": bson.M{"lastActive": time.Now()}}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *userRepo) TopByScore(ctx context.Context, limit int) ([]*model.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "stats.totalScore", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"password": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
