package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollectionName = "users"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(usersCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueUserId"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, userId string) (*User, error) {
	selector := bson.M{
		"userId": userId,
	}

	user := &User{}
	err := r.collection.FindOne(ctx, selector).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *repository) Upsert(ctx context.Context, user User) (*User, error) {
	selector := bson.M{
		"userId": user.UserId,
	}

	set := bson.M{
		"name":  user.Name,
		"email": user.Email,
	}
	for key, value := range user.Attributes {
		if isReservedAttribute(key) {
			continue
		}
		set[key] = value
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	result := &User{}
	if err := r.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) Update(ctx context.Context, userId string, attributes map[string]interface{}) (*User, error) {
	selector := bson.M{
		"userId": userId,
	}

	set := bson.M{}
	for key, value := range attributes {
		if isReservedAttribute(key) {
			continue
		}
		set[key] = value
	}
	if len(set) == 0 {
		return r.Get(ctx, userId)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	result := &User{}
	err := r.collection.FindOneAndUpdate(ctx, selector, bson.M{"$set": set}, opts).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return result, nil
}

// isReservedAttribute keeps client supplied field maps from clobbering
// the identity of a document.
func isReservedAttribute(key string) bool {
	return key == "_id" || key == "userId"
}
