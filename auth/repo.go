package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/RakshithaNagaraju74/MedWell/store"
)

const (
	credentialsCollectionName = "credentials"
)

type Repository interface {
	Create(ctx context.Context, credential Credential) (*Credential, error)
	GetByEmail(ctx context.Context, email string) (*Credential, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(credentialsCollectionName),
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
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueEmail"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, credential Credential) (*Credential, error) {
	credential.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, credential)
	if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	credential.Id = &id
	return &credential, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	selector := bson.M{
		"email": email,
	}

	credential := &Credential{}
	err := r.collection.FindOne(ctx, selector).Decode(credential)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return credential, nil
}
