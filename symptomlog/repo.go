package symptomlog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	symptomLogsCollectionName = "symptomLogs"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(symptomLogsCollectionName),
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
				{Key: "loggedAt", Value: -1},
			},
			Options: options.Index().
				SetName("SymptomLogsByUser"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, userId string) ([]*Entry, error) {
	selector := bson.M{
		"userId": userId,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "loggedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) Create(ctx context.Context, entry Entry) (*Entry, error) {
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	entry.Id = &id
	return &entry, nil
}
