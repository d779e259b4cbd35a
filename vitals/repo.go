package vitals

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
	vitalsCollectionName = "vitals"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(vitalsCollectionName),
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
				{Key: "type", Value: 1},
				{Key: "recordedAt", Value: -1},
			},
			Options: options.Index().
				SetName("VitalsByUserAndType"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Reading, error) {
	selector := bson.M{
		"userId": filter.UserId,
	}
	if filter.Type != nil {
		selector["type"] = *filter.Type
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "recordedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	readings := make([]*Reading, 0)
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, err
	}

	return readings, nil
}

func (r *repository) Create(ctx context.Context, reading Reading) (*Reading, error) {
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, reading)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	reading.Id = &id
	return &reading, nil
}
