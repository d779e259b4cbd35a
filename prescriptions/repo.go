package prescriptions

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
	prescriptionsCollectionName = "prescriptions"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(prescriptionsCollectionName),
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
				{Key: "prescribedAt", Value: -1},
			},
			Options: options.Index().
				SetName("PrescriptionsByUser"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, userId string) ([]*Prescription, error) {
	selector := bson.M{
		"userId": userId,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "prescribedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	prescriptions := make([]*Prescription, 0)
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}

	return prescriptions, nil
}

func (r *repository) Create(ctx context.Context, prescription Prescription) (*Prescription, error) {
	prescription.CreatedAt = time.Now()
	if prescription.PrescribedAt.IsZero() {
		prescription.PrescribedAt = prescription.CreatedAt
	}

	result, err := r.collection.InsertOne(ctx, prescription)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	prescription.Id = &id
	return &prescription, nil
}

func (r *repository) Delete(ctx context.Context, userId string, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	result, err := r.collection.DeleteOne(ctx, selector)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
