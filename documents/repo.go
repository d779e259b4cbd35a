package documents

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
	documentsCollectionName = "documents"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(documentsCollectionName),
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
				{Key: "uploadedAt", Value: -1},
			},
			Options: options.Index().
				SetName("DocumentsByUser"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, userId string) ([]*Document, error) {
	selector := bson.M{
		"userId": userId,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	documents := make([]*Document, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	return documents, nil
}

func (r *repository) Create(ctx context.Context, document Document) (*Document, error) {
	document.UploadedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	document.Id = &id
	return &document, nil
}
