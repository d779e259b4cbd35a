package reminders

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
	remindersCollectionName = "reminders"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(remindersCollectionName),
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
				{Key: "dueDate", Value: 1},
			},
			Options: options.Index().
				SetName("RemindersByDueDate"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, userId string) ([]*Reminder, error) {
	selector := bson.M{
		"userId": userId,
	}

	sort := store.Sort{Attribute: "dueDate", Ascending: true}
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Attribute, Value: sort.Order()}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	reminders := make([]*Reminder, 0)
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *repository) Create(ctx context.Context, reminder Reminder) (*Reminder, error) {
	reminder.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, reminder)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	reminder.Id = &id
	return &reminder, nil
}
