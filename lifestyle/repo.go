package lifestyle

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
	activityLogsCollectionName = "activityLogs"
	sleepLogsCollectionName    = "sleepLogs"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		activity: db.Collection(activityLogsCollectionName),
		sleep:    db.Collection(sleepLogsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	activity *mongo.Collection
	sleep    *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	index := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("LogsByUserAndDate"),
		},
	}
	if _, err := r.activity.Indexes().CreateMany(ctx, index); err != nil {
		return err
	}
	_, err := r.sleep.Indexes().CreateMany(ctx, index)
	return err
}

func (r *repository) ListActivity(ctx context.Context, userId string) ([]*ActivityLog, error) {
	cursor, err := r.activity.Find(ctx, bson.M{"userId": userId}, listOptions())
	if err != nil {
		return nil, err
	}

	logs := make([]*ActivityLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *repository) CreateActivity(ctx context.Context, log ActivityLog) (*ActivityLog, error) {
	if log.Date.IsZero() {
		log.Date = time.Now()
	}

	result, err := r.activity.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	log.Id = &id
	return &log, nil
}

func (r *repository) ListSleep(ctx context.Context, userId string) ([]*SleepLog, error) {
	cursor, err := r.sleep.Find(ctx, bson.M{"userId": userId}, listOptions())
	if err != nil {
		return nil, err
	}

	logs := make([]*SleepLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *repository) CreateSleep(ctx context.Context, log SleepLog) (*SleepLog, error) {
	if log.Date.IsZero() {
		log.Date = time.Now()
	}

	result, err := r.sleep.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	log.Id = &id
	return &log, nil
}

func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}
