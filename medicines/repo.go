package medicines

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
	medicinesCollectionName = "medicines"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(medicinesCollectionName),
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
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("MedicinesByUser"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, userId string) ([]*Medicine, error) {
	selector := bson.M{
		"userId": userId,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, err
	}

	medicines := make([]*Medicine, 0)
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, err
	}

	return medicines, nil
}

func (r *repository) Create(ctx context.Context, medicine Medicine) (*Medicine, error) {
	medicine.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, medicine)
	if err != nil {
		return nil, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	medicine.Id = &id
	return &medicine, nil
}

func (r *repository) Update(ctx context.Context, userId string, id string, update Update) (*Medicine, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Dosage != nil {
		set["dosage"] = *update.Dosage
	}
	if update.Frequency != nil {
		set["frequency"] = *update.Frequency
	}
	if update.StartDate != nil {
		set["startDate"] = *update.StartDate
	}
	if update.EndDate != nil {
		set["endDate"] = *update.EndDate
	}

	medicine := &Medicine{}
	if len(set) == 0 {
		err = r.collection.FindOne(ctx, selector).Decode(medicine)
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, err
		}
		return medicine, nil
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	err = r.collection.FindOneAndUpdate(ctx, selector, bson.M{"$set": set}, opts).Decode(medicine)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return medicine, nil
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
