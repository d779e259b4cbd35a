package vitals

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]*Reading, error)
	Create(ctx context.Context, reading Reading) (*Reading, error)
}

// Reading is a single vital sign measurement, e.g. a blood pressure or
// heart rate sample.
type Reading struct {
	Id         *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId     string              `bson:"userId" json:"userId"`
	Type       string              `bson:"type" json:"type"`
	Value      string              `bson:"value" json:"value"`
	Unit       string              `bson:"unit,omitempty" json:"unit,omitempty"`
	Notes      string              `bson:"notes,omitempty" json:"notes,omitempty"`
	RecordedAt time.Time           `bson:"recordedAt" json:"recordedAt"`
}

type Filter struct {
	UserId string
	Type   *string
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
