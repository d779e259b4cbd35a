package lifestyle

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service interface {
	ListActivity(ctx context.Context, userId string) ([]*ActivityLog, error)
	CreateActivity(ctx context.Context, log ActivityLog) (*ActivityLog, error)
	ListSleep(ctx context.Context, userId string) ([]*SleepLog, error)
	CreateSleep(ctx context.Context, log SleepLog) (*SleepLog, error)
}

// ActivityLog captures one day of hydration and exercise.
type ActivityLog struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId    string              `bson:"userId" json:"userId"`
	Date      time.Time           `bson:"date" json:"date"`
	Hydration float64             `bson:"hydration,omitempty" json:"hydration,omitempty"`
	Exercise  float64             `bson:"exercise,omitempty" json:"exercise,omitempty"`
	Steps     int                 `bson:"steps,omitempty" json:"steps,omitempty"`
	Notes     string              `bson:"notes,omitempty" json:"notes,omitempty"`
}

// SleepLog captures one night of sleep.
type SleepLog struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId        string              `bson:"userId" json:"userId"`
	Date          time.Time           `bson:"date" json:"date"`
	BedTime       *time.Time          `bson:"bedTime,omitempty" json:"bedTime,omitempty"`
	WakeTime      *time.Time          `bson:"wakeTime,omitempty" json:"wakeTime,omitempty"`
	DurationHours float64             `bson:"durationHours,omitempty" json:"durationHours,omitempty"`
	Quality       int                 `bson:"quality,omitempty" json:"quality,omitempty"`
	Notes         string              `bson:"notes,omitempty" json:"notes,omitempty"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
