package symptomlog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service interface {
	List(ctx context.Context, userId string) ([]*Entry, error)
	Create(ctx context.Context, entry Entry) (*Entry, error)
}

type Entry struct {
	Id       *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId   string              `bson:"userId" json:"userId"`
	Symptoms []string            `bson:"symptoms" json:"symptoms"`
	Severity int                 `bson:"severity,omitempty" json:"severity,omitempty"`
	Notes    string              `bson:"notes,omitempty" json:"notes,omitempty"`
	LoggedAt time.Time           `bson:"loggedAt" json:"loggedAt"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
