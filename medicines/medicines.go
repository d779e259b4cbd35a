package medicines

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("medicine not found")

type Service interface {
	List(ctx context.Context, userId string) ([]*Medicine, error)
	Create(ctx context.Context, medicine Medicine) (*Medicine, error)
	Update(ctx context.Context, userId string, id string, update Update) (*Medicine, error)
	Delete(ctx context.Context, userId string, id string) error
}

type Medicine struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId    string              `bson:"userId" json:"userId"`
	Name      string              `bson:"name" json:"name"`
	Dosage    string              `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Frequency string              `bson:"frequency,omitempty" json:"frequency,omitempty"`
	StartDate *time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// Update carries the mutable subset of a medicine. Nil fields are left untouched.
type Update struct {
	Name      *string    `json:"name,omitempty"`
	Dosage    *string    `json:"dosage,omitempty"`
	Frequency *string    `json:"frequency,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
