package prescriptions

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("prescription not found")

type Service interface {
	List(ctx context.Context, userId string) ([]*Prescription, error)
	Create(ctx context.Context, prescription Prescription) (*Prescription, error)
	Delete(ctx context.Context, userId string, id string) error
}

type Prescription struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId       string              `bson:"userId" json:"userId"`
	Medication   string              `bson:"medication" json:"medication"`
	Dosage       string              `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Doctor       string              `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Notes        string              `bson:"notes,omitempty" json:"notes,omitempty"`
	PrescribedAt time.Time           `bson:"prescribedAt" json:"prescribedAt"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
