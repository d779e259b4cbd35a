package reminders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("reminder not found")

type Service interface {
	List(ctx context.Context, userId string) ([]*Reminder, error)
	Create(ctx context.Context, reminder Reminder) (*Reminder, error)
}

type Reminder struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId      string              `bson:"userId" json:"userId"`
	Title       string              `bson:"title" json:"title"`
	DueDate     time.Time           `bson:"dueDate" json:"dueDate"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
