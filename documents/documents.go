package documents

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("document not found")

type Service interface {
	List(ctx context.Context, userId string) ([]*Document, error)
	Create(ctx context.Context, document Document) (*Document, error)
}

// Document is the stored metadata of an uploaded file. The bytes themselves
// live on disk under the uploads directory and are served statically.
type Document struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId      string              `bson:"userId" json:"userId"`
	Title       string              `bson:"title" json:"title"`
	FileName    string              `bson:"fileName" json:"fileName"`
	StoredName  string              `bson:"storedName" json:"storedName"`
	ContentType string              `bson:"contentType,omitempty" json:"contentType,omitempty"`
	Size        int64               `bson:"size" json:"size"`
	UploadedAt  time.Time           `bson:"uploadedAt" json:"uploadedAt"`
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
