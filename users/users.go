package users

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("user not found")

type Service interface {
	Get(ctx context.Context, userId string) (*User, error)
	Upsert(ctx context.Context, user User) (*User, error)
	Update(ctx context.Context, userId string, attributes map[string]interface{}) (*User, error)
}

// User is a profile record. Name and email are first-class, everything else the
// client sends is carried in Attributes and stored inline in the document, so
// profiles keep arbitrary extra fields across writes.
type User struct {
	Id         *primitive.ObjectID    `bson:"_id,omitempty"`
	UserId     string                 `bson:"userId"`
	Name       string                 `bson:"name,omitempty"`
	Email      string                 `bson:"email,omitempty"`
	Attributes map[string]interface{} `bson:",inline"`
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Attributes)+3)
	for k, v := range u.Attributes {
		out[k] = v
	}
	delete(out, "_id")
	out["userId"] = u.UserId
	if u.Name != "" {
		out["name"] = u.Name
	}
	if u.Email != "" {
		out["email"] = u.Email
	}
	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(data []byte) error {
	attributes := map[string]interface{}{}
	if err := json.Unmarshal(data, &attributes); err != nil {
		return err
	}
	u.UserId = popString(attributes, "userId")
	u.Name = popString(attributes, "name")
	u.Email = popString(attributes, "email")
	delete(attributes, "_id")
	u.Attributes = attributes
	return nil
}

func popString(attributes map[string]interface{}, key string) string {
	value, ok := attributes[key].(string)
	if !ok {
		return ""
	}
	delete(attributes, key)
	return value
}

func NewService(repo Repository) (Service, error) {
	return repo, nil
}
