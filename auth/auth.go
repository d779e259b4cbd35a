package auth

import (
	"context"
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = errors.New("credential not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service interface {
	Register(ctx context.Context, userId string, email string, password string) (*Session, error)
	Login(ctx context.Context, email string, password string) (*Session, error)
}

type Credential struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserId       string              `bson:"userId" json:"userId"`
	Email        string              `bson:"email" json:"email"`
	PasswordHash string              `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

// Session is the result of a successful registration or login.
type Session struct {
	User      Credential `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

type Config struct {
	JwtSecret  string        `envconfig:"JWT_SECRET" default:"medwell-development-secret"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"72h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
