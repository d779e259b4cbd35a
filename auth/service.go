package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

func NewService(repo Repository, cfg *Config) (Service, error) {
	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

type service struct {
	repo Repository
	cfg  *Config
}

func (s *service) Register(ctx context.Context, userId string, email string, password string) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	credential, err := s.repo.Create(ctx, Credential{
		UserId:       userId,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(*credential)
}

func (s *service) Login(ctx context.Context, email string, password string) (*Session, error) {
	credential, err := s.repo.GetByEmail(ctx, email)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(*credential)
}

func (s *service) newSession(credential Credential) (*Session, error) {
	token, expiresAt, err := IssueToken(s.cfg.JwtSecret, credential.UserId, credential.Email, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &Session{
		User:      credential,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
