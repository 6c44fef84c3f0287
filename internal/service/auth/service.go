// Package auth authenticates back-office users.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/franken-backoffice/internal/auth"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

type tokenManager interface {
	Issue(u *domain.User) (string, time.Time, error)
	Validate(token string) (auth.Identity, error)
}

// Service implements login and token checks.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	cost   int
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, tokens tokenManager) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cost:   bcryptCost,
	}
}

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
