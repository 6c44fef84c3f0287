package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/franken-backoffice/internal/auth"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const bcryptCost = bcrypt.DefaultCost

// Login checks email and password and issues an access token.
// Unknown emails and wrong passwords both return domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "login failed", slog.String("reason", "unknown email"))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "login failed",
			slog.String("reason", "wrong password"),
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: user}, nil
}

// ValidateToken returns the identity behind a bearer token.
func (s *Service) ValidateToken(token string) (auth.Identity, error) {
	return s.tokens.Validate(token)
}

// EnsureUser creates the user or resets its name, password and role.
func (s *Service) EnsureUser(ctx context.Context, input EnsureUserInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = input.Email
	}
	user, err := s.users.Upsert(ctx, &domain.User{
		Email:        input.Email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	s.log.InfoContext(ctx, "user ensured",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))
	return user, nil
}
