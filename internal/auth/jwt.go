// Package auth issues and verifies bearer tokens for back-office users.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

// MinSecretLength is the shortest HS256 secret accepted by NewJWTManager.
const MinSecretLength = 32

// Identity is what a valid token says about its bearer.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   domain.UserRole
}

// JWTManager signs and validates HS256 access tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWT manager.
func NewJWTManager(secret, issuer string, ttl time.Duration) (*JWTManager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Issue signs a token for the user and returns it with its expiry.
func (m *JWTManager) Issue(u *domain.User) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: u.Email,
		Role:  u.Role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate parses a token. Every failure unwraps to domain.ErrUnauthorized.
func (m *JWTManager) Validate(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("empty token: %w", domain.ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %v: %w", err, domain.ErrUnauthorized)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return Identity{}, fmt.Errorf("invalid claims: %w", domain.ErrUnauthorized)
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject: %w", domain.ErrUnauthorized)
	}
	role := domain.UserRole(c.Role)
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("invalid role %q: %w", c.Role, domain.ErrUnauthorized)
	}

	return Identity{UserID: id, Email: c.Email, Role: role}, nil
}
