package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const minPasswordLength = 8

// LoginInput holds credentials.
type LoginInput struct {
	Email    string
	Password string
}

func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EnsureUserInput describes a user created or reset by the seeder.
type EnsureUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.UserRole
}

func (i EnsureUserInput) Validate() error {
	var errs []domain.FieldError
	if _, err := mail.ParseAddress(strings.TrimSpace(i.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
