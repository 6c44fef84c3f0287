package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office operator allowed to use the API.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
