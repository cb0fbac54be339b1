package repository

import (
	"github.com/pitcherapp/pitcher/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Returns ErrDuplicateUsername when the
	// username is already taken.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// PitchRepository defines the interface for pitch data access
type PitchRepository interface {
	// Create creates a new pitch
	Create(pitch *models.Pitch) error

	// FindByID finds a pitch by ID
	FindByID(id uint64) (*models.Pitch, error)

	// ListAll retrieves every pitch in storage order
	ListAll() ([]models.Pitch, error)

	// Delete removes a pitch by ID. Deleting an absent ID is not an error.
	Delete(id uint64) error
}
