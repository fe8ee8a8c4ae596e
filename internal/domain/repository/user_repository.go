// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petlink/internal/domain/entity"
)

// ErrUserNotFound is returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user document operations against
// the "users" collection.
type UserRepository interface {
	// Create inserts the user document keyed by the external identity uid.
	Create(ctx context.Context, user *entity.AppUser) error

	// FindByUID retrieves one user document.
	FindByUID(ctx context.Context, uid string) (*entity.AppUser, error)

	// FindAll retrieves every user, ordered by display name ascending.
	FindAll(ctx context.Context) ([]*entity.AppUser, error)

	// FindAdmins retrieves every user whose role is admin.
	FindAdmins(ctx context.Context) ([]*entity.AppUser, error)

	// UpdateWithOwnedPetCascade applies userFields to the user document and,
	// when petFields is non-empty, the denormalized owner fields to every
	// pet owned by uid, all in a single atomic batch (all-or-nothing).
	UpdateWithOwnedPetCascade(ctx context.Context, uid string, userFields, petFields map[string]any) error

	// DeleteWithOwnedPets removes the user document and every pet document
	// whose userId equals uid in one atomic batch. The external identity
	// account is not touched; cleaning it up is a manual out-of-band step.
	DeleteWithOwnedPets(ctx context.Context, uid string) error
}
