// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"petlink/internal/domain/entity"
)

// Domain-specific errors for pet persistence.
var (
	// ErrPetNotFound is returned when a pet document does not exist.
	ErrPetNotFound = errors.New("pet not found")
	// ErrIndexMissing is returned when a query shape requires a composite
	// index that the store does not have (or is still building).
	ErrIndexMissing = errors.New("store index missing")
)

// PetRepository defines the interface for pet document operations against
// the "mascotas" collection.
type PetRepository interface {
	// FindByID retrieves one pet document, with store-native timestamps
	// already deserialized and scan history sorted descending.
	FindByID(ctx context.Context, id string) (*entity.PetProfile, error)

	// FindAll retrieves every pet, ordered by creation time descending.
	FindAll(ctx context.Context) ([]*entity.PetProfile, error)

	// FindByOwner retrieves pets where userId matches, ordered by creation
	// time descending. Requires the composite index on (userId, createdAt).
	FindByOwner(ctx context.Context, userID string) ([]*entity.PetProfile, error)

	// Create inserts a new pet document and fills in the assigned id.
	Create(ctx context.Context, pet *entity.PetProfile) error

	// Update applies a partial field update to one pet document. A nil
	// value clears the field.
	Update(ctx context.Context, id string, fields map[string]any) error

	// SetOwner binds the userId field and nothing else.
	SetOwner(ctx context.Context, id, userID string) error

	// Delete removes the pet document.
	Delete(ctx context.Context, id string) error

	// AppendScan atomically loads the embedded scan history, prepends the
	// event, re-sorts descending and writes the array back in one store
	// transaction, so concurrent scans cannot drop each other's entries.
	// Returns the profile as persisted after the append.
	AppendScan(ctx context.Context, petID string, scan entity.ScanLocation) (*entity.PetProfile, error)
}
