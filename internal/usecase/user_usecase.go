package usecase

import (
	"context"

	"petlink/internal/domain/entity"
)

// UserProfileInput carries the writable fields of a user account.
type UserProfileInput struct {
	Email       string  `json:"email" validate:"required,email"`
	DisplayName *string `json:"displayName,omitempty"`
	Role        *string `json:"nivel,omitempty" validate:"omitempty,oneof=admin user demo"`
	PhotoURL    *string `json:"photoURL,omitempty"`
	PhotoPath   *string `json:"photoPath,omitempty"`
	Phone1      *string `json:"phone1,omitempty"`
	Phone2      *string `json:"phone2,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// UserUsecase defines the interface for user account management use cases
type UserUsecase interface {
	// RegisterUser creates the account document for a freshly authenticated
	// identity. The display name falls back to the email local part.
	RegisterUser(ctx context.Context, uid string, input *UserProfileInput) (*entity.AppUser, error)

	// GetUser retrieves one account by uid; unknown uids yield nil without
	// error so login flows can detect first-time users.
	GetUser(ctx context.Context, uid string) (*entity.AppUser, error)

	// ListUsers returns every account, ordered by display name.
	ListUsers(ctx context.Context) ([]*entity.AppUser, error)

	// UpdateUser rewrites profile fields and mirrors contact changes onto
	// every pet the user owns in the same atomic write.
	UpdateUser(ctx context.Context, uid string, input *UserProfileInput, actor *entity.AppUser) (*entity.AppUser, error)

	// DeleteUserAndPets removes the account and every owned pet atomically,
	// then best-effort cleans up stored media.
	DeleteUserAndPets(ctx context.Context, uid string) error
}
