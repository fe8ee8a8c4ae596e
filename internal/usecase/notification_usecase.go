package usecase

import (
	"context"

	"petlink/internal/domain/entity"
)

// NotificationInput carries the fields of a manually created notification.
type NotificationInput struct {
	UserID         string  `json:"userId" validate:"required"`
	Type           string  `json:"type" validate:"required,oneof=qrScan newPetAdmin generic"`
	Title          string  `json:"title" validate:"required"`
	Message        string  `json:"message" validate:"required"`
	Link           *string `json:"link,omitempty"`
	RelatedPetID   *string `json:"relatedPetId,omitempty"`
	RelatedPetName *string `json:"relatedPetName,omitempty"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// Create stores one notification for a recipient.
	Create(ctx context.Context, input *NotificationInput) (string, error)

	// ListForUser returns a user's notifications, newest first.
	ListForUser(ctx context.Context, userID string, limit int) ([]*entity.AppNotification, error)

	// MarkRead flips the read flag on the listed notifications atomically.
	MarkRead(ctx context.Context, userID string, ids []string) error

	// Delete removes the listed notifications atomically.
	Delete(ctx context.Context, userID string, ids []string) error

	// NotifyOwnerOfScan alerts a pet's owner that its tag was scanned.
	NotifyOwnerOfScan(ctx context.Context, pet *entity.PetProfile, scan *entity.ScanLocation) error

	// NotifyAdminsOfNewPet fans a registration alert out to every admin.
	NotifyAdminsOfNewPet(ctx context.Context, pet *entity.PetProfile, creator *entity.AppUser) error
}
