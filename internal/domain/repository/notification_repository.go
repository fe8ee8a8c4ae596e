// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petlink/internal/domain/entity"
)

// NotificationRepository defines the interface for inbox document operations
// against the "notifications" collection.
type NotificationRepository interface {
	// Create inserts a notification with a server-assigned timestamp and
	// returns the new document id.
	Create(ctx context.Context, notification *entity.AppNotification) (string, error)

	// FindByRecipient retrieves notifications for a user. The query is
	// deliberately unordered (ordering server-side would need a composite
	// index); callers sort client-side. A limit of 0 means no limit.
	FindByRecipient(ctx context.Context, userID string, limit int) ([]*entity.AppNotification, error)

	// MarkRead flips read=true on every listed document in one atomic batch.
	MarkRead(ctx context.Context, ids []string) error

	// Delete removes every listed document in one atomic batch.
	Delete(ctx context.Context, ids []string) error
}
