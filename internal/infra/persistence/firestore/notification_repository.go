package firestore

import (
	"context"

	"petlink/internal/domain/constants"
	"petlink/internal/domain/entity"
	"petlink/internal/domain/repository"
	"petlink/internal/errors"

	fs "cloud.google.com/go/firestore"
)

// notificationRepository implements repository.NotificationRepository.
type notificationRepository struct {
	client *fs.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *fs.Client) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

func (repo *notificationRepository) col() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionNotifications)
}

// Create inserts a notification. The timestamp field carries the
// serverTimestamp sentinel, so the store assigns the write time.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.AppNotification) (string, error) {
	ref := repo.col().NewDoc()
	if _, err := ref.Create(ctx, notification); err != nil {
		return "", errors.Wrap(err, "failed to create notification document")
	}

	notification.ID = ref.ID

	return ref.ID, nil
}

// FindByRecipient retrieves notifications for one user. The query is kept
// unordered on purpose: server-side ordering would require a composite
// index, and the caller sorts client-side anyway.
func (repo *notificationRepository) FindByRecipient(ctx context.Context, userID string, limit int) ([]*entity.AppNotification, error) {
	query := repo.col().Where("userId", "==", userID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, translateQueryError(err, "failed to list notifications")
	}

	notifications := make([]*entity.AppNotification, 0, len(snaps))
	for _, snap := range snaps {
		var notification entity.AppNotification
		if err := snap.DataTo(&notification); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize notification document")
		}
		notification.ID = snap.Ref.ID
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

// MarkRead flips read=true on every listed document in one atomic batch.
// Re-marking an already-read notification writes the same value, so the
// operation is idempotent.
func (repo *notificationRepository) MarkRead(ctx context.Context, ids []string) error {
	batch := repo.client.Batch()
	for _, id := range ids {
		batch.Update(repo.col().Doc(id), []fs.Update{
			{Path: "read", Value: true},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// Delete removes every listed document in one atomic batch.
func (repo *notificationRepository) Delete(ctx context.Context, ids []string) error {
	batch := repo.client.Batch()
	for _, id := range ids {
		batch.Delete(repo.col().Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to delete notifications")
	}

	return nil
}
