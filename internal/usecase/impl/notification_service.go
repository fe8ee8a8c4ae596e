package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	"petlink/internal/errors"
	"petlink/internal/usecase"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Create stores one notification for a recipient.
func (s *notificationService) Create(ctx context.Context, input *usecase.NotificationInput) (string, error) {
	if input.UserID == "" {
		return "", domainerrors.ErrNotificationRecipientMissing
	}

	notification := &entity.AppNotification{
		UserID:         input.UserID,
		Title:          input.Title,
		Message:        input.Message,
		Link:           input.Link,
		Type:           entity.NotificationType(input.Type),
		RelatedPetID:   input.RelatedPetID,
		RelatedPetName: input.RelatedPetName,
	}
	if notification.Type == "" {
		notification.Type = entity.NotificationGeneric
	}

	id, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to store notification")
	}

	return id, nil
}

// ListForUser returns the user's notifications, newest first. The store
// query runs unordered so no composite index is required; ordering happens
// here and the limit applies after the sort.
func (s *notificationService) ListForUser(ctx context.Context, userID string, limit int) ([]*entity.AppNotification, error) {
	if userID == "" {
		return nil, domainerrors.ErrNotificationIDsInvalid
	}

	notifications, err := s.notificationRepo.FindByRecipient(ctx, userID, 0)
	if err != nil {
		if errors.Is(err, repository.ErrIndexMissing) {
			return nil, domainerrors.ErrStoreIndexMissing
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to list notifications")
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}

// MarkRead flips the read flag on the listed notifications atomically.
func (s *notificationService) MarkRead(ctx context.Context, userID string, ids []string) error {
	if err := validateIDs(userID, ids); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, ids); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to mark notifications read")
	}

	return nil
}

// Delete removes the listed notifications atomically.
func (s *notificationService) Delete(ctx context.Context, userID string, ids []string) error {
	if err := validateIDs(userID, ids); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, ids); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete notifications")
	}

	return nil
}

// NotifyOwnerOfScan alerts the pet's owner that its tag was scanned.
func (s *notificationService) NotifyOwnerOfScan(ctx context.Context, pet *entity.PetProfile, scan *entity.ScanLocation) error {
	if !pet.IsClaimed() {
		return domainerrors.ErrNotificationOwnerUnknown
	}

	link := "/pets/" + pet.ID
	notification := &entity.AppNotification{
		UserID:         *pet.UserID,
		Title:          fmt.Sprintf("Alerta de Escaneo: %s", pet.Name),
		Message:        fmt.Sprintf("El código QR de %s fue escaneado. Revisa el historial para ver la ubicación.", pet.Name),
		Link:           &link,
		Type:           entity.NotificationQRScan,
		RelatedPetID:   &pet.ID,
		RelatedPetName: &pet.Name,
	}

	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to store scan alert")
	}

	s.logger.InfoContext(ctx, "scan alert delivered",
		slog.String("pet_id", pet.ID),
		slog.String("uid", *pet.UserID),
		slog.String("scan_id", scan.ID),
	)

	return nil
}

// NotifyAdminsOfNewPet fans a registration alert out to every admin. The
// fanout runs concurrently and tolerates partial failure: an admin missing
// an inbox entry is not worth failing the registration over.
func (s *notificationService) NotifyAdminsOfNewPet(ctx context.Context, pet *entity.PetProfile, creator *entity.AppUser) error {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to list administrators")
	}
	if len(admins) == 0 {
		return nil
	}

	creatorName := "desconocido"
	var creatorUID *string
	if creator != nil {
		creatorName = creator.DisplayName
		creatorUID = &creator.UID
	}

	link := "/pets/" + pet.ID
	title := "Nueva Mascota Registrada"
	message := fmt.Sprintf("%s ha registrado una nueva mascota: %s.", creatorName, pet.Name)

	var wg sync.WaitGroup
	for _, admin := range admins {
		wg.Add(1)
		go func(recipient *entity.AppUser) {
			defer wg.Done()

			notification := &entity.AppNotification{
				UserID:          recipient.UID,
				Title:           title,
				Message:         message,
				Link:            &link,
				Type:            entity.NotificationNewPetAdmin,
				RelatedPetID:    &pet.ID,
				RelatedPetName:  &pet.Name,
				RelatedUserID:   creatorUID,
				RelatedUserName: &creatorName,
			}

			if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
				s.logger.WarnContext(ctx, "failed to notify admin of new pet",
					slog.String("admin_uid", recipient.UID),
					slog.String("pet_id", pet.ID),
					slog.Any("error", err),
				)
			}
		}(admin)
	}
	wg.Wait()

	return nil
}

func validateIDs(userID string, ids []string) error {
	if userID == "" || len(ids) == 0 {
		return domainerrors.ErrNotificationIDsInvalid
	}
	for _, id := range ids {
		if id == "" {
			return domainerrors.ErrNotificationIDsInvalid
		}
	}

	return nil
}
