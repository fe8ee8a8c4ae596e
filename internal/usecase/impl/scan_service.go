package impl

import (
	"context"
	"log/slog"
	"time"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	"petlink/internal/domain/service"
	"petlink/internal/errors"
	"petlink/internal/usecase"
	"petlink/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type scanService struct {
	petRepo        repository.PetRepository
	notificationUC usecase.NotificationUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// NewScanService creates a new scan event recorder instance
func NewScanService(
	petRepo repository.PetRepository,
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ScanUsecase {
	return &scanService{
		petRepo:        petRepo,
		notificationUC: notificationUC,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// RecordScan appends a scan to the pet's history. The append itself is the
// only step that can fail the request; the owner alert and the event
// publication ride along best-effort.
func (s *scanService) RecordScan(ctx context.Context, petID string, input *usecase.ScanInput) (*usecase.ScanResult, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	scan := entity.ScanLocation{
		ID:        util.NewScanID(s.now()),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Timestamp: s.now().UTC(),
	}

	pet, err := s.petRepo.AppendScan(ctx, petID, scan)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetIdentifierNotFound
		}

		s.logger.ErrorContext(ctx, "failed to record scan",
			slog.String("pet_id", petID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrScanRecordFailed
	}

	result := &usecase.ScanResult{Scan: &scan}

	// History is sorted most recent first, so the previous scan sits right
	// behind the one just appended.
	if len(pet.ScanHistory) > 1 {
		previous := pet.ScanHistory[1]
		meters := geo.Distance(
			orb.Point{scan.Longitude, scan.Latitude},
			orb.Point{previous.Longitude, previous.Latitude},
		)
		result.DistanceFromPrevious = &meters
	}

	if err := s.notificationUC.NotifyOwnerOfScan(ctx, pet, &scan); err != nil {
		// Unclaimed pets have no one to alert; that is the normal shell
		// record case, logged at debug only.
		if errors.Is(err, domainerrors.ErrNotificationOwnerUnknown) {
			s.logger.DebugContext(ctx, "scan on unclaimed pet, no owner to notify",
				slog.String("pet_id", petID),
			)
		} else {
			s.logger.WarnContext(ctx, "failed to notify owner of scan",
				slog.String("pet_id", petID),
				slog.Any("error", err),
			)
		}
	}

	s.publishScanEvent(ctx, pet, &scan, input.RequestID)

	return result, nil
}

func (s *scanService) publishScanEvent(ctx context.Context, pet *entity.PetProfile, scan *entity.ScanLocation, requestID string) {
	event := &service.ScanEvent{
		RequestID: requestID,
		ScanID:    scan.ID,
		PetID:     pet.ID,
		PetName:   pet.Name,
		Latitude:  scan.Latitude,
		Longitude: scan.Longitude,
		Timestamp: scan.Timestamp.Format(time.RFC3339),
	}
	if pet.UserID != nil {
		event.OwnerID = *pet.UserID
	}

	if err := s.publisher.PublishScanEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish scan event",
			slog.String("scan_id", scan.ID),
			slog.Any("error", err),
		)
	}
}
