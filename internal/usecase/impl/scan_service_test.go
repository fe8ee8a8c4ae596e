package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	"petlink/internal/domain/service"
	mockRepo "petlink/internal/mocks/repository"
	mockSvc "petlink/internal/mocks/service"
	mockUC "petlink/internal/mocks/usecase"
	"petlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestScanService(t *testing.T) (
	usecase.ScanUsecase,
	*mockRepo.MockPetRepository,
	*mockUC.MockNotificationUsecase,
	*mockSvc.MockEventPublisher,
) {
	petRepo := mockRepo.NewMockPetRepository(t)
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewScanService(petRepo, notificationUC, publisher, newDiscardLogger())

	return service, petRepo, notificationUC, publisher
}

func claimedPet(id, ownerUID string, history ...entity.ScanLocation) *entity.PetProfile {
	return &entity.PetProfile{
		ID:          id,
		Name:        "Rocky",
		UserID:      &ownerUID,
		ScanHistory: history,
	}
}

func TestScanService_RecordScan_Success(t *testing.T) {
	service, petRepo, notificationUC, publisher := createTestScanService(t)
	ctx := context.Background()

	var appended entity.ScanLocation
	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).
		Run(func(_ context.Context, _ string, scan entity.ScanLocation) {
			appended = scan
		}).
		RunAndReturn(func(_ context.Context, _ string, scan entity.ScanLocation) (*entity.PetProfile, error) {
			return claimedPet("p1", "owner-1", scan), nil
		})
	notificationUC.EXPECT().NotifyOwnerOfScan(ctx, mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishScanEvent(ctx, mock.Anything).Return(nil)

	result, err := service.RecordScan(ctx, "p1", &usecase.ScanInput{Latitude: 4.65, Longitude: -74.05})

	require.NoError(t, err)
	assert.Equal(t, 4.65, result.Scan.Latitude)
	assert.Nil(t, result.DistanceFromPrevious)

	assert.True(t, strings.HasPrefix(appended.ID, "scan-"))
	parts := strings.Split(appended.ID, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 5)
	assert.WithinDuration(t, time.Now(), appended.Timestamp, time.Minute)
}

func TestScanService_RecordScan_DistanceFromPrevious(t *testing.T) {
	service, petRepo, notificationUC, publisher := createTestScanService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	previous := entity.ScanLocation{
		ID:        "scan-old",
		Latitude:  4.65,
		Longitude: -74.05,
		Timestamp: now.Add(-time.Hour),
	}
	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, scan entity.ScanLocation) (*entity.PetProfile, error) {
			return claimedPet("p1", "owner-1", scan, previous), nil
		})
	notificationUC.EXPECT().NotifyOwnerOfScan(ctx, mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishScanEvent(ctx, mock.Anything).Return(nil)

	// Roughly one degree of latitude north of the previous scan.
	result, err := service.RecordScan(ctx, "p1", &usecase.ScanInput{Latitude: 5.65, Longitude: -74.05})

	require.NoError(t, err)
	require.NotNil(t, result.DistanceFromPrevious)
	assert.InDelta(t, 111_000, *result.DistanceFromPrevious, 2_000)
}

func TestScanService_RecordScan_CoordinatesOutOfRange(t *testing.T) {
	service, _, _, _ := createTestScanService(t)

	_, err := service.RecordScan(context.Background(), "p1", &usecase.ScanInput{Latitude: 95, Longitude: 0})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestScanService_RecordScan_UnknownPet(t *testing.T) {
	service, petRepo, _, _ := createTestScanService(t)
	ctx := context.Background()

	petRepo.EXPECT().AppendScan(ctx, "ghost", mock.Anything).Return(nil, repository.ErrPetNotFound)

	_, err := service.RecordScan(ctx, "ghost", &usecase.ScanInput{Latitude: 4.65, Longitude: -74.05})

	assert.ErrorIs(t, err, domainerrors.ErrPetIdentifierNotFound)
}

func TestScanService_RecordScan_StoreFailure(t *testing.T) {
	service, petRepo, _, _ := createTestScanService(t)
	ctx := context.Background()

	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).Return(nil, errors.New("transaction aborted"))

	_, err := service.RecordScan(ctx, "p1", &usecase.ScanInput{Latitude: 4.65, Longitude: -74.05})

	assert.ErrorIs(t, err, domainerrors.ErrScanRecordFailed)
}

func TestScanService_RecordScan_UnclaimedPetStillRecorded(t *testing.T) {
	service, petRepo, notificationUC, publisher := createTestScanService(t)
	ctx := context.Background()

	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, scan entity.ScanLocation) (*entity.PetProfile, error) {
			return &entity.PetProfile{ID: "p1", Name: "Rocky", ScanHistory: []entity.ScanLocation{scan}}, nil
		})
	notificationUC.EXPECT().NotifyOwnerOfScan(ctx, mock.Anything, mock.Anything).
		Return(domainerrors.ErrNotificationOwnerUnknown)
	publisher.EXPECT().PublishScanEvent(ctx, mock.Anything).Return(nil)

	result, err := service.RecordScan(ctx, "p1", &usecase.ScanInput{Latitude: 4.65, Longitude: -74.05})

	require.NoError(t, err)
	assert.NotNil(t, result.Scan)
}

func TestScanService_RecordScan_PublishFailureTolerated(t *testing.T) {
	service, petRepo, notificationUC, publisher := createTestScanService(t)
	ctx := context.Background()

	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, scan entity.ScanLocation) (*entity.PetProfile, error) {
			return claimedPet("p1", "owner-1", scan), nil
		})
	notificationUC.EXPECT().NotifyOwnerOfScan(ctx, mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishScanEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := service.RecordScan(ctx, "p1", &usecase.ScanInput{Latitude: 4.65, Longitude: -74.05})

	assert.NoError(t, err)
}

func TestScanService_RecordScan_EventCarriesOwnerAndRequestID(t *testing.T) {
	svc, petRepo, notificationUC, publisher := createTestScanService(t)
	ctx := context.Background()

	petRepo.EXPECT().AppendScan(ctx, "p1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, scan entity.ScanLocation) (*entity.PetProfile, error) {
			return claimedPet("p1", "owner-1", scan), nil
		})
	notificationUC.EXPECT().NotifyOwnerOfScan(ctx, mock.Anything, mock.Anything).Return(nil)

	publisher.EXPECT().PublishScanEvent(ctx, mock.MatchedBy(func(event *service.ScanEvent) bool {
		return event.OwnerID == "owner-1" && event.RequestID == "req-42" && event.PetName == "Rocky"
	})).Return(nil)

	_, err := svc.RecordScan(ctx, "p1", &usecase.ScanInput{
		Latitude:  4.65,
		Longitude: -74.05,
		RequestID: "req-42",
	})

	assert.NoError(t, err)
}
