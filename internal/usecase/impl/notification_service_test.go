package impl

import (
	"context"
	"testing"
	"time"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	mockRepo "petlink/internal/mocks/repository"
	"petlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewNotificationService(notificationRepo, userRepo, newDiscardLogger())

	return service, notificationRepo, userRepo
}

func TestNotificationService_Create_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.AppNotification) {
			assert.Equal(t, "uid-1", notification.UserID)
			assert.Equal(t, entity.NotificationGeneric, notification.Type)
		}).Return("notif-1", nil)

	id, err := service.Create(ctx, &usecase.NotificationInput{
		UserID:  "uid-1",
		Title:   "Hola",
		Message: "Mensaje de prueba",
	})

	require.NoError(t, err)
	assert.Equal(t, "notif-1", id)
}

func TestNotificationService_Create_MissingRecipient(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, err := service.Create(context.Background(), &usecase.NotificationInput{Title: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrNotificationRecipientMissing)
}

func TestNotificationService_ListForUser_SortsNewestFirst(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notificationRepo.EXPECT().FindByRecipient(ctx, "uid-1", 0).Return([]*entity.AppNotification{
		{ID: "n1", Timestamp: base},
		{ID: "n3", Timestamp: base.Add(2 * time.Hour)},
		{ID: "n2", Timestamp: base.Add(time.Hour)},
	}, nil)

	notifications, err := service.ListForUser(ctx, "uid-1", 0)

	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "n3", notifications[0].ID)
	assert.Equal(t, "n2", notifications[1].ID)
	assert.Equal(t, "n1", notifications[2].ID)
}

func TestNotificationService_ListForUser_LimitAppliesAfterSort(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	notificationRepo.EXPECT().FindByRecipient(ctx, "uid-1", 0).Return([]*entity.AppNotification{
		{ID: "old", Timestamp: base},
		{ID: "new", Timestamp: base.Add(time.Hour)},
	}, nil)

	notifications, err := service.ListForUser(ctx, "uid-1", 1)

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "new", notifications[0].ID)
}

func TestNotificationService_ListForUser_IndexMissing(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().FindByRecipient(ctx, "uid-1", 0).
		Return(nil, repository.ErrIndexMissing)

	_, err := service.ListForUser(ctx, "uid-1", 0)

	assert.ErrorIs(t, err, domainerrors.ErrStoreIndexMissing)
}

func TestNotificationService_ListForUser_BlankUser(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, err := service.ListForUser(context.Background(), "", 0)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationIDsInvalid)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().MarkRead(ctx, []string{"n1", "n2"}).Return(nil)

	assert.NoError(t, service.MarkRead(ctx, "uid-1", []string{"n1", "n2"}))
}

func TestNotificationService_MarkRead_InvalidIDs(t *testing.T) {
	service, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	testCases := []struct {
		name   string
		userID string
		ids    []string
	}{
		{name: "blank user", userID: "", ids: []string{"n1"}},
		{name: "empty list", userID: "uid-1", ids: nil},
		{name: "blank element", userID: "uid-1", ids: []string{"n1", ""}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := service.MarkRead(ctx, testCase.userID, testCase.ids)
			assert.ErrorIs(t, err, domainerrors.ErrNotificationIDsInvalid)
		})
	}
}

func TestNotificationService_Delete_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().Delete(ctx, []string{"n1"}).Return(nil)

	assert.NoError(t, service.Delete(ctx, "uid-1", []string{"n1"}))
}

func TestNotificationService_Delete_StoreFailure(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().Delete(ctx, []string{"n1"}).Return(errors.New("batch failed"))

	err := service.Delete(ctx, "uid-1", []string{"n1"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestNotificationService_NotifyOwnerOfScan_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	owner := "owner-1"
	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky", UserID: &owner}
	scan := &entity.ScanLocation{ID: "scan-1"}

	notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.AppNotification) {
			assert.Equal(t, "owner-1", notification.UserID)
			assert.Equal(t, "Alerta de Escaneo: Rocky", notification.Title)
			assert.Equal(t, entity.NotificationQRScan, notification.Type)
			require.NotNil(t, notification.Link)
			assert.Equal(t, "/pets/pet-1", *notification.Link)
		}).Return("notif-1", nil)

	assert.NoError(t, service.NotifyOwnerOfScan(ctx, pet, scan))
}

func TestNotificationService_NotifyOwnerOfScan_UnclaimedPet(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}
	err := service.NotifyOwnerOfScan(context.Background(), pet, &entity.ScanLocation{ID: "scan-1"})

	assert.ErrorIs(t, err, domainerrors.ErrNotificationOwnerUnknown)
}

func TestNotificationService_NotifyAdminsOfNewPet_FansOutToEveryAdmin(t *testing.T) {
	service, notificationRepo, userRepo := createTestNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAdmins(ctx).Return([]*entity.AppUser{
		{UID: "admin-1", Role: entity.RoleAdmin},
		{UID: "admin-2", Role: entity.RoleAdmin},
	}, nil)

	notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(notification *entity.AppNotification) bool {
		return notification.Type == entity.NotificationNewPetAdmin &&
			notification.Message == "María ha registrado una nueva mascota: Rocky."
	})).Return("notif-x", nil).Times(2)

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}
	creator := &entity.AppUser{UID: "uid-1", DisplayName: "María"}

	assert.NoError(t, service.NotifyAdminsOfNewPet(ctx, pet, creator))
}

func TestNotificationService_NotifyAdminsOfNewPet_AnonymousCreator(t *testing.T) {
	service, notificationRepo, userRepo := createTestNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAdmins(ctx).Return([]*entity.AppUser{
		{UID: "admin-1", Role: entity.RoleAdmin},
	}, nil)

	notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(notification *entity.AppNotification) bool {
		return notification.Message == "desconocido ha registrado una nueva mascota: Rocky."
	})).Return("notif-x", nil)

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}

	assert.NoError(t, service.NotifyAdminsOfNewPet(ctx, pet, nil))
}

func TestNotificationService_NotifyAdminsOfNewPet_PartialFailureTolerated(t *testing.T) {
	service, notificationRepo, userRepo := createTestNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAdmins(ctx).Return([]*entity.AppUser{
		{UID: "admin-1", Role: entity.RoleAdmin},
		{UID: "admin-2", Role: entity.RoleAdmin},
	}, nil)

	notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Return("", errors.New("write denied")).Once()
	notificationRepo.EXPECT().Create(ctx, mock.Anything).
		Return("notif-x", nil).Once()

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}

	assert.NoError(t, service.NotifyAdminsOfNewPet(ctx, pet, &entity.AppUser{UID: "uid-1", DisplayName: "María"}))
}

func TestNotificationService_NotifyAdminsOfNewPet_NoAdmins(t *testing.T) {
	service, _, userRepo := createTestNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAdmins(ctx).Return([]*entity.AppUser{}, nil)

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}

	assert.NoError(t, service.NotifyAdminsOfNewPet(ctx, pet, nil))
}

func TestNotificationService_NotifyAdminsOfNewPet_ListFailure(t *testing.T) {
	service, _, userRepo := createTestNotificationService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAdmins(ctx).Return(nil, errors.New("store down"))

	pet := &entity.PetProfile{ID: "pet-1", Name: "Rocky"}
	err := service.NotifyAdminsOfNewPet(ctx, pet, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}
