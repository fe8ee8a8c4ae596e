package impl

import (
	"context"
	"testing"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	mockRepo "petlink/internal/mocks/repository"
	mockSvc "petlink/internal/mocks/service"
	"petlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockPetRepository,
	*mockSvc.MockMediaService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	mediaSvc := mockSvc.NewMockMediaService(t)

	service := NewUserService(userRepo, petRepo, mediaSvc, newDiscardLogger())

	return service, userRepo, petRepo, mediaSvc
}

func TestUserService_RegisterUser_DisplayNameFallback(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	user, err := service.RegisterUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email: "maria@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "maria", user.DisplayName)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_RegisterUser_ExplicitNameAndRole(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	user, err := service.RegisterUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "maria@example.com",
		DisplayName: strp("María García"),
		Role:        strp("demo"),
	})

	require.NoError(t, err)
	assert.Equal(t, "María García", user.DisplayName)
	assert.Equal(t, entity.RoleDemo, user.Role)
}

func TestUserService_RegisterUser_MissingEmail(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	_, err := service.RegisterUser(context.Background(), "uid-1", &usecase.UserProfileInput{})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_GetUser_UnknownUIDIsNil(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByUID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := service.GetUser(ctx, "ghost")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_ListUsers_FailureDegradesToEmpty(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("store down"))

	users, err := service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_UpdateUser_CascadesContactFields(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()
	actor := testUser("uid-1", entity.RoleUser)

	existing := &entity.AppUser{UID: "uid-1", Email: "old@example.com"}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Once()

	var userFields, petFields map[string]any
	userRepo.EXPECT().UpdateWithOwnedPetCascade(ctx, "uid-1", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, uf, pf map[string]any) {
			userFields = uf
			petFields = pf
		}).Return(nil)
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Once()

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "new@example.com",
		DisplayName: strp("María"),
		Phone1:      strp("3009876543"),
		Address:     strp("Calle 10 # 5-51"),
	}, actor)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", userFields["email"])
	assert.Equal(t, "María", userFields["displayName"])
	assert.Equal(t, "new@example.com", petFields["ownerEmail"])
	assert.Equal(t, "María", petFields["ownerName"])
	assert.Equal(t, "3009876543", petFields["ownerPhone1"])
}

func TestUserService_UpdateUser_RoleChangeRequiresAdmin(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.AppUser{UID: "uid-1", Email: "a@example.com"}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil)

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "a@example.com",
		DisplayName: strp("Ana"),
		Phone1:      strp("3001234567"),
		Address:     strp("Calle 10 # 5-51"),
		Role:        strp("admin"),
	}, testUser("uid-1", entity.RoleUser))

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestUserService_UpdateUser_AdminCanChangeRole(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.AppUser{UID: "uid-1", Email: "a@example.com"}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Times(2)

	var userFields map[string]any
	userRepo.EXPECT().UpdateWithOwnedPetCascade(ctx, "uid-1", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, uf, _ map[string]any) {
			userFields = uf
		}).Return(nil)

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "a@example.com",
		DisplayName: strp("Ana"),
		Role:        strp("demo"),
	}, testUser("admin-1", entity.RoleAdmin))

	require.NoError(t, err)
	assert.Equal(t, "demo", userFields["nivel"])
}

func TestUserService_UpdateUser_ReplacedPhotoCleanedUp(t *testing.T) {
	service, userRepo, _, mediaSvc := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.AppUser{UID: "uid-1", Email: "a@example.com", PhotoPath: strp("avatars/old.png")}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Times(2)
	userRepo.EXPECT().UpdateWithOwnedPetCascade(ctx, "uid-1", mock.Anything, mock.Anything).Return(nil)
	mediaSvc.EXPECT().DeleteByPath(ctx, "avatars/old.png").Return(nil)

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "a@example.com",
		DisplayName: strp("Ana"),
		Phone1:      strp("3001234567"),
		Address:     strp("Calle 10 # 5-51"),
		PhotoPath:   strp("avatars/new.png"),
	}, testUser("uid-1", entity.RoleUser))

	assert.NoError(t, err)
}

func TestUserService_UpdateUser_ExternalAvatarNotDeleted(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.AppUser{
		UID:       "uid-1",
		Email:     "a@example.com",
		PhotoPath: strp("https://lh3.googleusercontent.com/photo.jpg"),
	}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Times(2)
	userRepo.EXPECT().UpdateWithOwnedPetCascade(ctx, "uid-1", mock.Anything, mock.Anything).Return(nil)

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "a@example.com",
		DisplayName: strp("Ana"),
		Phone1:      strp("3001234567"),
		Address:     strp("Calle 10 # 5-51"),
		PhotoPath:   strp("avatars/new.png"),
	}, testUser("uid-1", entity.RoleUser))

	assert.NoError(t, err)
}

func TestUserService_UpdateUser_SelfEditRequiresContactData(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UserProfileInput
	}{
		{
			name: "missing display name",
			input: &usecase.UserProfileInput{
				Email:   "a@example.com",
				Phone1:  strp("3001234567"),
				Address: strp("Calle 10 # 5-51"),
			},
		},
		{
			name: "missing phone",
			input: &usecase.UserProfileInput{
				Email:       "a@example.com",
				DisplayName: strp("Ana"),
				Address:     strp("Calle 10 # 5-51"),
			},
		},
		{
			name: "missing address",
			input: &usecase.UserProfileInput{
				Email:       "a@example.com",
				DisplayName: strp("Ana"),
				Phone1:      strp("3001234567"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := createTestUserService(t)

			_, err := service.UpdateUser(context.Background(), "uid-1", tt.input, testUser("uid-1", entity.RoleUser))

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestUserService_UpdateUser_AdminEditSkipsContactRequirement(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.AppUser{UID: "uid-1", Email: "a@example.com"}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil).Times(2)
	userRepo.EXPECT().UpdateWithOwnedPetCascade(ctx, "uid-1", mock.Anything, mock.Anything).Return(nil)

	_, err := service.UpdateUser(ctx, "uid-1", &usecase.UserProfileInput{
		Email:       "a@example.com",
		DisplayName: strp("Ana"),
	}, testUser("admin-1", entity.RoleAdmin))

	assert.NoError(t, err)
}

func TestUserService_DeleteUserAndPets_CleansUpMedia(t *testing.T) {
	service, userRepo, petRepo, mediaSvc := createTestUserService(t)
	ctx := context.Background()

	user := &entity.AppUser{UID: "uid-1", Email: "a@example.com", PhotoPath: strp("avatars/a.png")}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(user, nil)
	petRepo.EXPECT().FindByOwner(ctx, "uid-1").Return([]*entity.PetProfile{
		{ID: "p1", PhotoFileID: strp("file-1")},
	}, nil)
	userRepo.EXPECT().DeleteWithOwnedPets(ctx, "uid-1").Return(nil)
	mediaSvc.EXPECT().DeleteFile(ctx, "file-1").Return(nil)
	mediaSvc.EXPECT().DeleteByPath(ctx, "avatars/a.png").Return(nil)

	require.NoError(t, service.DeleteUserAndPets(ctx, "uid-1"))
}

func TestUserService_DeleteUserAndPets_BatchFailure(t *testing.T) {
	service, userRepo, petRepo, _ := createTestUserService(t)
	ctx := context.Background()

	user := &entity.AppUser{UID: "uid-1", Email: "a@example.com"}
	userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(user, nil)
	petRepo.EXPECT().FindByOwner(ctx, "uid-1").Return(nil, nil)
	userRepo.EXPECT().DeleteWithOwnedPets(ctx, "uid-1").Return(errors.New("batch aborted"))

	err := service.DeleteUserAndPets(ctx, "uid-1")

	assert.ErrorIs(t, err, domainerrors.ErrUserDeleteFailed)
}

func TestUserService_DeleteUserAndPets_UnknownUser(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByUID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := service.DeleteUserAndPets(ctx, "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
