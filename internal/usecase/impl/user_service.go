package impl

import (
	"context"
	"log/slog"
	"strings"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	"petlink/internal/domain/service"
	"petlink/internal/errors"
	"petlink/internal/usecase"
	"petlink/internal/util"
)

type userService struct {
	userRepo repository.UserRepository
	petRepo  repository.PetRepository
	mediaSvc service.MediaService
	logger   *slog.Logger
}

// NewUserService creates a new user account service instance
func NewUserService(
	userRepo repository.UserRepository,
	petRepo repository.PetRepository,
	mediaSvc service.MediaService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		petRepo:  petRepo,
		mediaSvc: mediaSvc,
		logger:   logger,
	}
}

// RegisterUser creates the account document for a freshly authenticated
// identity. Registering an existing uid overwrites nothing important: the
// handler checks for an existing profile first.
func (s *userService) RegisterUser(ctx context.Context, uid string, input *usecase.UserProfileInput) (*entity.AppUser, error) {
	if uid == "" || input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("uid and email are required")
	}

	displayName := util.EmailLocalPart(input.Email)
	if input.DisplayName != nil && *input.DisplayName != "" {
		displayName = *input.DisplayName
	}

	role := entity.RoleUser
	if input.Role != nil && entity.Role(*input.Role).IsValid() {
		role = entity.Role(*input.Role)
	}

	user := &entity.AppUser{
		UID:         uid,
		Email:       input.Email,
		DisplayName: displayName,
		Role:        role,
		PhotoURL:    input.PhotoURL,
		PhotoPath:   input.PhotoPath,
		Phone1:      input.Phone1,
		Phone2:      input.Phone2,
		Address:     input.Address,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to create user profile",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUserCreationFailed
	}

	return user, nil
}

// GetUser returns one account, or nil for unknown uids so login flows can
// detect first-time users.
func (s *userService) GetUser(ctx context.Context, uid string) (*entity.AppUser, error) {
	if uid == "" {
		return nil, nil
	}

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load user profile")
	}

	return user, nil
}

// ListUsers returns every account. The admin directory renders an empty
// state rather than an error page, so store failures degrade to an empty
// result.
func (s *userService) ListUsers(ctx context.Context) ([]*entity.AppUser, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))

		return []*entity.AppUser{}, nil
	}

	return users, nil
}

// UpdateUser rewrites profile fields and mirrors contact changes onto every
// owned pet in the same atomic write. Only admins may change roles. Every
// update carries a display name; self-edits must also keep the contact data
// the public profile depends on, while admin edits may leave it incomplete.
func (s *userService) UpdateUser(ctx context.Context, uid string, input *usecase.UserProfileInput, actor *entity.AppUser) (*entity.AppUser, error) {
	if input.DisplayName == nil || strings.TrimSpace(*input.DisplayName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("displayName is required")
	}
	if actor.EffectiveRole() != entity.RoleAdmin {
		if input.Phone1 == nil || strings.TrimSpace(*input.Phone1) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("phone1 is required")
		}
		if input.Address == nil || strings.TrimSpace(*input.Address) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
		}
	}

	existing, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load user profile")
	}

	if input.Role != nil && actor.EffectiveRole() != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("only administrators can change roles")
	}

	userFields := map[string]any{
		"email": input.Email,
	}
	petFields := map[string]any{
		"ownerEmail": input.Email,
	}

	if input.DisplayName != nil {
		userFields["displayName"] = *input.DisplayName
		petFields["ownerName"] = *input.DisplayName
	}
	if input.Role != nil {
		userFields["nivel"] = *input.Role
	}
	if input.PhotoURL != nil {
		userFields["photoURL"] = ptrFieldValue(input.PhotoURL)
	}
	if input.PhotoPath != nil {
		userFields["photoPath"] = ptrFieldValue(input.PhotoPath)
	}
	if input.Phone1 != nil {
		userFields["phone1"] = ptrFieldValue(input.Phone1)
		petFields["ownerPhone1"] = ptrFieldValue(input.Phone1)
	}
	if input.Phone2 != nil {
		userFields["phone2"] = ptrFieldValue(input.Phone2)
		petFields["ownerPhone2"] = ptrFieldValue(input.Phone2)
	}
	if input.Address != nil {
		userFields["address"] = ptrFieldValue(input.Address)
	}

	if err := s.userRepo.UpdateWithOwnedPetCascade(ctx, uid, userFields, petFields); err != nil {
		s.logger.ErrorContext(ctx, "failed to update user profile",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUserUpdateFailed
	}

	s.cleanupReplacedUserPhoto(ctx, existing.PhotoPath, input.PhotoPath)

	updated, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to reload user profile")
	}

	return updated, nil
}

// DeleteUserAndPets removes the account and every owned pet in one atomic
// write, then best-effort cleans up stored media. The identity provider
// account itself is not touched.
func (s *userService) DeleteUserAndPets(ctx context.Context, uid string) error {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to load user profile")
	}

	// Collect media references before the batch wipes the documents.
	pets, err := s.petRepo.FindByOwner(ctx, uid)
	if err != nil {
		s.logger.WarnContext(ctx, "could not list owned pets for media cleanup",
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		pets = nil
	}

	if err := s.userRepo.DeleteWithOwnedPets(ctx, uid); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user and pets",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return domainerrors.ErrUserDeleteFailed
	}

	for _, pet := range pets {
		s.deletePetPhotos(ctx, pet)
	}
	s.cleanupUserPhoto(ctx, user.PhotoPath)

	return nil
}

func (s *userService) deletePetPhotos(ctx context.Context, pet *entity.PetProfile) {
	for _, fileID := range []*string{pet.PhotoFileID, pet.PhotoFileID2} {
		if fileID == nil || *fileID == "" {
			continue
		}
		if err := s.mediaSvc.DeleteFile(ctx, *fileID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete pet photo",
				slog.String("pet_id", pet.ID),
				slog.String("file_id", *fileID),
				slog.Any("error", err),
			)
		}
	}
}

// cleanupUserPhoto removes the stored profile photo. Paths holding a full
// URL point at an external provider avatar and are not ours to delete.
func (s *userService) cleanupUserPhoto(ctx context.Context, path *string) {
	if path == nil || *path == "" || strings.HasPrefix(*path, "http") {
		return
	}

	if err := s.mediaSvc.DeleteByPath(ctx, *path); err != nil {
		s.logger.WarnContext(ctx, "failed to delete user photo",
			slog.String("path", *path),
			slog.Any("error", err),
		)
	}
}

func (s *userService) cleanupReplacedUserPhoto(ctx context.Context, oldPath, newPath *string) {
	if oldPath == nil || *oldPath == "" || newPath == nil {
		return
	}
	if *newPath == *oldPath {
		return
	}

	s.cleanupUserPhoto(ctx, oldPath)
}
