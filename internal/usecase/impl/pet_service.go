// Package impl contains the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/repository"
	"petlink/internal/domain/service"
	"petlink/internal/errors"
	"petlink/internal/usecase"
)

const (
	// Placeholder values written into shell records pre-registered by an
	// administrator, replaced when the owner claims the pet.
	breedPendingPlaceholder = "Raza Pendiente"
	ownerPendingPlaceholder = "Dueño Pendiente (Cliente completará)"
	phonePendingPlaceholder = "0000000"

	placeholderPhotoBase = "https://placehold.co/300x200.png"
)

// referenceTimezone anchors birth dates at local midnight.
const referenceTimezone = "America/Bogota"

type petService struct {
	petRepo        repository.PetRepository
	mediaSvc       service.MediaService
	qrSvc          service.QRCodeService
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
	now            func() time.Time
	birthDateZone  *time.Location
}

// NewPetService creates a new pet profile service instance
func NewPetService(
	petRepo repository.PetRepository,
	mediaSvc service.MediaService,
	qrSvc service.QRCodeService,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.PetUsecase {
	zone, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		// UTC-5, no DST; matches the reference zone year-round.
		zone = time.FixedZone("-05", -5*60*60)
	}

	return &petService{
		petRepo:        petRepo,
		mediaSvc:       mediaSvc,
		qrSvc:          qrSvc,
		notificationUC: notificationUC,
		logger:         logger,
		now:            time.Now,
		birthDateZone:  zone,
	}
}

// ListPets returns the pets the caller may see. List surfaces render an
// empty state rather than an error page, so store failures degrade to an
// empty result.
func (s *petService) ListPets(ctx context.Context, caller *entity.AppUser) ([]*entity.PetProfile, error) {
	var (
		pets []*entity.PetProfile
		err  error
	)

	if caller.EffectiveRole().SeesAllPets() {
		pets, err = s.petRepo.FindAll(ctx)
	} else {
		pets, err = s.petRepo.FindByOwner(ctx, caller.UID)
	}

	if err != nil {
		if errors.Is(err, repository.ErrIndexMissing) {
			s.logger.WarnContext(ctx, "pet list query needs a composite index",
				slog.String("uid", caller.UID),
				slog.Any("error", err),
			)
		} else {
			s.logger.ErrorContext(ctx, "failed to list pets",
				slog.String("uid", caller.UID),
				slog.Any("error", err),
			)
		}

		return []*entity.PetProfile{}, nil
	}

	return pets, nil
}

// GetPet returns one pet, or nil for blank and unknown ids so the public
// profile page can render its not-found state.
func (s *petService) GetPet(ctx context.Context, petID string) (*entity.PetProfile, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, nil
	}

	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load pet profile")
	}

	return pet, nil
}

// CreatePet registers a new pet. A nil ownerID produces an unclaimed shell
// record with placeholder contact data for the owner to complete on claim.
func (s *petService) CreatePet(ctx context.Context, input *usecase.PetInput, creator *entity.AppUser, ownerID *string) (*entity.PetProfile, error) {
	if !entity.Species(input.Species).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tipoAnimal must be Perro or Gato")
	}
	if input.Sex != "" && !entity.Sex(input.Sex).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sexo must be Macho or Hembra")
	}

	// Only an unclaimed shell may omit the rest of the profile; creating a
	// pet for a known owner submits the full registration form.
	if ownerID != nil {
		if err := requireCompleteProfile(input); err != nil {
			return nil, err
		}
	}

	now := s.now()

	var sex *string
	if input.Sex != "" {
		sex = strPtr(input.Sex)
	}

	pet := &entity.PetProfile{
		Name:         input.Name,
		Species:      entity.Species(input.Species),
		Sex:          sex,
		SpecialTrait: input.SpecialTrait,
		BirthDate:    s.normalizeBirthDate(ctx, input.BirthDate),
		OwnerEmail:   input.OwnerEmail,
		OwnerPhone2:  input.OwnerPhone2,
		PhotoPath:    input.PhotoPath,
		PhotoFileID:  input.PhotoFileID,
		PhotoURL2:    input.PhotoURL2,
		PhotoPath2:   input.PhotoPath2,
		PhotoFileID2: input.PhotoFileID2,
		CreatedAt:    now,
		UserID:       ownerID,
		ScanHistory:  []entity.ScanLocation{},
	}

	// Shell records pre-registered by an admin carry placeholders until the
	// owner claims and completes them.
	breed := input.Breed
	ownerName := input.OwnerName
	phone1 := input.OwnerPhone1
	if ownerID == nil {
		if breed == "" {
			breed = breedPendingPlaceholder
		}
		if ownerName == "" {
			ownerName = ownerPendingPlaceholder
		}
		if phone1 == "" {
			phone1 = phonePendingPlaceholder
		}
	}
	pet.Breed = strPtr(breed)
	pet.OwnerName = strPtr(ownerName)
	pet.OwnerPhone1 = strPtr(phone1)

	if input.PhotoURL != nil && *input.PhotoURL != "" {
		pet.PhotoURL = *input.PhotoURL
	} else {
		pet.PhotoURL = placeholderPhotoURL(input.Name, input.Species)
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		s.logger.ErrorContext(ctx, "failed to create pet profile",
			slog.String("name", input.Name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPetCreationFailed
	}

	// The profile exists either way; a failed fanout only costs admins an
	// inbox entry.
	if err := s.notificationUC.NotifyAdminsOfNewPet(ctx, pet, creator); err != nil {
		s.logger.WarnContext(ctx, "failed to notify admins of new pet",
			slog.String("pet_id", pet.ID),
			slog.Any("error", err),
		)
	}

	return pet, nil
}

// UpdatePet overwrites the editable fields of an existing pet. Clearing an
// optional field stores null; replaced photos are best-effort deleted from
// the CDN after the write.
func (s *petService) UpdatePet(ctx context.Context, petID string, input *usecase.PetInput) (*entity.PetProfile, error) {
	if err := requireCompleteProfile(input); err != nil {
		return nil, err
	}

	existing, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load pet profile")
	}

	fields := map[string]any{
		"name":                   input.Name,
		"tipoAnimal":             input.Species,
		"breed":                  input.Breed,
		"fechaNacimiento":        s.normalizeBirthDate(ctx, input.BirthDate),
		"sexo":                   input.Sex,
		"caracteristicaEspecial": ptrFieldValue(input.SpecialTrait),
		"ownerName":              input.OwnerName,
		"ownerEmail":             ptrFieldValue(input.OwnerEmail),
		"ownerPhone1":            input.OwnerPhone1,
		"ownerPhone2":            ptrFieldValue(input.OwnerPhone2),
		"photoPath":              ptrFieldValue(input.PhotoPath),
		"photoFileId":            ptrFieldValue(input.PhotoFileID),
		"photoUrl2":              ptrFieldValue(input.PhotoURL2),
		"photoPath2":             ptrFieldValue(input.PhotoPath2),
		"photoFileId2":           ptrFieldValue(input.PhotoFileID2),
	}

	if input.PhotoURL != nil && *input.PhotoURL != "" {
		fields["photoUrl"] = *input.PhotoURL
	} else {
		fields["photoUrl"] = placeholderPhotoURL(input.Name, input.Species)
	}

	if err := s.petRepo.Update(ctx, petID, fields); err != nil {
		s.logger.ErrorContext(ctx, "failed to update pet profile",
			slog.String("pet_id", petID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPetUpdateFailed
	}

	s.cleanupReplacedPhoto(ctx, existing.PhotoFileID, input.PhotoFileID)
	s.cleanupReplacedPhoto(ctx, existing.PhotoFileID2, input.PhotoFileID2)

	updated, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to reload pet profile")
	}

	return updated, nil
}

// DeletePet removes the pet document, then best-effort deletes its stored
// photos. Media failures are logged, never surfaced: the profile is gone.
func (s *petService) DeletePet(ctx context.Context, petID string) error {
	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return domainerrors.ErrPetNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to load pet profile")
	}

	if err := s.petRepo.Delete(ctx, petID); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete pet profile")
	}

	s.deletePhoto(ctx, pet.PhotoFileID, pet.PhotoPath)
	s.deletePhoto(ctx, pet.PhotoFileID2, pet.PhotoPath2)

	return nil
}

// ClaimPet binds an unclaimed shell record to userID. The result flags
// whether placeholder data remains for the new owner to complete.
func (s *petService) ClaimPet(ctx context.Context, petID, userID string) (*usecase.ClaimResult, error) {
	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetIdentifierNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load pet profile")
	}

	if pet.IsClaimed() {
		return nil, domainerrors.ErrPetClaimFailed.WithDetails("pet already has a registered owner")
	}

	if err := s.petRepo.SetOwner(ctx, petID, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to claim pet",
			slog.String("pet_id", petID),
			slog.String("uid", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPetClaimFailed
	}

	pet.UserID = &userID

	return &usecase.ClaimResult{
		Pet:                    pet,
		NeedsProfileCompletion: hasPlaceholderData(pet),
	}, nil
}

// ProfileQR renders the printable QR code for the pet's public page.
func (s *petService) ProfileQR(ctx context.Context, petID string) ([]byte, error) {
	pet, err := s.GetPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domainerrors.ErrPetNotFound
	}

	png, err := s.qrSvc.GenerateProfileQR(petID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to render QR code")
	}

	return png, nil
}

// normalizeBirthDate parses an ISO date and anchors it at local midnight in
// the reference timezone. Blank and unparseable input fall back to one year
// ago, a plausible default age for a rescue animal of unknown history; shell
// records legitimately omit the date, so only garbage gets logged.
func (s *petService) normalizeBirthDate(ctx context.Context, raw string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.birthDateZone)
		}
	}

	if raw != "" {
		s.logger.WarnContext(ctx, "unparseable birth date, defaulting to one year ago",
			slog.String("raw", raw),
		)
	}

	fallback := s.now().In(s.birthDateZone).AddDate(-1, 0, 0)

	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, s.birthDateZone)
}

// cleanupReplacedPhoto deletes the previous CDN file when the update swapped
// it for a different one.
func (s *petService) cleanupReplacedPhoto(ctx context.Context, oldFileID, newFileID *string) {
	if oldFileID == nil || *oldFileID == "" {
		return
	}
	if newFileID != nil && *newFileID == *oldFileID {
		return
	}

	if err := s.mediaSvc.DeleteFile(ctx, *oldFileID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete replaced photo",
			slog.String("file_id", *oldFileID),
			slog.Any("error", err),
		)
	}
}

// deletePhoto removes a stored photo by file id, falling back to path
// lookup. External URLs stored as paths are skipped.
func (s *petService) deletePhoto(ctx context.Context, fileID, path *string) {
	switch {
	case fileID != nil && *fileID != "":
		if err := s.mediaSvc.DeleteFile(ctx, *fileID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete pet photo",
				slog.String("file_id", *fileID),
				slog.Any("error", err),
			)
		}
	case path != nil && *path != "" && !strings.HasPrefix(*path, "http"):
		if err := s.mediaSvc.DeleteByPath(ctx, *path); err != nil {
			s.logger.WarnContext(ctx, "failed to delete pet photo by path",
				slog.String("path", *path),
				slog.Any("error", err),
			)
		}
	}
}

// requireCompleteProfile checks the fields the full registration and edit
// forms always submit.
func requireCompleteProfile(input *usecase.PetInput) error {
	if input.Breed == "" || input.BirthDate == "" || input.Sex == "" ||
		input.OwnerName == "" || input.OwnerPhone1 == "" {
		return domainerrors.ErrValidationFailed.WithDetails(
			"raza, fechaNacimiento, sexo, ownerName and ownerPhone1 are required")
	}

	return nil
}

func hasPlaceholderData(pet *entity.PetProfile) bool {
	if pet.Breed != nil && *pet.Breed == breedPendingPlaceholder {
		return true
	}
	if pet.OwnerName != nil && *pet.OwnerName == ownerPendingPlaceholder {
		return true
	}
	if pet.OwnerPhone1 != nil && *pet.OwnerPhone1 == phonePendingPlaceholder {
		return true
	}

	return false
}

func placeholderPhotoURL(name, species string) string {
	return fmt.Sprintf("%s?text=%s&data-ai-hint=%s",
		placeholderPhotoBase,
		url.QueryEscape(name),
		url.QueryEscape(strings.ToLower(species)),
	)
}

func strPtr(s string) *string {
	return &s
}

// ptrFieldValue maps an optional input onto the stored field: nil and empty
// both clear it, anything else overwrites.
func ptrFieldValue(p *string) any {
	if p == nil || *p == "" {
		return nil
	}

	return *p
}
