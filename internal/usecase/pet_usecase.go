package usecase

import (
	"context"

	"petlink/internal/domain/entity"
)

// PetInput carries the writable fields of a pet profile. Optional string
// fields use pointers so callers can distinguish "leave alone" from "clear".
// Only the name and species are required at binding time: an administrator
// may pre-register a shell carrying nothing else. Regular creation and every
// update need the complete profile, enforced by the service.
type PetInput struct {
	Name         string  `json:"nombre" validate:"required"`
	Species      string  `json:"tipoAnimal" validate:"required,oneof=Perro Gato"`
	Breed        string  `json:"raza"`
	BirthDate    string  `json:"fechaNacimiento"`
	Sex          string  `json:"sexo" validate:"omitempty,oneof=Macho Hembra"`
	SpecialTrait *string `json:"caracteristicaEspecial,omitempty"`
	OwnerName    string  `json:"ownerName"`
	OwnerEmail   *string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	OwnerPhone1  string  `json:"ownerPhone1"`
	OwnerPhone2  *string `json:"ownerPhone2,omitempty"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	PhotoPath    *string `json:"photoPath,omitempty"`
	PhotoFileID  *string `json:"photoFileId,omitempty"`
	PhotoURL2    *string `json:"photoUrl2,omitempty"`
	PhotoPath2   *string `json:"photoPath2,omitempty"`
	PhotoFileID2 *string `json:"photoFileId2,omitempty"`
	OwnerID      *string `json:"userId,omitempty"`
}

// ClaimInput links an unclaimed, pre-registered pet to the calling user.
type ClaimInput struct {
	PetID string `json:"petId" validate:"required"`
}

// ClaimResult reports what the claim changed.
type ClaimResult struct {
	Pet                    *entity.PetProfile `json:"pet"`
	NeedsProfileCompletion bool               `json:"needsProfileCompletion"`
}

// PetUsecase defines the interface for pet profile management use cases
type PetUsecase interface {
	// ListPets returns the pets visible to the caller. Admin and demo roles
	// see every pet; regular users see only their own.
	ListPets(ctx context.Context, caller *entity.AppUser) ([]*entity.PetProfile, error)

	// GetPet retrieves one pet by id. A blank id or unknown id yields nil
	// without error so public profile pages can render a not-found state.
	GetPet(ctx context.Context, petID string) (*entity.PetProfile, error)

	// CreatePet registers a new pet owned by ownerID. A nil ownerID creates
	// an unclaimed shell for later claiming. The creator is referenced in
	// the registration alert fanned out to administrators.
	CreatePet(ctx context.Context, input *PetInput, creator *entity.AppUser, ownerID *string) (*entity.PetProfile, error)

	// UpdatePet overwrites the editable fields of an existing pet.
	UpdatePet(ctx context.Context, petID string, input *PetInput) (*entity.PetProfile, error)

	// DeletePet removes the pet and best-effort deletes its stored photos.
	DeletePet(ctx context.Context, petID string) error

	// ClaimPet assigns an unclaimed pet to the calling user.
	ClaimPet(ctx context.Context, petID, userID string) (*ClaimResult, error)

	// ProfileQR renders the printable QR code for the pet's public page.
	ProfileQR(ctx context.Context, petID string) ([]byte, error)
}
