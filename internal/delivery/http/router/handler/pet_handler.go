// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/response"
	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PetHandler holds dependencies for pet-related handlers.
type PetHandler struct {
	uc     usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPets returns the pets visible to the caller.
func (h *PetHandler) ListPets(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	pets, err := h.uc.ListPets(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// GetPet returns one pet profile by id.
func (h *PetHandler) GetPet(c echo.Context) error {
	pet, err := h.loadAccessiblePet(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pet, "Pet retrieved successfully")
}

// CreatePet registers a new pet. Regular users always own what they create;
// admins may create unclaimed shells or assign another owner directly.
func (h *PetHandler) CreatePet(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ownerID := input.OwnerID
	if caller.EffectiveRole() != entity.RoleAdmin {
		ownerID = &caller.UID
	}

	pet, err := h.uc.CreatePet(c.Request().Context(), &input, caller, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet registered successfully")
}

// UpdatePet overwrites the editable fields of a pet the caller may manage.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	pet, err := h.loadAccessiblePet(c)
	if err != nil {
		return err
	}

	var input usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdatePet(c.Request().Context(), pet.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Pet updated successfully")
}

// DeletePet removes a pet the caller may manage.
func (h *PetHandler) DeletePet(c echo.Context) error {
	pet, err := h.loadAccessiblePet(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePet(c.Request().Context(), pet.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pet deleted successfully")
}

// ClaimPet links an unclaimed, pre-registered pet to the calling user.
func (h *PetHandler) ClaimPet(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input usecase.ClaimInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ClaimPet(c.Request().Context(), input.PetID, caller.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Pet claimed successfully")
}

// ProfileQR renders the printable QR code for the pet's public page.
func (h *PetHandler) ProfileQR(c echo.Context) error {
	pet, err := h.loadAccessiblePet(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ProfileQR(c.Request().Context(), pet.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// loadAccessiblePet resolves the :petId parameter and checks that the
// caller may reach the record. Roles that see the full directory reach
// every pet; regular users only their own. Mutating routes additionally
// pass through the write-access middleware.
func (h *PetHandler) loadAccessiblePet(c echo.Context) (*entity.PetProfile, error) {
	caller := middleware.CurrentUser(c)

	pet, err := h.uc.GetPet(c.Request().Context(), c.Param("petId"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if pet == nil {
		return nil, domainerrors.ErrPetNotFound
	}

	if !caller.EffectiveRole().SeesAllPets() {
		if pet.UserID == nil || *pet.UserID != caller.UID {
			return nil, domainerrors.ErrForbidden.WithDetails("pet belongs to another user")
		}
	}

	return pet, nil
}
