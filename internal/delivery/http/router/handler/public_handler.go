package handler

import (
	"log/slog"
	"net/http"

	"petlink/config"
	deliverycontext "petlink/internal/delivery/context"
	"petlink/internal/delivery/http/response"
	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicHandler serves the unauthenticated pet profile surface: the page a
// stranger lands on after scanning a tag.
type PublicHandler struct {
	petUC  usecase.PetUsecase
	scanUC usecase.ScanUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler, injected by Fx.
func NewPublicHandler(petUC usecase.PetUsecase, scanUC usecase.ScanUsecase, cfg *config.Config, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{
		petUC:  petUC,
		scanUC: scanUC,
		cfg:    cfg,
		logger: logger,
	}
}

// publicProfile is the payload the public page renders. The maps API key
// rides along so the client can draw the scan history without a separate
// config round trip.
type publicProfile struct {
	Pet        *entity.PetProfile `json:"pet"`
	MapsAPIKey string             `json:"mapsApiKey,omitempty"`
}

// GetProfile returns the public profile of one pet.
func (h *PublicHandler) GetProfile(c echo.Context) error {
	pet, err := h.petUC.GetPet(c.Request().Context(), c.Param("petId"))
	if err != nil {
		return errors.WithStack(err)
	}
	if pet == nil {
		return domainerrors.ErrPetNotFound
	}

	profile := &publicProfile{Pet: pet}
	if h.cfg.Maps != nil {
		profile.MapsAPIKey = h.cfg.Maps.APIKey
	}

	return response.Success(c, http.StatusOK, profile, "Pet profile retrieved successfully")
}

// RecordScan records a tag scan reported by the public page.
func (h *PublicHandler) RecordScan(c echo.Context) error {
	var input usecase.ScanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.RequestID = deliverycontext.GetRequestID(c)

	result, err := h.scanUC.RecordScan(c.Request().Context(), c.Param("petId"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Scan recorded successfully")
}
