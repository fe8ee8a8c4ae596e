package handler

import (
	"log/slog"
	"net/http"

	"petlink/internal/delivery/http/response"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// MediaHandler exposes the upload credential endpoint of the media CDN.
type MediaHandler struct {
	mediaSvc service.MediaService
	logger   *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(mediaSvc service.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
		logger:   logger,
	}
}

// UploadAuth hands the client short-lived credentials for a direct upload
// to the CDN. The raw triple goes out without the envelope: the upload
// widget consumes it verbatim.
func (h *MediaHandler) UploadAuth(c echo.Context) error {
	credentials, err := h.mediaSvc.UploadAuthParams()
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "upload credentials unavailable",
			slog.Any("error", err),
		)

		return response.Error(c,
			domainerrors.ErrMediaNotConfigured.HTTPCode(),
			domainerrors.ErrMediaNotConfigured.ErrorCode(),
			domainerrors.ErrMediaNotConfigured.Message(),
			nil,
		)
	}

	return c.JSON(http.StatusOK, credentials)
}
