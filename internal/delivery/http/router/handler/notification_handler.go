package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/response"
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// notificationIDsRequest selects notifications for a bulk state change.
type notificationIDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// List returns the caller's notifications, newest first. An optional
// limit query parameter caps the page size.
func (h *NotificationHandler) List(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.uc.ListForUser(c.Request().Context(), caller.UID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead flips the read flag on the listed notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input notificationIDsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.MarkRead(c.Request().Context(), caller.UID, input.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
}

// Delete removes the listed notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input notificationIDsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), caller.UID, input.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications deleted successfully")
}

// Create stores a notification for an arbitrary recipient. Admin only.
func (h *NotificationHandler) Create(c echo.Context) error {
	var input usecase.NotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	id, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Notification created successfully")
}
