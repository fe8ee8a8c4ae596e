package handler

import (
	"log/slog"
	"net/http"

	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/response"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// adminUserRequest is the admin variant of the profile payload: it names
// the target identity explicitly instead of taking it from the token.
type adminUserRequest struct {
	UID string `json:"uid" validate:"required"`
	usecase.UserProfileInput
}

// Register creates the account document for the authenticated identity on
// first sign-in. Registering twice is harmless: the existing profile is
// returned untouched.
func (h *UserHandler) Register(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input usecase.UserProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	existing, err := h.uc.GetUser(c.Request().Context(), caller.UID)
	if err != nil {
		return errors.WithStack(err)
	}
	if existing != nil {
		return response.Success(c, http.StatusOK, existing, "User already registered")
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), caller.UID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// GetProfile returns the caller's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	user, err := h.uc.GetUser(c.Request().Context(), caller.UID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrUserNotFound
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile rewrites the caller's own account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input usecase.UserProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), caller.UID, &input, caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// ListUsers returns every account for the admin directory.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetUser returns one account by uid for the admin directory.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrUserNotFound
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// CreateUser lets an admin create an account document for a known identity.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input adminUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), input.UID, &input.UserProfileInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser lets an admin rewrite any account, roles included.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var input usecase.UserProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), c.Param("uid"), &input, caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes an account and every pet it owns.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeleteUserAndPets(c.Request().Context(), c.Param("uid")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User and owned pets deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
