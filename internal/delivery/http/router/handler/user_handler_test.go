package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/validator"
	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	mockUC "petlink/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestContext(t *testing.T, method, path, body string, caller *entity.AppUser) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.ContextKeyCurrentUser, caller)
	}

	return c, rec
}

func TestUserHandler_Register_FirstSignIn(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	caller := &entity.AppUser{UID: "uid-new", Role: entity.RoleUser}
	uc.EXPECT().GetUser(mock.Anything, "uid-new").Return(nil, nil)
	uc.EXPECT().RegisterUser(mock.Anything, "uid-new", mock.Anything).
		Return(&entity.AppUser{UID: "uid-new", Email: "maria@example.com", DisplayName: "maria"}, nil)

	c, rec := newUserTestContext(t, http.MethodPost, "/auth/register", `{"email":"maria@example.com"}`, caller)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "maria@example.com")
}

func TestUserHandler_Register_AlreadyRegistered(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	existing := &entity.AppUser{UID: "uid-1", Email: "a@example.com", DisplayName: "Ana"}
	uc.EXPECT().GetUser(mock.Anything, "uid-1").Return(existing, nil)

	c, rec := newUserTestContext(t, http.MethodPost, "/auth/register", `{"email":"a@example.com"}`, &entity.AppUser{UID: "uid-1"})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestUserHandler_GetProfile_UnregisteredIdentity(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().GetUser(mock.Anything, "uid-1").Return(nil, nil)

	c, _ := newUserTestContext(t, http.MethodGet, "/profile", "", &entity.AppUser{UID: "uid-1"})

	err := h.GetProfile(c)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	caller := &entity.AppUser{UID: "uid-1", Role: entity.RoleUser}
	uc.EXPECT().UpdateUser(mock.Anything, "uid-1", mock.Anything, caller).
		Return(&entity.AppUser{UID: "uid-1", Email: "new@example.com"}, nil)

	c, rec := newUserTestContext(t, http.MethodPut, "/profile", `{"email":"new@example.com"}`, caller)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_AdminCreateUser_RequiresUID(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newUserTestContext(t, http.MethodPost, "/admin/users", `{"email":"a@example.com"}`, &entity.AppUser{UID: "admin-1", Role: entity.RoleAdmin})

	err := h.CreateUser(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserHandler_AdminDeleteUser(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().DeleteUserAndPets(mock.Anything, "uid-2").Return(nil)

	c, rec := newUserTestContext(t, http.MethodDelete, "/admin/users/uid-2", "", &entity.AppUser{UID: "admin-1", Role: entity.RoleAdmin})
	c.SetParamNames("uid")
	c.SetParamValues("uid-2")

	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
