package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func newNotificationTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyCurrentUser, &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})

	return c, rec
}

func TestNotificationHandler_List_ParsesLimit(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	uc.EXPECT().ListForUser(mock.Anything, "uid-1", 5).
		Return([]*entity.AppNotification{{ID: "n1", UserID: "uid-1", Timestamp: time.Now()}}, nil)

	c, rec := newNotificationTestContext(t, http.MethodGet, "/notifications?limit=5", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "n1")
}

func TestNotificationHandler_List_IgnoresBadLimit(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	uc.EXPECT().ListForUser(mock.Anything, "uid-1", 0).
		Return([]*entity.AppNotification{}, nil)

	c, rec := newNotificationTestContext(t, http.MethodGet, "/notifications?limit=abc", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	uc.EXPECT().MarkRead(mock.Anything, "uid-1", []string{"n1", "n2"}).Return(nil)

	c, rec := newNotificationTestContext(t, http.MethodPost, "/notifications/mark-read", `{"ids":["n1","n2"]}`)

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_EmptyIDs(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	c, _ := newNotificationTestContext(t, http.MethodPost, "/notifications/mark-read", `{"ids":[]}`)

	err := h.MarkRead(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestNotificationHandler_Delete(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	uc.EXPECT().Delete(mock.Anything, "uid-1", []string{"n1"}).Return(nil)

	c, rec := newNotificationTestContext(t, http.MethodPost, "/notifications/delete", `{"ids":["n1"]}`)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_Create(t *testing.T) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc, newDiscardLogger())

	uc.EXPECT().Create(mock.Anything, mock.Anything).Return("notif-1", nil)

	body := `{"userId":"uid-2","type":"generic","title":"Hola","message":"Mensaje"}`
	c, rec := newNotificationTestContext(t, http.MethodPost, "/admin/notifications", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "notif-1")
}
