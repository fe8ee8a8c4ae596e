package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"petlink/internal/domain/service"
	mockSvc "petlink/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaHandler_UploadAuth(t *testing.T) {
	mediaSvc := mockSvc.NewMockMediaService(t)
	h := NewMediaHandler(mediaSvc, newDiscardLogger())

	mediaSvc.EXPECT().UploadAuthParams().Return(&service.UploadCredentials{
		Token:     "token-1",
		Expire:    1748781000,
		Signature: "abcdef",
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/imagekit-auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UploadAuth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"token-1"`)
	assert.Contains(t, rec.Body.String(), `"signature":"abcdef"`)
}

func TestMediaHandler_UploadAuth_NotConfigured(t *testing.T) {
	mediaSvc := mockSvc.NewMockMediaService(t)
	h := NewMediaHandler(mediaSvc, newDiscardLogger())

	mediaSvc.EXPECT().UploadAuthParams().Return(nil, errors.New("credentials not configured"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/imagekit-auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UploadAuth(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "MEDIA_NOT_CONFIGURED")
}
