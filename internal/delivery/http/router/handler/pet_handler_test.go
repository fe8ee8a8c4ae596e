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
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPetTestContext(t *testing.T, method, path, body string, caller *entity.AppUser) (echo.Context, *httptest.ResponseRecorder) {
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

func ownedPet(id, ownerUID string) *entity.PetProfile {
	return &entity.PetProfile{ID: id, Name: "Rocky", UserID: &ownerUID}
}

func TestPetHandler_ListPets(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	caller := &entity.AppUser{UID: "uid-1", Role: entity.RoleUser}
	petUC.EXPECT().ListPets(mock.Anything, caller).
		Return([]*entity.PetProfile{ownedPet("pet-1", "uid-1")}, nil)

	c, rec := newPetTestContext(t, http.MethodGet, "/pets", "", caller)

	require.NoError(t, h.ListPets(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pet-1")
}

func TestPetHandler_GetPet_ForbiddenForOtherOwner(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	petUC.EXPECT().GetPet(mock.Anything, "pet-1").Return(ownedPet("pet-1", "other-uid"), nil)

	c, _ := newPetTestContext(t, http.MethodGet, "/pets/pet-1", "", &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})
	c.SetParamNames("petId")
	c.SetParamValues("pet-1")

	err := h.GetPet(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestPetHandler_GetPet_UnknownIsNotFound(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	petUC.EXPECT().GetPet(mock.Anything, "ghost").Return(nil, nil)

	c, _ := newPetTestContext(t, http.MethodGet, "/pets/ghost", "", &entity.AppUser{UID: "uid-1", Role: entity.RoleAdmin})
	c.SetParamNames("petId")
	c.SetParamValues("ghost")

	err := h.GetPet(c)

	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestPetHandler_GetPet_DemoSeesEveryPet(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	petUC.EXPECT().GetPet(mock.Anything, "pet-1").Return(ownedPet("pet-1", "other-uid"), nil)

	c, rec := newPetTestContext(t, http.MethodGet, "/pets/pet-1", "", &entity.AppUser{UID: "demo-1", Role: entity.RoleDemo})
	c.SetParamNames("petId")
	c.SetParamValues("pet-1")

	require.NoError(t, h.GetPet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_CreatePet_RegularUserOwnsTheRecord(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	caller := &entity.AppUser{UID: "uid-1", Role: entity.RoleUser}
	petUC.EXPECT().CreatePet(mock.Anything, mock.Anything, caller, mock.MatchedBy(func(ownerID *string) bool {
		return ownerID != nil && *ownerID == "uid-1"
	})).Return(ownedPet("pet-1", "uid-1"), nil)

	body := `{"nombre":"Rocky","tipoAnimal":"Perro","raza":"Criollo","fechaNacimiento":"2024-01-15","sexo":"Macho","ownerName":"Juan","ownerPhone1":"3001234567","userId":"somebody-else"}`
	c, rec := newPetTestContext(t, http.MethodPost, "/pets", body, caller)

	require.NoError(t, h.CreatePet(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPetHandler_CreatePet_AdminMayCreateUnclaimedShell(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	caller := &entity.AppUser{UID: "admin-1", Role: entity.RoleAdmin}
	petUC.EXPECT().CreatePet(mock.Anything, mock.Anything, caller, (*string)(nil)).
		Return(&entity.PetProfile{ID: "pet-1", Name: "Luna"}, nil)

	// Pre-registration submits nothing beyond name and species.
	body := `{"nombre":"Luna","tipoAnimal":"Gato"}`
	c, rec := newPetTestContext(t, http.MethodPost, "/pets", body, caller)

	require.NoError(t, h.CreatePet(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPetHandler_CreatePet_InvalidSpecies(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	body := `{"nombre":"Rocky","tipoAnimal":"Pez","raza":"Criollo","fechaNacimiento":"2024-01-15","sexo":"Macho","ownerName":"Juan","ownerPhone1":"3001234567"}`
	c, _ := newPetTestContext(t, http.MethodPost, "/pets", body, &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})

	err := h.CreatePet(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPetHandler_ClaimPet(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	petUC.EXPECT().ClaimPet(mock.Anything, "pet-1", "uid-1").
		Return(&usecase.ClaimResult{Pet: ownedPet("pet-1", "uid-1"), NeedsProfileCompletion: true}, nil)

	c, rec := newPetTestContext(t, http.MethodPost, "/pets/claim", `{"petId":"pet-1"}`, &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})

	require.NoError(t, h.ClaimPet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"needsProfileCompletion":true`)
}

func TestPetHandler_DeletePet_OwnerMayDelete(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	petUC.EXPECT().GetPet(mock.Anything, "pet-1").Return(ownedPet("pet-1", "uid-1"), nil)
	petUC.EXPECT().DeletePet(mock.Anything, "pet-1").Return(nil)

	c, rec := newPetTestContext(t, http.MethodDelete, "/pets/pet-1", "", &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})
	c.SetParamNames("petId")
	c.SetParamValues("pet-1")

	require.NoError(t, h.DeletePet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_ProfileQR_RendersPNG(t *testing.T) {
	petUC := mockUC.NewMockPetUsecase(t)
	h := NewPetHandler(petUC, newDiscardLogger())

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	petUC.EXPECT().GetPet(mock.Anything, "pet-1").Return(ownedPet("pet-1", "uid-1"), nil)
	petUC.EXPECT().ProfileQR(mock.Anything, "pet-1").Return(png, nil)

	c, rec := newPetTestContext(t, http.MethodGet, "/pets/pet-1/qr", "", &entity.AppUser{UID: "uid-1", Role: entity.RoleUser})
	c.SetParamNames("petId")
	c.SetParamValues("pet-1")

	require.NoError(t, h.ProfileQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
