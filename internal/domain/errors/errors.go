package errors

import (
	"net/http"

	"petlink/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Spanish, matching the
// locale of the product surface.
var (
	// Pet-related errors
	ErrPetNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_NOT_FOUND",
		"Mascota no encontrada",
		"",
	)

	ErrPetIdentifierNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_IDENTIFIER_NOT_FOUND",
		"Mascota con ese identificador no encontrada.",
		"",
	)

	ErrPetCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PET_CREATION_FAILED",
		"Ocurrió un error inesperado al crear el perfil de la mascota. Por favor, inténtalo de nuevo más tarde.",
		"",
	)

	ErrPetUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PET_UPDATE_FAILED",
		"Ocurrió un error inesperado al guardar los datos de la mascota. Por favor, inténtalo de nuevo más tarde.",
		"",
	)

	ErrPetClaimFailed = NewBaseError(
		http.StatusInternalServerError,
		"PET_CLAIM_FAILED",
		"Error al intentar reclamar la mascota. Por favor, verifica el identificador e inténtalo de nuevo.",
		"",
	)

	ErrScanRecordFailed = NewBaseError(
		http.StatusInternalServerError,
		"SCAN_RECORD_FAILED",
		"Error al registrar escaneo en la base de datos.",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Perfil de usuario no encontrado.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Ocurrió un error inesperado al crear el perfil de usuario.",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Ocurrió un error inesperado al actualizar el perfil y/o las mascotas asociadas.",
		"",
	)

	ErrUserDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_DELETE_FAILED",
		"Ocurrió un error inesperado al eliminar el usuario y sus mascotas.",
		"",
	)

	// Notification-related errors
	ErrNotificationRecipientMissing = NewBaseError(
		http.StatusBadRequest,
		"NOTIFICATION_RECIPIENT_MISSING",
		"Error interno: El destinatario de la notificación no está especificado.",
		"",
	)

	ErrNotificationOwnerUnknown = NewBaseError(
		http.StatusBadRequest,
		"NOTIFICATION_OWNER_UNKNOWN",
		"Dueño no identificado para la mascota.",
		"",
	)

	ErrNotificationIDsInvalid = NewBaseError(
		http.StatusBadRequest,
		"NOTIFICATION_IDS_INVALID",
		"IDs de notificación o ID de usuario no válidos.",
		"",
	)

	// Media-related errors
	ErrMediaNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_NOT_CONFIGURED",
		"El servicio de imágenes no está configurado en el servidor.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada no válidos.",
		"",
	)

	// Missing composite index on the store. The list query on
	// mascotas(userId ASC, createdAt DESC) requires it.
	ErrStoreIndexMissing = NewBaseError(
		http.StatusInternalServerError,
		"STORE_INDEX_MISSING",
		"La consulta falló: probablemente falta un índice compuesto o se está construyendo.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado.",
		"",
	)

	ErrDemoReadOnly = NewBaseError(
		http.StatusForbidden,
		"DEMO_READ_ONLY",
		"La cuenta de demostración no puede realizar cambios.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado.",
		"",
	)
)

// StoreExecuteError represents a document store execution error,
// implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos."
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
