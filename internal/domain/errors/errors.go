// Package errors defines the application error contract: a typed AppError
// carrying an HTTP status, a stable business code and a user-facing message,
// plus the predefined error values of the progression domain.
package errors

import (
	"net/http"

	"ascend/internal/errors"
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

// Is matches on the business code, so a detail-carrying copy still compares
// equal to its predefined value under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Predefined error types
var (
	// Profile and session errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontró el perfil del usuario",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"No hay una sesión activa para este usuario",
		"",
	)

	// Collection errors
	ErrHabitNotFound = NewBaseError(
		http.StatusNotFound,
		"HABIT_NOT_FOUND",
		"No se encontró el hábito",
		"",
	)

	ErrGoalNotFound = NewBaseError(
		http.StatusNotFound,
		"GOAL_NOT_FOUND",
		"No se encontró la meta",
		"",
	)

	ErrSleepLogNotFound = NewBaseError(
		http.StatusNotFound,
		"SLEEP_LOG_NOT_FOUND",
		"No se encontró el registro de sueño",
		"",
	)

	ErrUnknownHabitCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_HABIT_CATEGORY",
		"La categoría de hábito no existe",
		"",
	)

	// Era errors
	ErrEraNotFound = NewBaseError(
		http.StatusNotFound,
		"ERA_NOT_FOUND",
		"No se encontró la era",
		"",
	)

	ErrEraAlreadyCompleted = NewBaseError(
		http.StatusConflict,
		"ERA_ALREADY_COMPLETED",
		"Esta era ya fue completada",
		"",
	)

	ErrEraAlreadyCurrent = NewBaseError(
		http.StatusConflict,
		"ERA_ALREADY_CURRENT",
		"Esta era ya está en curso",
		"",
	)

	ErrEraStartLocked = NewBaseError(
		http.StatusBadRequest,
		"ERA_START_LOCKED",
		"Aún no cumples los requisitos para iniciar esta era",
		"",
	)

	ErrNoCurrentEra = NewBaseError(
		http.StatusConflict,
		"NO_CURRENT_ERA",
		"No hay ninguna era en curso",
		"",
	)

	ErrEraNotUserCreated = NewBaseError(
		http.StatusForbidden,
		"ERA_NOT_USER_CREATED",
		"Solo las eras creadas por el usuario pueden eliminarse",
		"",
	)

	// Progression errors
	ErrInsufficientXP = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_XP",
		"No tienes suficiente experiencia",
		"",
	)

	ErrSkillNotFound = NewBaseError(
		http.StatusNotFound,
		"SKILL_NOT_FOUND",
		"No se encontró la habilidad",
		"",
	)

	ErrSkillAlreadyUnlocked = NewBaseError(
		http.StatusConflict,
		"SKILL_ALREADY_UNLOCKED",
		"Esta habilidad ya fue desbloqueada",
		"",
	)

	// Remote store errors
	ErrRemoteWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_WRITE_FAILED",
		"No se pudo guardar el cambio; se restauró el estado anterior",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos de entrada no son válidos",
		"",
	)

	// External AI service errors
	ErrAIServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"AI_SERVICE_UNAVAILABLE",
		"El servicio de texto generativo no está disponible",
		"",
	)

	ErrUnknownQuoteCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_QUOTE_CATEGORY",
		"La categoría de cita no existe",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)
