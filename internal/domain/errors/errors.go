// Package errors defines the application error taxonomy: errors that carry an
// HTTP status, a stable business error code and a user-facing message.
package errors

import (
	"net/http"

	"perfumeria/internal/errors"
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

// Predefined error types
var (
	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"No encontramos tu carrito",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_EMPTY",
		"Tu carrito está vacío",
		"",
	)

	// Order-related errors
	ErrNoWhatsAppNumber = NewBaseError(
		http.StatusServiceUnavailable,
		"NO_WHATSAPP_NUMBER",
		"La tienda no tiene un número de WhatsApp configurado",
		"",
	)

	ErrCustomerNameInvalid = NewBaseError(
		http.StatusBadRequest,
		"CUSTOMER_NAME_INVALID",
		"El nombre debe tener al menos 3 caracteres",
		"",
	)

	ErrCustomerEmailInvalid = NewBaseError(
		http.StatusBadRequest,
		"CUSTOMER_EMAIL_INVALID",
		"El correo electrónico no es válido",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No encontramos ese producto",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusBadGateway,
		"STORE_UNAVAILABLE",
		"La tienda no está disponible por el momento",
		"",
	)

	ErrSiteExpired = NewBaseError(
		http.StatusGone,
		"SITE_EXPIRED",
		"El sitio de la tienda está desactivado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
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
		"No encontramos el recurso",
		"",
	)
)

// StorageExecuteError represents a cart-storage execution error, implementing
// the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "cart storage execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "No pudimos guardar tu carrito"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
