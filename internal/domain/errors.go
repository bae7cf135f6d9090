package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrNonPositiveAmount     = errors.New("el monto debe ser mayor a 0")
	ErrPaymentExceedsBalance = errors.New("el abono excede el saldo pendiente")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrInvoiceHasPayments    = errors.New("la factura tiene abonos registrados")
	ErrLockTimeout           = errors.New("recurso ocupado, intente de nuevo")
	ErrTransport             = errors.New("almacenamiento no disponible")
)

// ValidationError error de validación con mensaje legible para el usuario.
// Se compara con errors.Is contra su centinela (ErrInvalidInput, ErrNonPositiveAmount, ...).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

// Invalid construye un ValidationError atado a ErrInvalidInput.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Err: ErrInvalidInput}
}

// NotFound envuelve ErrNotFound con el tipo de recurso e id.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
}

// IsValidation indica si err es un error de validación (nunca se aplicó ninguna mutación).
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
