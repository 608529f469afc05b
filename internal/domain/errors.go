package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConstraintViolation = errors.New("restricción de integridad violada")
)

// ConstraintError es el rechazo del almacenamiento (FK, unicidad, check).
// Reason viaja sin modificar hasta el cliente.
type ConstraintError struct {
	Reason string
}

func (e *ConstraintError) Error() string { return e.Reason }

func (e *ConstraintError) Unwrap() error { return ErrConstraintViolation }

// NewConstraintError construye el error con el mensaje del almacenamiento.
func NewConstraintError(reason string) error {
	return &ConstraintError{Reason: reason}
}
