package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con detalle: fmt.Errorf("%w: ...", ErrValidation).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrConflict        = errors.New("el recurso ya existe")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrValidation      = errors.New("entrada inválida")
	ErrInternal        = errors.New("error interno")
)
