package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto de concurrencia")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUnavailable        = errors.New("almacén de datos no disponible")
)

// InsufficientStockError indica que una salida dejaría el stock en negativo.
// Lleva la cantidad disponible al momento de la verificación (leída dentro de
// la transacción, no de una copia obsoleta del cliente) para que el caller
// pueda ajustar la cantidad solicitada.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
