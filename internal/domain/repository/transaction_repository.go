package repository

import (
	"time"

	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
)

// TransactionFilter filtros opcionales para listar el historial.
type TransactionFilter struct {
	Type string // "in", "out" o vacío (todos)
	From *time.Time
	To   *time.Time
}

// TransactionRepository define el puerto de persistencia para el log de
// movimientos. El log es append-only: deliberadamente no existe Update ni
// Delete, para preservar el historial de auditoría.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(userID, id string) (*entity.Transaction, error)
	// ListByUser devuelve el log ordenado por fecha descendente.
	ListByUser(userID string, filter TransactionFilter) ([]*entity.Transaction, error)
	// ListByDateRange devuelve los movimientos con date en [from, to] inclusive,
	// ordenados por fecha descendente. Base del reporte de acumulación.
	ListByDateRange(userID string, from, to time.Time) ([]*entity.Transaction, error)
}
