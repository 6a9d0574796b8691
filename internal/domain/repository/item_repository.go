package repository

import "github.com/stockkasir/stockkasir-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para StockItem (DIP).
// Todas las consultas están delimitadas por userID (namespace del usuario).
//
// Update no toca Quantity: el stock actual se muta exclusivamente vía
// UpdateQuantity, que solo invoca el motor de movimientos dentro de su
// transacción. Así las dos rutas de mutación no compiten por el mismo campo.
type ItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(userID, id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve (nil, nil) si el artículo no existe.
	GetForUpdate(userID, id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	UpdateQuantity(userID, id string, quantity int) error
	// ListByUser devuelve el snapshot del catálogo ordenado por nombre ascendente.
	ListByUser(userID string) ([]*entity.StockItem, error)
	Delete(userID, id string) error
}
