package entity

import "time"

// StockItem representa un artículo del catálogo de un usuario.
// Quantity es el stock actual y solo lo muta el motor de movimientos
// (RecordMovementUseCase); las acciones de catálogo editan el resto de campos.
type StockItem struct {
	ID                string
	UserID            string // namespace del usuario dueño del catálogo
	Name              string
	SKU               string // autogenerado al crear si no se suministra
	Unit              string // Pack, Pcs, Roll, Box, Kg, Gram, ML, L (configurable)
	Quantity          int    // invariante: nunca negativo
	LowStockThreshold int
	UrgentNote        string // anotación libre, editable sin afectar el stock
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el artículo está en stock bajo.
// El límite es inclusivo: quantity == threshold también cuenta como bajo.
func (s *StockItem) IsLowStock() bool {
	return s.Quantity <= s.LowStockThreshold
}
