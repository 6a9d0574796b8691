package dto

import "time"

// CreateItemRequest body para POST /api/items.
// La cantidad no se acepta: todo artículo nace con stock 0 y solo los
// movimientos lo modifican. El SKU se autogenera si viene vacío.
type CreateItemRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	SKU               string `json:"sku" validate:"omitempty,max=50"`
	Unit              string `json:"unit" validate:"required"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"min=0"`
	UrgentNote        string `json:"urgent_note" validate:"omitempty,max=500"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
// Quantity no aparece a propósito: no existe ruta de edición directa del stock.
type UpdateItemRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit              *string `json:"unit" validate:"omitempty"`
	LowStockThreshold *int    `json:"low_stock_threshold" validate:"omitempty,min=0"`
	UrgentNote        *string `json:"urgent_note" validate:"omitempty,max=500"`
}

// ItemResponse salida de un artículo del catálogo.
type ItemResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku"`
	Unit              string    `json:"unit"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UrgentNote        string    `json:"urgent_note,omitempty"`
	LowStock          bool      `json:"low_stock"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
