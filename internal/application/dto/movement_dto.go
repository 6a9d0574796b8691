package dto

import "time"

// RecordMovementRequest body para POST /api/inventory/movements.
type RecordMovementRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Actor    string `json:"actor" validate:"required,min=1,max=200"` // proveedor o destino
	Unit     string `json:"unit" validate:"required,min=1,max=20"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

// TransactionResponse salida de un movimiento confirmado.
type TransactionResponse struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	ItemName string    `json:"item_name"`
	Unit     string    `json:"unit"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Actor    string    `json:"actor"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}
