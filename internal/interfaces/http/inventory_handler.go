package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/application/inventory"
)

// InventoryHandler maneja el registro de movimientos de stock (protegido).
type InventoryHandler struct {
	uc *inventory.RecordMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RecordMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Description  Muta la cantidad del artículo y anexa la transacción en una
//
//	sola unidad atómica. Una salida que dejaría stock negativo se
//	rechaza con INSUFFICIENT_STOCK y la cantidad disponible.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, type (in|out), quantity, actor, unit, notes"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id, type (in|out), quantity > 0, actor y unit son requeridos"})
	}
	tx, err := h.uc.RecordMovementFromRequest(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{
		ID:       tx.ID,
		ItemID:   tx.ItemID,
		ItemName: tx.ItemName,
		Unit:     tx.Unit,
		Type:     tx.Type,
		Quantity: tx.Quantity,
		Actor:    tx.Actor,
		Date:     tx.Date,
		Notes:    tx.Notes,
	})
}
