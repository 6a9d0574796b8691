package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

// HistoryHandler maneja la consulta del historial de movimientos (protegido).
// Solo lectura: no existe ruta de edición ni borrado sobre el log.
type HistoryHandler struct {
	txRepo repository.TransactionRepository
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(txRepo repository.TransactionRepository) *HistoryHandler {
	return &HistoryHandler{txRepo: txRepo}
}

// List godoc
// @Summary      Historial de movimientos (fecha descendente)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "in | out (vacío = todos)"
// @Param        from  query  string  false  "YYYY-MM-DD, inclusivo"
// @Param        to    query  string  false  "YYYY-MM-DD, inclusivo a fin de día"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}

	filter := repository.TransactionFilter{}
	if t := c.Query("type"); t != "" {
		if t != entity.MovementTypeIn && t != entity.MovementTypeOut {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser in u out"})
		}
		filter.Type = t
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
		}
		lo := report.StartOfDay(from)
		filter.From = &lo
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
		}
		hi := report.EndOfDay(to)
		filter.To = &hi
	}

	txs, err := h.txRepo.ListByUser(userID, filter)
	if err != nil {
		return internalError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.TransactionResponse{
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
	return c.JSON(out)
}
