package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain"
)

// ReportHandler expone el dashboard y el reporte de acumulación (protegido).
type ReportHandler struct {
	useCase *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{useCase: uc}
}

// Dashboard godoc
// @Summary      Resumen del día: totales, stock bajo y más usados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.useCase.GetDashboard(c.Context(), userID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Accumulation godoc
// @Summary      Acumulado de entradas/salidas por artículo en un rango
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "YYYY-MM-DD"
// @Param        to    query  string  true  "YYYY-MM-DD, inclusivo a fin de día"
// @Success      200  {object}  dto.AccumulationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/accumulation [get]
func (h *ReportHandler) Accumulation(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}

	out, err := h.useCase.GetAccumulation(c.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to no puede ser anterior a from"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
