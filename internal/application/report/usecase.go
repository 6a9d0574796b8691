package report

import (
	"context"
	"fmt"
	"time"

	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

// ReportUseCase arma el dashboard y el reporte de acumulación a partir de
// snapshots del catálogo y del log. No tiene estado propio: cada petición
// relee los snapshots y deriva.
type ReportUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, txRepo: txRepo}
}

// GetDashboard construye el resumen del día para el usuario:
// totales del catálogo, lista de stock bajo, entradas/salidas de hoy y el
// top 5 de artículos más usados. Las dos consultas van en paralelo.
func (uc *ReportUseCase) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	type itemsResult struct {
		items []*entity.StockItem
		err   error
	}
	type txsResult struct {
		txs []*entity.Transaction
		err error
	}

	itemsCh := make(chan itemsResult, 1)
	txsCh := make(chan txsResult, 1)

	go func() {
		items, err := uc.itemRepo.ListByUser(userID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListByUser(userID, repository.TransactionFilter{})
		txsCh <- txsResult{txs, err}
	}()

	items := <-itemsCh
	txs := <-txsCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", items.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", txs.err)
	}

	low := LowStockItems(items.items)
	totals := TodayInOutTotals(txs.txs, time.Now())
	mostUsed := MostUsedItems(txs.txs, DefaultTopN)

	out := &dto.DashboardResponse{
		TotalItems:    len(items.items),
		LowStockItems: len(low),
		StockInToday:  totals.StockIn,
		StockOutToday: totals.StockOut,
		LowStockList:  make([]dto.ItemResponse, 0, len(low)),
		MostUsed:      make([]dto.MostUsedItemDTO, 0, len(mostUsed)),
	}
	for _, it := range low {
		out.LowStockList = append(out.LowStockList, ToItemResponse(it))
	}
	for _, u := range mostUsed {
		out.MostUsed = append(out.MostUsed, dto.MostUsedItemDTO{Name: u.Name, Unit: u.Unit, Count: u.Count})
	}
	return out, nil
}

// GetAccumulation acumula entradas/salidas/neto por artículo en [from, to],
// con el borde `to` inclusivo a fin de día.
func (uc *ReportUseCase) GetAccumulation(ctx context.Context, userID string, from, to time.Time) (*dto.AccumulationResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	lo := StartOfDay(from)
	hi := EndOfDay(to)

	items, err := uc.itemRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("acumulación: catálogo: %w", err)
	}
	txs, err := uc.txRepo.ListByDateRange(userID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("acumulación: movimientos: %w", err)
	}

	rows := Accumulate(txs, items, lo, hi)
	out := &dto.AccumulationResponse{
		From: lo.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Rows: make([]dto.AccumulationRowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.AccumulationRowDTO{
			Name:      r.Name,
			Unit:      r.Unit,
			TotalIn:   r.TotalIn,
			TotalOut:  r.TotalOut,
			NetChange: r.NetChange,
		})
	}
	return out, nil
}

// ToItemResponse convierte la entidad al DTO de salida.
func ToItemResponse(it *entity.StockItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		SKU:               it.SKU,
		Unit:              it.Unit,
		Quantity:          it.Quantity,
		LowStockThreshold: it.LowStockThreshold,
		UrgentNote:        it.UrgentNote,
		LowStock:          it.IsLowStock(),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}
