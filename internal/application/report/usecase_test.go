package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
)

// Fakes mínimos de solo lectura: el caso de uso de reportes no escribe nunca.

type stubItemRepo struct{ items []*entity.StockItem }

func (r *stubItemRepo) Create(*entity.StockItem) error           { return nil }
func (r *stubItemRepo) Update(*entity.StockItem) error           { return nil }
func (r *stubItemRepo) Delete(string, string) error              { return nil }
func (r *stubItemRepo) UpdateQuantity(string, string, int) error { return nil }
func (r *stubItemRepo) GetByID(string, string) (*entity.StockItem, error) {
	return nil, nil
}
func (r *stubItemRepo) GetForUpdate(string, string) (*entity.StockItem, error) {
	return nil, nil
}
func (r *stubItemRepo) ListByUser(string) ([]*entity.StockItem, error) {
	return r.items, nil
}

type stubTxRepo struct{ txs []*entity.Transaction }

func (r *stubTxRepo) Create(*entity.Transaction) error { return nil }
func (r *stubTxRepo) GetByID(string, string) (*entity.Transaction, error) {
	return nil, nil
}
func (r *stubTxRepo) ListByUser(string, repository.TransactionFilter) ([]*entity.Transaction, error) {
	return r.txs, nil
}
func (r *stubTxRepo) ListByDateRange(userID string, from, to time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.txs {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func TestGetDashboard_ResumenDelDia(t *testing.T) {
	now := time.Now()
	items := []*entity.StockItem{
		item("Arroz", "Kg", 3, 10), // bajo
		item("Café", "Pack", 50, 10),
	}
	txs := []*entity.Transaction{
		movement("Arroz", "Kg", entity.MovementTypeIn, 20, now),
		movement("Arroz", "Kg", entity.MovementTypeOut, 17, now),
		movement("Café", "Pack", entity.MovementTypeOut, 2, now),
		movement("Arroz", "Kg", entity.MovementTypeOut, 5, now.AddDate(0, 0, -3)), // otro día
	}

	uc := report.NewReportUseCase(&stubItemRepo{items}, &stubTxRepo{txs})
	dash, err := uc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, dash.TotalItems)
	assert.Equal(t, 1, dash.LowStockItems)
	assert.Equal(t, 20, dash.StockInToday)
	assert.Equal(t, 19, dash.StockOutToday, "solo cuentan los movimientos de hoy")

	require.Len(t, dash.LowStockList, 1)
	assert.Equal(t, "Arroz", dash.LowStockList[0].Name)
	assert.True(t, dash.LowStockList[0].LowStock)

	// Arroz salió 2 veces (hoy y hace 3 días), Café 1: el ranking mira todo el log.
	require.Len(t, dash.MostUsed, 2)
	assert.Equal(t, "Arroz", dash.MostUsed[0].Name)
	assert.Equal(t, 2, dash.MostUsed[0].Count)
}

func TestGetAccumulation_RangoInvertido(t *testing.T) {
	uc := report.NewReportUseCase(&stubItemRepo{}, &stubTxRepo{})

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, -1)
	_, err := uc.GetAccumulation(context.Background(), "user-1", from, to)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetAccumulation_MismoDia(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	items := []*entity.StockItem{item("Arroz", "Kg", 30, 5)}
	txs := []*entity.Transaction{
		movement("Arroz", "Kg", entity.MovementTypeIn, 50, day.Add(8*time.Hour)),
		movement("Arroz", "Kg", entity.MovementTypeOut, 20, day.Add(18*time.Hour)),
	}

	uc := report.NewReportUseCase(&stubItemRepo{items}, &stubTxRepo{txs})
	resp, err := uc.GetAccumulation(context.Background(), "user-1", day, day)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", resp.From)
	assert.Equal(t, "2026-03-10", resp.To)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 30, resp.Rows[0].NetChange)
}
