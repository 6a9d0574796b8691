package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkasir/stockkasir-api/internal/application/report"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func item(name, unit string, quantity, threshold int) *entity.StockItem {
	return &entity.StockItem{
		ID:                name + "-id",
		Name:              name,
		Unit:              unit,
		Quantity:          quantity,
		LowStockThreshold: threshold,
	}
}

func movement(itemName, unit, typ string, quantity int, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ItemName: itemName,
		Unit:     unit,
		Type:     typ,
		Quantity: quantity,
		Date:     date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LowStockItems — el límite es inclusivo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockItems_LimiteInclusivo(t *testing.T) {
	items := []*entity.StockItem{
		item("Arroz", "Kg", 11, 10),  // por encima → no
		item("Azúcar", "Kg", 10, 10), // exactamente en el límite → sí
		item("Café", "Pack", 3, 10),  // por debajo → sí
	}

	low := report.LowStockItems(items)

	require.Len(t, low, 2, "igualdad con el límite debe contar como stock bajo")
	assert.Equal(t, "Azúcar", low[0].Name)
	assert.Equal(t, "Café", low[1].Name)
}

func TestLowStockItems_LimiteCero(t *testing.T) {
	// Con threshold 0 un artículo solo es bajo cuando llega exactamente a 0.
	items := []*entity.StockItem{
		item("Harina", "Kg", 1, 0),
		item("Sal", "Pack", 0, 0),
	}

	low := report.LowStockItems(items)

	require.Len(t, low, 1)
	assert.Equal(t, "Sal", low[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MostUsedItems — frecuencia de salidas, no volumen
// ──────────────────────────────────────────────────────────────────────────────

func TestMostUsedItems_CuentaEventosNoVolumen(t *testing.T) {
	now := time.Now()
	txs := []*entity.Transaction{
		// A sale dos veces con poca cantidad; B una sola vez con mucha.
		movement("A", "Pcs", entity.MovementTypeOut, 1, now),
		movement("A", "Pcs", entity.MovementTypeOut, 1, now),
		movement("B", "Box", entity.MovementTypeOut, 500, now),
		// Las entradas no cuentan para el ranking.
		movement("B", "Box", entity.MovementTypeIn, 500, now),
	}

	usage := report.MostUsedItems(txs, 5)

	require.Len(t, usage, 2)
	assert.Equal(t, "A", usage[0].Name, "A tiene más eventos de salida aunque B movió más volumen")
	assert.Equal(t, 2, usage[0].Count)
	assert.Equal(t, "B", usage[1].Name)
	assert.Equal(t, 1, usage[1].Count)
}

func TestMostUsedItems_TruncaAlTopN(t *testing.T) {
	now := time.Now()
	var txs []*entity.Transaction
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range names {
		// A sale 7 veces, B 6, ... G 1: orden determinista.
		for j := 0; j < len(names)-i; j++ {
			txs = append(txs, movement(n, "Pcs", entity.MovementTypeOut, 1, now))
		}
	}

	usage := report.MostUsedItems(txs, 5)

	require.Len(t, usage, 5)
	assert.Equal(t, "A", usage[0].Name)
	assert.Equal(t, "E", usage[4].Name)
}

func TestMostUsedItems_SinSalidas(t *testing.T) {
	now := time.Now()
	txs := []*entity.Transaction{
		movement("A", "Pcs", entity.MovementTypeIn, 10, now),
	}

	usage := report.MostUsedItems(txs, 5)
	assert.Empty(t, usage, "sin salidas no hay ranking")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TodayInOutTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestTodayInOutTotals_SoloElDiaDeHoy(t *testing.T) {
	today := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	txs := []*entity.Transaction{
		movement("A", "Pcs", entity.MovementTypeIn, 50, today),
		movement("A", "Pcs", entity.MovementTypeOut, 20, today),
		movement("A", "Pcs", entity.MovementTypeOut, 5, today.Add(-10*time.Hour)), // madrugada de hoy
		movement("B", "Box", entity.MovementTypeIn, 999, yesterday),               // fuera del día
	}

	totals := report.TodayInOutTotals(txs, today)

	assert.Equal(t, 50, totals.StockIn)
	assert.Equal(t, 25, totals.StockOut)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Accumulate — filas en cero y borde inclusivo
// ──────────────────────────────────────────────────────────────────────────────

func TestAccumulate_EntradasSalidasYNeto(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	from := report.StartOfDay(day)
	to := report.EndOfDay(day)

	items := []*entity.StockItem{
		item("Arroz", "Kg", 30, 5),
		item("Café", "Pack", 7, 2), // sin movimientos en el rango
	}
	txs := []*entity.Transaction{
		movement("Arroz", "Kg", entity.MovementTypeIn, 50, day),
		movement("Arroz", "Kg", entity.MovementTypeOut, 20, day.Add(time.Hour)),
	}

	rows := report.Accumulate(txs, items, from, to)

	require.Len(t, rows, 2, "todo artículo del catálogo debe aparecer, con o sin movimientos")
	assert.Equal(t, "Arroz", rows[0].Name)
	assert.Equal(t, 50, rows[0].TotalIn)
	assert.Equal(t, 20, rows[0].TotalOut)
	assert.Equal(t, 30, rows[0].NetChange)

	assert.Equal(t, "Café", rows[1].Name)
	assert.Zero(t, rows[1].TotalIn)
	assert.Zero(t, rows[1].TotalOut)
	assert.Zero(t, rows[1].NetChange)
}

func TestAccumulate_RangoDisjunto_TodoEnCero(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	items := []*entity.StockItem{item("Arroz", "Kg", 30, 5)}
	txs := []*entity.Transaction{
		movement("Arroz", "Kg", entity.MovementTypeIn, 50, day),
	}

	// Rango una semana después: el movimiento queda fuera.
	from := report.StartOfDay(day.AddDate(0, 0, 7))
	to := report.EndOfDay(day.AddDate(0, 0, 8))
	rows := report.Accumulate(txs, items, from, to)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].TotalIn)
	assert.Zero(t, rows[0].NetChange)
}

func TestAccumulate_BordeToInclusivoAFinDeDia(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	lateMove := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)

	items := []*entity.StockItem{item("Arroz", "Kg", 30, 5)}
	txs := []*entity.Transaction{
		movement("Arroz", "Kg", entity.MovementTypeIn, 10, lateMove),
	}

	rows := report.Accumulate(txs, items, report.StartOfDay(day), report.EndOfDay(day))

	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].TotalIn, "un movimiento a las 23:59 del día `to` debe contar")
}

func TestAccumulate_ArticuloBorradoSeOmite(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	// El artículo "Fantasma" ya no está en el catálogo pero su historial sobrevive.
	items := []*entity.StockItem{item("Arroz", "Kg", 30, 5)}
	txs := []*entity.Transaction{
		movement("Fantasma", "Pcs", entity.MovementTypeOut, 3, day),
	}

	rows := report.Accumulate(txs, items, report.StartOfDay(day), report.EndOfDay(day))

	require.Len(t, rows, 1)
	assert.Equal(t, "Arroz", rows[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StartOfDay / EndOfDay
// ──────────────────────────────────────────────────────────────────────────────

func TestEndOfDay_UltimoInstanteDelDia(t *testing.T) {
	day := time.Date(2026, 3, 10, 15, 42, 7, 123, time.Local)

	start := report.StartOfDay(day)
	end := report.EndOfDay(day)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)), "EndOfDay no debe cruzar al día siguiente")
	assert.True(t, end.After(day))
}
