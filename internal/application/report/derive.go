// Package report contiene la derivación de agregados sobre snapshots del
// catálogo y del log de movimientos. Las funciones son puras: se recalculan
// en cada push de la capa de suscripciones y nunca se persisten, para no
// crear una segunda fuente de verdad.
package report

import (
	"sort"
	"time"

	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
)

// DefaultTopN tamaño del ranking de artículos más usados.
const DefaultTopN = 5

// ItemUsage fila del ranking de uso: frecuencia de salidas por artículo.
type ItemUsage struct {
	Name  string
	Unit  string
	Count int
}

// InOutTotals cantidades totales de entrada y salida de un día.
type InOutTotals struct {
	StockIn  int
	StockOut int
}

// AccumulationRow acumulado por artículo en un rango de fechas.
type AccumulationRow struct {
	Name      string
	Unit      string
	TotalIn   int
	TotalOut  int
	NetChange int
}

// LowStockItems devuelve los artículos con quantity <= lowStockThreshold.
// El límite es inclusivo: la igualdad cuenta como stock bajo, y un artículo
// con threshold 0 solo es bajo cuando llega exactamente a 0.
func LowStockItems(items []*entity.StockItem) []*entity.StockItem {
	var low []*entity.StockItem
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}

// MostUsedItems cuenta transacciones de salida por nombre de artículo y
// devuelve las topN más frecuentes en orden descendente.
//
// La métrica es frecuencia de eventos, no cantidad sumada: "más veces
// retirado", no "más volumen movido". Los empates conservan el orden de
// primer descubrimiento en el log.
func MostUsedItems(txs []*entity.Transaction, topN int) []ItemUsage {
	if topN <= 0 {
		topN = DefaultTopN
	}

	index := make(map[string]int)
	var usage []ItemUsage
	for _, tx := range txs {
		if tx.Type != entity.MovementTypeOut {
			continue
		}
		i, ok := index[tx.ItemName]
		if !ok {
			index[tx.ItemName] = len(usage)
			usage = append(usage, ItemUsage{Name: tx.ItemName, Unit: tx.Unit})
			i = len(usage) - 1
		}
		usage[i].Count++
	}

	sort.SliceStable(usage, func(a, b int) bool {
		return usage[a].Count > usage[b].Count
	})
	if len(usage) > topN {
		usage = usage[:topN]
	}
	return usage
}

// TodayInOutTotals suma las cantidades de los movimientos cuya fecha cae en
// el día calendario de today (zona horaria del caller), partidas por tipo.
func TodayInOutTotals(txs []*entity.Transaction, today time.Time) InOutTotals {
	var totals InOutTotals
	for _, tx := range txs {
		if !sameDay(tx.Date.In(today.Location()), today) {
			continue
		}
		switch tx.Type {
		case entity.MovementTypeIn:
			totals.StockIn += tx.Quantity
		case entity.MovementTypeOut:
			totals.StockOut += tx.Quantity
		}
	}
	return totals
}

// Accumulate acumula entradas y salidas por artículo del catálogo sobre los
// movimientos con fecha en [from, to] inclusive. Los artículos sin
// movimientos en el rango aparecen con ceros. Resultado ordenado por nombre
// ascendente. Los bordes del rango los fija el caller (ver EndOfDay).
func Accumulate(txs []*entity.Transaction, items []*entity.StockItem, from, to time.Time) []AccumulationRow {
	rows := make([]AccumulationRow, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		index[it.Name] = len(rows)
		rows = append(rows, AccumulationRow{Name: it.Name, Unit: it.Unit})
	}

	for _, tx := range txs {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		i, ok := index[tx.ItemName]
		if !ok {
			// Artículo borrado del catálogo: solo se reportan los presentes.
			continue
		}
		switch tx.Type {
		case entity.MovementTypeIn:
			rows[i].TotalIn += tx.Quantity
		case entity.MovementTypeOut:
			rows[i].TotalOut += tx.Quantity
		}
	}

	for i := range rows {
		rows[i].NetChange = rows[i].TotalIn - rows[i].TotalOut
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].Name < rows[b].Name })
	return rows
}

// StartOfDay devuelve t a las 00:00:00.000 en su zona horaria.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay devuelve t a las 23:59:59.999999999, para que el borde `to` del
// rango sea inclusivo a fin de día.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
