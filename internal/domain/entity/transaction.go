package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Transaction representa un movimiento de stock ya confirmado.
//
// El log de transacciones es append-only: el puerto de persistencia no expone
// update ni delete, las correcciones se modelan como movimientos compensatorios.
// ItemName y Unit son una copia desnormalizada de la identidad del artículo al
// momento del movimiento; no se actualizan si el artículo se renombra después,
// para que los reportes históricos no cambien retroactivamente.
type Transaction struct {
	ID       string
	UserID   string
	ItemID   string // referencia débil: sobrevive al borrado del artículo
	ItemName string
	Unit     string
	Type     string // in | out
	Quantity int    // magnitud, siempre > 0; el signo lo lleva Type
	Actor    string // proveedor (entrada) o destino (salida)
	Date     time.Time
	Notes    string
}
