package dto

// DashboardResponse respuesta de GET /api/reports/dashboard.
// Resumen del día más las listas derivadas del catálogo y el log.
type DashboardResponse struct {
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`
	StockInToday  int `json:"stock_in_today"`
	StockOutToday int `json:"stock_out_today"`

	// Artículos en o por debajo de su límite de stock bajo (orden por nombre).
	LowStockList []ItemResponse `json:"low_stock_list"`

	// Top 5 artículos por frecuencia de salidas (eventos, no cantidad).
	MostUsed []MostUsedItemDTO `json:"most_used"`
}

// MostUsedItemDTO fila del widget de artículos más usados.
type MostUsedItemDTO struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Count int    `json:"count"` // número de transacciones de salida
}

// AccumulationRowDTO fila del reporte de acumulación por rango de fechas.
type AccumulationRowDTO struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	TotalIn   int    `json:"total_in"`
	TotalOut  int    `json:"total_out"`
	NetChange int    `json:"net_change"` // total_in - total_out
}

// AccumulationResponse respuesta de GET /api/reports/accumulation.
type AccumulationResponse struct {
	From string               `json:"from"`
	To   string               `json:"to"`
	Rows []AccumulationRowDTO `json:"rows"`
}
