package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Conteos generales del inventario; se cachea unos segundos en Redis.
type DashboardSummaryDTO struct {
	TotalItems      int       `json:"total_items"`
	TotalUsers      int       `json:"total_users"`
	Categories      int       `json:"categories"`
	Locations       int       `json:"locations"`
	LowStockItems   int       `json:"low_stock_items"`
	RecentMovements int       `json:"recent_movements"` // últimos 30 días
	GeneratedAt     time.Time `json:"generated_at"`
}
