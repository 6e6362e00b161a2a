package repository

import (
	"context"
	"time"
)

// DashboardCounts agrupa los conteos que alimentan el dashboard.
type DashboardCounts struct {
	TotalItems    int
	TotalUsers    int
	Categories    int
	Locations     int
	LowStockItems int
	RecentMoves   int // traslados desde la fecha de corte
}

// AnalyticsRepository define consultas agregadas de solo lectura.
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context, movementsSince time.Time) (*DashboardCounts, error)
}
