package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardCounts devuelve los conteos del dashboard en una sola consulta.
// movementsSince es la fecha de corte para contar traslados recientes.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context, movementsSince time.Time) (*repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM items)                                          AS total_items,
	    (SELECT COUNT(*) FROM users WHERE status = 'active')                  AS total_users,
	    (SELECT COUNT(*) FROM categories)                                     AS categories,
	    (SELECT COUNT(*) FROM locations)                                      AS locations,
	    (SELECT COUNT(*) FROM items WHERE stock < min_stock)                  AS low_stock_items,
	    (SELECT COUNT(*) FROM item_movements WHERE created_at >= $1)          AS recent_moves`

	var counts repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query, movementsSince).Scan(
		&counts.TotalItems,
		&counts.TotalUsers,
		&counts.Categories,
		&counts.Locations,
		&counts.LowStockItems,
		&counts.RecentMoves,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboardCounts: %w", err)
	}
	return &counts, nil
}
