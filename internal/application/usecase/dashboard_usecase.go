package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
	recentMovementsWindow = 30 * 24 * time.Hour
)

// SummaryCache puerto mínimo de cache para el resumen del dashboard.
// Lo implementa el cliente Redis; un miss devuelve (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardUseCase resumen agregado del inventario con cache de corta vida.
// El cache es best effort, sus fallas se registran y se sigue contra la base.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	cache     SummaryCache
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, cache SummaryCache, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, cache: cache, log: log}
}

// Summary devuelve los conteos del dashboard, servidos desde Redis si hay
// una copia vigente.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, dashboardCacheKey)
		if err != nil {
			uc.log.Warn().Err(err).Msg("cache del dashboard no disponible")
		} else if raw != nil {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	counts, err := uc.analytics.GetDashboardCounts(ctx, time.Now().Add(-recentMovementsWindow))
	if err != nil {
		return nil, err
	}
	summary := &dto.DashboardSummaryDTO{
		TotalItems:      counts.TotalItems,
		TotalUsers:      counts.TotalUsers,
		Categories:      counts.Categories,
		Locations:       counts.Locations,
		LowStockItems:   counts.LowStockItems,
		RecentMovements: counts.RecentMoves,
		GeneratedAt:     time.Now(),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL); err != nil {
				uc.log.Warn().Err(err).Msg("no se pudo cachear el resumen del dashboard")
			}
		}
	}
	return summary, nil
}
