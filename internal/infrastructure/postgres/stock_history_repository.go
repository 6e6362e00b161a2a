package postgres

import (
	"context"
	"fmt"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo ledger de ajustes de stock sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: las entradas son inmutables.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create inserta una entrada del ledger. Se invoca en la misma transacción
// que el update de stock correspondiente.
func (r *StockHistoryRepo) Create(h *entity.StockHistory) error {
	query := `
		INSERT INTO stock_history (id, item_id, action, quantity, old_stock, new_stock, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ItemID, h.Action, h.Quantity, h.OldStock, h.NewStock, h.CreatedBy, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock history: %w", err)
	}
	return nil
}

// ListByItem lista las entradas del ledger de un ítem, más recientes primero.
func (r *StockHistoryRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockHistory, error) {
	query := `
		SELECT id, item_id, action, quantity, old_stock, new_stock, created_by, created_at
		FROM stock_history WHERE item_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		var h entity.StockHistory
		if err := rows.Scan(&h.ID, &h.ItemID, &h.Action, &h.Quantity, &h.OldStock, &h.NewStock, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
