package postgres

import (
	"context"
	"fmt"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.ItemDisposalRepository = (*ItemDisposalRepo)(nil)

// ItemDisposalRepo implementación del puerto ItemDisposalRepository sobre PostgreSQL.
// item_id no es FK: la baja sobrevive a la eliminación del ítem.
type ItemDisposalRepo struct {
	q Querier
}

// NewItemDisposalRepository construye el adaptador de bajas.
func NewItemDisposalRepository(q Querier) *ItemDisposalRepo {
	return &ItemDisposalRepo{q: q}
}

// Create inserta una baja.
func (r *ItemDisposalRepo) Create(d *entity.ItemDisposal) error {
	query := `
		INSERT INTO item_disposals (id, item_id, item_name, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.ItemID, d.ItemName, d.Reason, d.UserID, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item disposal: %w", err)
	}
	return nil
}

// List lista las bajas registradas, más recientes primero.
func (r *ItemDisposalRepo) List(limit, offset int) ([]*entity.ItemDisposal, error) {
	query := `
		SELECT id, item_id, item_name, reason, user_id, created_at
		FROM item_disposals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item disposals: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemDisposal
	for rows.Next() {
		var d entity.ItemDisposal
		if err := rows.Scan(&d.ID, &d.ItemID, &d.ItemName, &d.Reason, &d.UserID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item disposal: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
