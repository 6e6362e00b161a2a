package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.ItemMovementRepository = (*ItemMovementRepo)(nil)

// ItemMovementRepo implementación del puerto ItemMovementRepository sobre PostgreSQL.
type ItemMovementRepo struct {
	q Querier
}

// NewItemMovementRepository construye el adaptador de traslados.
func NewItemMovementRepository(q Querier) *ItemMovementRepo {
	return &ItemMovementRepo{q: q}
}

// Create inserta un traslado.
func (r *ItemMovementRepo) Create(m *entity.ItemMovement) error {
	query := `
		INSERT INTO item_movements (id, item_id, old_location_id, new_location_id, user_id, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.OldLocationID, m.NewLocationID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item movement: %w", err)
	}
	return nil
}

const movementColumns = `id, item_id, COALESCE(old_location_id, ''), new_location_id, user_id, created_at`

// ListByItem lista los traslados de un ítem, más recientes primero.
func (r *ItemMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM item_movements WHERE item_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item movements: %w", err)
	}
	return scanMovements(rows)
}

// List lista todos los traslados, más recientes primero.
func (r *ItemMovementRepo) List(limit, offset int) ([]*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM item_movements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.ItemMovement, error) {
	defer rows.Close()
	var list []*entity.ItemMovement
	for rows.Next() {
		var m entity.ItemMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.OldLocationID, &m.NewLocationID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
