package postgres

import (
	"context"
	"fmt"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.ItemMaintenanceRepository = (*ItemMaintenanceRepo)(nil)

// ItemMaintenanceRepo implementación del puerto ItemMaintenanceRepository sobre PostgreSQL.
// El costo es NUMERIC y se mapea a decimal vía el codec registrado en el pool.
type ItemMaintenanceRepo struct {
	q Querier
}

// NewItemMaintenanceRepository construye el adaptador de mantenimientos.
func NewItemMaintenanceRepository(q Querier) *ItemMaintenanceRepo {
	return &ItemMaintenanceRepo{q: q}
}

// Create inserta un mantenimiento.
func (r *ItemMaintenanceRepo) Create(m *entity.ItemMaintenance) error {
	query := `
		INSERT INTO item_maintenances (id, item_id, description, cost, status_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.Description, m.Cost, m.StatusID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item maintenance: %w", err)
	}
	return nil
}

// ListByItem lista los mantenimientos de un ítem, más recientes primero.
func (r *ItemMaintenanceRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemMaintenance, error) {
	query := `
		SELECT id, item_id, description, cost, COALESCE(status_id, ''), user_id, created_at
		FROM item_maintenances WHERE item_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item maintenances: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemMaintenance
	for rows.Next() {
		var m entity.ItemMaintenance
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Description, &m.Cost, &m.StatusID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
