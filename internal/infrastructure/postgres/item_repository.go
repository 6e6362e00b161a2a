package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, image_url, category_id,
	COALESCE(location_id, ''), COALESCE(status_id, ''), qr_code, stock, min_stock,
	COALESCE(responsible_user_id, ''), created_at, updated_at`

// Create persiste un nuevo ítem. Devuelve ErrDuplicate si el QR ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, image_url, category_id, location_id, status_id, qr_code, stock, min_stock, responsible_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''), $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.ImageURL, item.CategoryID,
		item.LocationID, item.StatusID, item.QRCode, item.Stock, item.MinStock,
		item.ResponsibleUserID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.ImageURL, &i.CategoryID,
		&i.LocationID, &i.StatusID, &i.QRCode, &i.Stock, &i.MinStock,
		&i.ResponsibleUserID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Dentro de una transacción serializa los ajustes de stock sobre el mismo ítem.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.ImageURL, &i.CategoryID,
		&i.LocationID, &i.StatusID, &i.QRCode, &i.Stock, &i.MinStock,
		&i.ResponsibleUserID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return &i, nil
}

const itemDetailQuery = `
	SELECT i.id, i.name, i.description, i.image_url, i.category_id,
		COALESCE(i.location_id, ''), COALESCE(i.status_id, ''), i.qr_code, i.stock, i.min_stock,
		COALESCE(i.responsible_user_id, ''), i.created_at, i.updated_at,
		c.name, COALESCE(l.name, ''), COALESCE(s.name, ''), COALESCE(u.name, '')
	FROM items i
	JOIN categories c ON c.id = i.category_id
	LEFT JOIN locations l ON l.id = i.location_id
	LEFT JOIN statuses s ON s.id = i.status_id
	LEFT JOIN users u ON u.id = i.responsible_user_id`

func scanItemDetail(row pgx.Row) (*entity.ItemDetail, error) {
	var d entity.ItemDetail
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.CategoryID,
		&d.LocationID, &d.StatusID, &d.QRCode, &d.Stock, &d.MinStock,
		&d.ResponsibleUserID, &d.CreatedAt, &d.UpdatedAt,
		&d.CategoryName, &d.LocationName, &d.StatusName, &d.ResponsibleName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDetailByID obtiene un ítem con los nombres de sus relaciones resueltos.
func (r *ItemRepo) GetDetailByID(id string) (*entity.ItemDetail, error) {
	query := itemDetailQuery + ` WHERE i.id = $1`
	d, err := scanItemDetail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item detail: %w", err)
	}
	return d, nil
}

// List lista ítems con filtros opcionales y paginación.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.ItemDetail, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Query != "" {
		conditions = append(conditions, "i.name ILIKE "+arg("%"+filter.Query+"%"))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "i.category_id = "+arg(filter.CategoryID))
	}
	if filter.LocationID != "" {
		conditions = append(conditions, "i.location_id = "+arg(filter.LocationID))
	}
	if filter.StatusID != "" {
		conditions = append(conditions, "i.status_id = "+arg(filter.StatusID))
	}
	if filter.LowStockOnly {
		conditions = append(conditions, "i.stock < i.min_stock")
	}

	query := itemDetailQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.name ASC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemDetail
	for rows.Next() {
		d, err := scanItemDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update actualiza un ítem existente, incluido su stock.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, image_url = $4, category_id = $5,
			location_id = NULLIF($6, ''), status_id = NULLIF($7, ''), qr_code = $8,
			stock = $9, min_stock = $10, responsible_user_id = NULLIF($11, ''), updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.ImageURL, item.CategoryID,
		item.LocationID, item.StatusID, item.QRCode, item.Stock, item.MinStock,
		item.ResponsibleUserID, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SetLocation actualiza solo la ubicación del ítem (traslados).
func (r *ItemRepo) SetLocation(itemID, locationID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET location_id = NULLIF($2, ''), updated_at = now() WHERE id = $1`,
		itemID, locationID,
	)
	if err != nil {
		return fmt.Errorf("set item location: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del ítem. Usar bajo GetForUpdate en una tx.
func (r *ItemRepo) UpdateStock(itemID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET stock = $2, updated_at = now() WHERE id = $1`,
		itemID, stock,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
