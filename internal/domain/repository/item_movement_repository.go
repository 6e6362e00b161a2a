package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// ItemMovementRepository define el puerto de persistencia para traslados de ítems.
type ItemMovementRepository interface {
	Create(movement *entity.ItemMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.ItemMovement, error)
	List(limit, offset int) ([]*entity.ItemMovement, error)
}
