package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// ItemMaintenanceRepository define el puerto de persistencia para mantenimientos.
type ItemMaintenanceRepository interface {
	Create(maintenance *entity.ItemMaintenance) error
	ListByItem(itemID string, limit, offset int) ([]*entity.ItemMaintenance, error)
}
