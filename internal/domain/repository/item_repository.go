package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// ItemFilter parámetros de búsqueda y paginación para listados de ítems.
type ItemFilter struct {
	Query        string // substring sobre el nombre
	CategoryID   string
	LocationID   string
	StatusID     string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetDetailByID(id string) (*entity.ItemDetail, error)
	List(filter ItemFilter) ([]*entity.ItemDetail, error)
	Update(item *entity.Item) error
	Delete(id string) error
	// SetLocation actualiza solo la ubicación del ítem (traslados).
	SetLocation(itemID, locationID string) error
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; serializa los ajustes de stock
	// concurrentes sobre el mismo ítem.
	GetForUpdate(id string) (*entity.Item, error)
	// UpdateStock fija el stock del ítem. Usar únicamente bajo GetForUpdate.
	UpdateStock(itemID string, stock int) error
}
