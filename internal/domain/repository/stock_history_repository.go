package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// StockHistoryRepository define el puerto de persistencia del ledger de stock.
// Solo inserta y lista: las entradas son inmutables.
type StockHistoryRepository interface {
	Create(history *entity.StockHistory) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockHistory, error)
}
