package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// ItemDisposalRepository define el puerto de persistencia para bajas de ítems.
type ItemDisposalRepository interface {
	Create(disposal *entity.ItemDisposal) error
	List(limit, offset int) ([]*entity.ItemDisposal, error)
}
