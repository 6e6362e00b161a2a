package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id string) error
}

// StatusRepository define el puerto de persistencia para Status (DIP).
type StatusRepository interface {
	Create(status *entity.Status) error
	GetByID(id string) (*entity.Status, error)
	List() ([]*entity.Status, error)
	Update(status *entity.Status) error
	Delete(id string) error
}
