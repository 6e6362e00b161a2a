package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// CategoryUseCase reglas de negocio para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	now := time.Now()
	c := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: c.ID, Name: c.Name}, nil
}

func (uc *CategoryUseCase) List() ([]dto.CatalogResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CatalogResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (uc *CategoryUseCase) Update(id string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: c.ID, Name: c.Name}, nil
}

func (uc *CategoryUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// LocationUseCase reglas de negocio para ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (uc *LocationUseCase) Create(in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	now := time.Now()
	l := &entity.Location{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: l.ID, Name: l.Name}, nil
}

func (uc *LocationUseCase) List() ([]dto.CatalogResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.CatalogResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

func (uc *LocationUseCase) Update(id string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	l.Name = in.Name
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(l); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: l.ID, Name: l.Name}, nil
}

func (uc *LocationUseCase) Delete(id string) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// StatusUseCase reglas de negocio para estados de ítems.
type StatusUseCase struct {
	repo repository.StatusRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

func (uc *StatusUseCase) Create(in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	now := time.Now()
	s := &entity.Status{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: s.ID, Name: s.Name}, nil
}

func (uc *StatusUseCase) List() ([]dto.CatalogResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.CatalogResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func (uc *StatusUseCase) Update(id string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: s.ID, Name: s.Name}, nil
}

func (uc *StatusUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
