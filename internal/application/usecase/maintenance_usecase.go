package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// MaintenanceUseCase mantenimientos registrados sobre ítems.
type MaintenanceUseCase struct {
	itemRepo        repository.ItemRepository
	statusRepo      repository.StatusRepository
	maintenanceRepo repository.ItemMaintenanceRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(
	itemRepo repository.ItemRepository,
	statusRepo repository.StatusRepository,
	maintenanceRepo repository.ItemMaintenanceRepository,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{itemRepo: itemRepo, statusRepo: statusRepo, maintenanceRepo: maintenanceRepo}
}

// Create registra un mantenimiento. Si trae StatusID el ítem pasa a ese estado.
func (uc *MaintenanceUseCase) Create(itemID string, in dto.CreateMaintenanceRequest, userID string) (*dto.MaintenanceResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.StatusID != "" {
		status, err := uc.statusRepo.GetByID(in.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, domain.ErrNotFound
		}
	}

	maintenance := &entity.ItemMaintenance{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		Description: in.Description,
		Cost:        in.Cost,
		StatusID:    in.StatusID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.maintenanceRepo.Create(maintenance); err != nil {
		return nil, err
	}
	if in.StatusID != "" && in.StatusID != item.StatusID {
		item.StatusID = in.StatusID
		item.UpdatedAt = time.Now()
		if err := uc.itemRepo.Update(item); err != nil {
			return nil, err
		}
	}
	return toMaintenanceResponse(maintenance), nil
}

// ListByItem historial de mantenimientos de un ítem.
func (uc *MaintenanceUseCase) ListByItem(itemID string, limit, offset int) ([]dto.MaintenanceResponse, error) {
	list, err := uc.maintenanceRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMaintenanceResponse(m))
	}
	return out, nil
}

func toMaintenanceResponse(m *entity.ItemMaintenance) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:          m.ID,
		ItemID:      m.ItemID,
		Description: m.Description,
		Cost:        m.Cost,
		StatusID:    m.StatusID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}
