package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// MovementUseCase traslados de ítems entre ubicaciones.
type MovementUseCase struct {
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	movementRepo repository.ItemMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.ItemMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{itemRepo: itemRepo, locationRepo: locationRepo, movementRepo: movementRepo}
}

// Move cambia la ubicación del ítem y registra el traslado.
func (uc *MovementUseCase) Move(itemID string, in dto.MoveItemRequest, userID string) (*dto.MovementResponse, error) {
	if in.NewLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.NewLocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if item.LocationID == in.NewLocationID {
		return nil, domain.ErrConflict
	}

	movement := &entity.ItemMovement{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		OldLocationID: item.LocationID,
		NewLocationID: in.NewLocationID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}
	if err := uc.itemRepo.SetLocation(item.ID, in.NewLocationID); err != nil {
		return nil, err
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// ListByItem historial de traslados de un ítem.
func (uc *MovementUseCase) ListByItem(itemID string, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// List historial global de traslados, más recientes primero.
func (uc *MovementUseCase) List(limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.ItemMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		OldLocationID: m.OldLocationID,
		NewLocationID: m.NewLocationID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

func toMovementResponses(list []*entity.ItemMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out
}
