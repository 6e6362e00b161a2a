package usecase

import (
	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// DisposalUseCase consulta de bajas registradas (solo lectura, las bajas
// se crean al eliminar ítems).
type DisposalUseCase struct {
	repo repository.ItemDisposalRepository
}

// NewDisposalUseCase construye el caso de uso.
func NewDisposalUseCase(repo repository.ItemDisposalRepository) *DisposalUseCase {
	return &DisposalUseCase{repo: repo}
}

// List bajas registradas, más recientes primero.
func (uc *DisposalUseCase) List(limit, offset int) ([]dto.DisposalResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DisposalResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DisposalResponse{
			ID:        d.ID,
			ItemID:    d.ItemID,
			ItemName:  d.ItemName,
			Reason:    d.Reason,
			UserID:    d.UserID,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
