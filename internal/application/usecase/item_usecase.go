package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// ItemUseCase reglas de negocio para ítems del inventario.
// Las mutaciones de stock/min_stock vía Update también disparan el notificador
// de bajo stock, igual que los ajustes del ledger.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	disposalRepo repository.ItemDisposalRepository
	notifier     *stock.LowStockNotifier
	log          *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	disposalRepo repository.ItemDisposalRepository,
	notifier *stock.LowStockNotifier,
	log *logger.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		disposalRepo: disposalRepo,
		notifier:     notifier,
		log:          log,
	}
}

// Create valida y persiste un ítem nuevo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.QRCode == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock <= 0 {
		in.MinStock = 1
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.Item{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		ImageURL:          in.ImageURL,
		CategoryID:        in.CategoryID,
		LocationID:        in.LocationID,
		StatusID:          in.StatusID,
		QRCode:            in.QRCode,
		Stock:             in.Stock,
		MinStock:          in.MinStock,
		ResponsibleUserID: in.ResponsibleUserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}

	// Un ítem creado ya bajo el umbral también alerta.
	if err := uc.notifier.Notify(ctx, item); err != nil {
		uc.log.Error().Err(err).Str("item_id", item.ID).Msg("notificación de bajo stock al crear ítem")
	}

	return toItemResponse(&entity.ItemDetail{Item: *item, CategoryName: category.Name}), nil
}

// GetByID obtiene un ítem con sus relaciones resueltas.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	detail, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	return toItemResponse(detail), nil
}

// List lista ítems con filtros y paginación.
func (uc *ItemUseCase) List(filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	details, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(details))
	for _, d := range details {
		items = append(items, *toItemResponse(d))
	}
	return &dto.ItemListResponse{Items: items, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// Update modifica los campos presentes. Si cambian stock o min_stock, el
// notificador evalúa el estado resultante después de persistir.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	stockTouched := false
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		item.CategoryID = *in.CategoryID
	}
	if in.LocationID != nil {
		item.LocationID = *in.LocationID
	}
	if in.StatusID != nil {
		item.StatusID = *in.StatusID
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
		stockTouched = true
	}
	if in.MinStock != nil {
		if *in.MinStock <= 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
		stockTouched = true
	}
	if in.ResponsibleUserID != nil {
		item.ResponsibleUserID = *in.ResponsibleUserID
	}
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}

	if stockTouched {
		if err := uc.notifier.Notify(ctx, item); err != nil {
			uc.log.Error().Err(err).Str("item_id", item.ID).Msg("notificación de bajo stock al actualizar ítem")
		}
	}

	detail, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(detail), nil
}

// Delete registra la baja con su motivo y elimina el ítem.
func (uc *ItemUseCase) Delete(id, reason, userID string) error {
	if reason == "" {
		return domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	disposal := &entity.ItemDisposal{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Reason:    reason,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.disposalRepo.Create(disposal); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toItemResponse(d *entity.ItemDetail) *dto.ItemResponse {
	if d == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		ImageURL:          d.ImageURL,
		CategoryID:        d.CategoryID,
		CategoryName:      d.CategoryName,
		LocationID:        d.LocationID,
		LocationName:      d.LocationName,
		StatusID:          d.StatusID,
		StatusName:        d.StatusName,
		QRCode:            d.QRCode,
		Stock:             d.Stock,
		MinStock:          d.MinStock,
		IsLowStock:        d.IsLowStock(),
		StockStatus:       d.StockStatus(),
		ResponsibleUserID: d.ResponsibleUserID,
		ResponsibleName:   d.ResponsibleName,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
