package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// AdjustStockUseCase aplica ajustes de stock de forma transaccional: bloquea la
// fila del ítem (SELECT FOR UPDATE), valida, actualiza el stock y escribe la
// entrada del ledger en la misma transacción. Tras el commit dispara el
// notificador de bajo stock con el estado resultante.
type AdjustStockUseCase struct {
	txRunner TxRunner
	notifier *LowStockNotifier
	log      *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, notifier *LowStockNotifier, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, notifier: notifier, log: log}
}

// AdjustmentInput entrada para un ajuste de stock.
type AdjustmentInput struct {
	ItemID   string
	Action   string // "add" | "subtract", sin distinguir mayúsculas
	Quantity int    // estrictamente positivo
	UserID   string // actor autenticado
}

// AdjustmentResult resultado de un ajuste exitoso.
type AdjustmentResult struct {
	Stock     int
	HistoryID string
	Item      *entity.Item // estado posterior al ajuste
}

// AdjustStock valida y aplica un ajuste.
//
// Reglas:
//   - Action debe ser add o subtract; Quantity debe ser > 0 (ErrInvalidInput).
//   - El ítem debe existir (ErrNotFound).
//   - subtract exige stock suficiente: old >= quantity (ErrInsufficientStock),
//     sin decremento parcial.
//
// La actualización del stock y la entrada del ledger se confirman juntas o no
// se confirma ninguna. El fan-out de notificaciones ocurre después del commit,
// fuera del lock de fila, y sus fallos no afectan el resultado del ajuste.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	action := strings.ToLower(strings.TrimSpace(input.Action))
	if action != entity.StockActionAdd && action != entity.StockActionSubtract {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	historyID := uuid.New().String()

	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.StockHistoryRepository,
	) error {
		// Bloquea la fila del ítem: serializa ajustes concurrentes y evita que
		// dos subtract lean el mismo old_stock (lost update).
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		oldStock := item.Stock
		newStock := oldStock + input.Quantity
		if action == entity.StockActionSubtract {
			if oldStock < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = oldStock - input.Quantity
		}

		if err := itemRepo.UpdateStock(item.ID, newStock); err != nil {
			return err
		}
		if err := historyRepo.Create(&entity.StockHistory{
			ID:        historyID,
			ItemID:    item.ID,
			Action:    action,
			Quantity:  input.Quantity,
			OldStock:  oldStock,
			NewStock:  newStock,
			CreatedBy: input.UserID,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		item.Stock = newStock
		item.UpdatedAt = now
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: el lock ya fue liberado. Los fallos del notificador se
	// registran y se descartan; el ajuste ya es definitivo.
	if err := uc.notifier.Notify(ctx, updated); err != nil {
		uc.log.Error().Err(err).
			Str("item_id", updated.ID).
			Int("stock", updated.Stock).
			Msg("fan-out de notificación de bajo stock falló")
	}

	return &AdjustmentResult{Stock: updated.Stock, HistoryID: historyID, Item: updated}, nil
}
