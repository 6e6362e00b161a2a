package stock

import (
	"context"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del stock y la
// entrada del ledger se confirmen como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}

// RoleLister devuelve los usuarios que poseen un rol. Se inyecta en el
// notificador para poder probarlo sin un almacén de usuarios real.
type RoleLister interface {
	ListIDsByRole(role string) ([]string, error)
}

// NotificationCreator crea registros de notificación.
type NotificationCreator interface {
	Create(notification *entity.Notification) error
}
