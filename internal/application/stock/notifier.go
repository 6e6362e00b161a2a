package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// LowStockNotifier traduce el estado "stock por debajo del umbral" en
// notificaciones: una para el responsable del ítem (si lo tiene) y una por
// cada administrador. Se invoca de forma explícita después del commit de cada
// mutación de stock, nunca dentro de la transacción.
//
// No deduplica: cada mutación que deja el ítem bajo el umbral produce un
// fan-out nuevo, igual que el comportamiento original del sistema.
type LowStockNotifier struct {
	users         RoleLister
	notifications NotificationCreator
	log           *logger.Logger
}

// NewLowStockNotifier construye el notificador.
func NewLowStockNotifier(users RoleLister, notifications NotificationCreator, log *logger.Logger) *LowStockNotifier {
	return &LowStockNotifier{users: users, notifications: notifications, log: log}
}

// Notify evalúa el estado del ítem después de una mutación y, si quedó bajo el
// umbral, crea las notificaciones. Es puramente aditivo: nunca lee ni muta
// stock. Los fallos por destinatario se registran y se continúa con el resto.
func (n *LowStockNotifier) Notify(_ context.Context, item *entity.Item) error {
	if item == nil || !item.IsLowStock() {
		return nil
	}

	message := fmt.Sprintf("Alert: item %s low on stock (%d units)", item.Name, item.Stock)

	targets := make([]string, 0, 4)
	if item.ResponsibleUserID != "" {
		targets = append(targets, item.ResponsibleUserID)
	}
	admins, err := n.users.ListIDsByRole(entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("listar administradores: %w", err)
	}
	targets = append(targets, admins...)

	now := time.Now()
	var failed int
	for _, userID := range targets {
		err := n.notifications.Create(&entity.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Message:   message,
			IsRead:    false,
			CreatedAt: now,
		})
		if err != nil {
			failed++
			n.log.Error().Err(err).
				Str("item_id", item.ID).
				Str("user_id", userID).
				Msg("no se pudo crear la notificación de bajo stock")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d de %d notificaciones fallaron", failed, len(targets))
	}
	return nil
}
