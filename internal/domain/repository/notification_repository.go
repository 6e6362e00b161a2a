package repository

import "github.com/inventario-app/inventario-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
// Las operaciones de lectura/borrado están acotadas al usuario dueño.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
	Delete(id, userID string) error
}
