package entity

import "time"

// Notification representa un aviso dirigido a un usuario (bandeja de notificaciones).
// Las crea el notificador de bajo stock y el envío manual de administradores.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
