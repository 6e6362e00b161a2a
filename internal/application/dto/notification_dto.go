package dto

import "time"

// NotificationResponse una notificación de la bandeja del usuario.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// SendNotificationRequest body para POST /api/notifications/send (solo admin).
// UserID vacío = difusión a todos los usuarios activos.
type SendNotificationRequest struct {
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message" validate:"required"`
}
