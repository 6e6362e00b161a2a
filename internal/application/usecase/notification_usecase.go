package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// NotificationUseCase bandeja de notificaciones por usuario y envío manual.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, userRepo: userRepo}
}

// ListByUser lista las notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) ListByUser(userID string, limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca una notificación del usuario como leída.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

// MarkAllRead marca todas las notificaciones del usuario como leídas.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}

// Delete elimina una notificación del usuario.
func (uc *NotificationUseCase) Delete(id, userID string) error {
	return uc.repo.Delete(id, userID)
}

// Send crea una notificación manual. Con UserID vacío difunde a todos los
// usuarios activos (admins y pasantes). Solo administradores llegan aquí,
// el router aplica RequireRole.
func (uc *NotificationUseCase) Send(in dto.SendNotificationRequest) (int, error) {
	if in.Message == "" {
		return 0, domain.ErrInvalidInput
	}

	var targets []string
	if in.UserID != "" {
		user, err := uc.userRepo.GetByID(in.UserID)
		if err != nil {
			return 0, err
		}
		if user == nil {
			return 0, domain.ErrUserNotFound
		}
		targets = []string{user.ID}
	} else {
		for _, role := range []string{entity.RoleAdmin, entity.RolePasante} {
			ids, err := uc.userRepo.ListIDsByRole(role)
			if err != nil {
				return 0, err
			}
			targets = append(targets, ids...)
		}
	}

	sent := 0
	for _, target := range targets {
		n := &entity.Notification{
			ID:        uuid.New().String(),
			UserID:    target,
			Message:   in.Message,
			CreatedAt: time.Now(),
		}
		if err := uc.repo.Create(n); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
