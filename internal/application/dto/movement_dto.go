package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveItemRequest body para POST /api/items/:id/move.
type MoveItemRequest struct {
	NewLocationID string `json:"new_location_id" validate:"required,uuid"`
}

// MovementResponse un traslado registrado.
type MovementResponse struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	OldLocationID string    `json:"old_location_id,omitempty"`
	NewLocationID string    `json:"new_location_id"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateMaintenanceRequest body para POST /api/items/:id/maintenance.
type CreateMaintenanceRequest struct {
	Description string          `json:"description" validate:"required"`
	Cost        decimal.Decimal `json:"cost"`
	StatusID    string          `json:"status_id,omitempty"`
}

// MaintenanceResponse un mantenimiento registrado.
type MaintenanceResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	StatusID    string          `json:"status_id,omitempty"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DisposalResponse una baja registrada.
type DisposalResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Reason    string    `json:"reason"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
