package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	Description       string `json:"description"`
	ImageURL          string `json:"image_url"`
	CategoryID        string `json:"category_id" validate:"required,uuid"`
	LocationID        string `json:"location_id"`
	StatusID          string `json:"status_id"`
	QRCode            string `json:"qr_code" validate:"required"`
	Stock             int    `json:"stock"`
	MinStock          int    `json:"min_stock"`
	ResponsibleUserID string `json:"responsible_user_id"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
// Cambios de stock o min_stock disparan el notificador de bajo stock.
type UpdateItemRequest struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
	CategoryID        *string `json:"category_id,omitempty"`
	LocationID        *string `json:"location_id,omitempty"`
	StatusID          *string `json:"status_id,omitempty"`
	Stock             *int    `json:"stock,omitempty"`
	MinStock          *int    `json:"min_stock,omitempty"`
	ResponsibleUserID *string `json:"responsible_user_id,omitempty"`
}

// DeleteItemRequest body para DELETE /api/items/:id (baja con motivo).
type DeleteItemRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ItemResponse salida de un ítem con sus relaciones resueltas y el estado
// derivado del stock.
type ItemResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	CategoryID        string    `json:"category_id"`
	CategoryName      string    `json:"category_name,omitempty"`
	LocationID        string    `json:"location_id,omitempty"`
	LocationName      string    `json:"location_name,omitempty"`
	StatusID          string    `json:"status_id,omitempty"`
	StatusName        string    `json:"status_name,omitempty"`
	QRCode            string    `json:"qr_code"`
	Stock             int       `json:"stock"`
	MinStock          int       `json:"min_stock"`
	IsLowStock        bool      `json:"is_low_stock"`
	StockStatus       string    `json:"stock_status"` // Agotado | Bajo stock | Disponible
	ResponsibleUserID string    `json:"responsible_user_id,omitempty"`
	ResponsibleName   string    `json:"responsible_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
