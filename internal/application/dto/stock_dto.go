package dto

import "time"

// AdjustStockRequest body para POST /api/items/:id/stock.
type AdjustStockRequest struct {
	Type     string `json:"type"`     // "add" | "subtract"
	Quantity int    `json:"quantity"` // entero estrictamente positivo
}

// AdjustStockResponse respuesta de un ajuste exitoso.
type AdjustStockResponse struct {
	Success   bool   `json:"success"`
	Stock     int    `json:"stock"`
	HistoryID string `json:"history_id"`
}

// StockErrorResponse cuerpo de error del endpoint de ajuste de stock.
// Mantiene la forma {"error": ...} que consume el frontend.
type StockErrorResponse struct {
	Error string `json:"error"`
}

// StockHistoryResponse una entrada del ledger de stock.
type StockHistoryResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Action    string    `json:"action"`
	Quantity  int       `json:"quantity"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
