package entity

import "time"

// Acciones de ajuste de stock.
const (
	StockActionAdd      = "add"
	StockActionSubtract = "subtract"
)

// StockHistory es una entrada del ledger de stock: registro inmutable de un
// ajuste aplicado a un ítem. Se crea exactamente una por ajuste exitoso, en la
// misma transacción que actualiza el stock del ítem; nunca se modifica ni borra.
type StockHistory struct {
	ID        string
	ItemID    string
	Action    string // add, subtract
	Quantity  int    // siempre positivo
	OldStock  int
	NewStock  int
	CreatedBy string // UserID del actor
	CreatedAt time.Time
}
