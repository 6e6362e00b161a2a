package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemMaintenance registra un mantenimiento realizado sobre un ítem.
type ItemMaintenance struct {
	ID          string
	ItemID      string
	Description string
	Cost        decimal.Decimal // costo del mantenimiento, 0 si no aplica
	StatusID    string          // estado resultante del ítem, vacío si no cambia
	UserID      string
	CreatedAt   time.Time
}
