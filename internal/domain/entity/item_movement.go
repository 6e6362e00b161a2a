package entity

import "time"

// ItemMovement registra el traslado de un ítem entre ubicaciones.
type ItemMovement struct {
	ID            string
	ItemID        string
	OldLocationID string // vacío si el ítem no tenía ubicación
	NewLocationID string
	UserID        string
	CreatedAt     time.Time
}
