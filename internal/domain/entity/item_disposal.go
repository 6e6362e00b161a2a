package entity

import "time"

// ItemDisposal registra la baja (eliminación) de un ítem con su motivo.
type ItemDisposal struct {
	ID        string
	ItemID    string
	ItemName  string // nombre al momento de la baja, el ítem puede dejar de existir
	Reason    string
	UserID    string
	CreatedAt time.Time
}
