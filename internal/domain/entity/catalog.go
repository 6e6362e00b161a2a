package entity

import "time"

// Category representa una categoría de ítems.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación física donde puede estar un ítem.
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status representa un estado de ítem (ej. Disponible, En reparación, Dado de baja).
type Status struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
