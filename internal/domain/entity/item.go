package entity

import "time"

// Estados derivados del stock de un ítem.
const (
	StockStatusAgotado    = "Agotado"
	StockStatusBajoStock  = "Bajo stock"
	StockStatusDisponible = "Disponible"
)

// Item representa un ítem del inventario.
// Stock se muta únicamente a través del ajuste de stock (ledger) o de la
// actualización del ítem; nunca por corrección posterior.
type Item struct {
	ID                string
	Name              string
	Description       string
	ImageURL          string
	CategoryID        string
	LocationID        string // vacío si no tiene ubicación asignada
	StatusID          string // vacío si no tiene estado asignado
	QRCode            string // único
	Stock             int    // invariante: Stock >= 0
	MinStock          int    // umbral de alerta, >= 1
	ResponsibleUserID string // vacío si no hay responsable
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock está por debajo del umbral de alerta.
func (i *Item) IsLowStock() bool {
	return i.Stock < i.MinStock
}

// StockStatus deriva el estado legible del stock: Agotado (0), Bajo stock
// (menor al mínimo) o Disponible.
func (i *Item) StockStatus() string {
	switch {
	case i.Stock == 0:
		return StockStatusAgotado
	case i.Stock < i.MinStock:
		return StockStatusBajoStock
	default:
		return StockStatusDisponible
	}
}

// ItemDetail es un Item enriquecido con los nombres de sus relaciones,
// tal como lo consumen los listados y el reporte PDF.
type ItemDetail struct {
	Item
	CategoryName    string
	LocationName    string
	StatusName      string
	ResponsibleName string
}
