package dto

// CatalogRequest body para crear/actualizar categorías, ubicaciones y estados.
type CatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CatalogResponse salida de una entrada de catálogo.
type CatalogResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
