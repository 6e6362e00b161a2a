package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
)

func TestItem_IsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     bool
	}{
		{"bajo el umbral", 2, 5, true},
		{"en el umbral exacto", 5, 5, false},
		{"sobre el umbral", 6, 5, false},
		{"agotado", 0, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &entity.Item{Stock: tc.stock, MinStock: tc.minStock}
			assert.Equal(t, tc.want, item.IsLowStock())
		})
	}
}

func TestItem_StockStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     string
	}{
		{"agotado", 0, 5, entity.StockStatusAgotado},
		{"bajo stock", 3, 5, entity.StockStatusBajoStock},
		{"disponible en el umbral", 5, 5, entity.StockStatusDisponible},
		{"disponible", 10, 5, entity.StockStatusDisponible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &entity.Item{Stock: tc.stock, MinStock: tc.minStock}
			assert.Equal(t, tc.want, item.StockStatus())
		})
	}
}
