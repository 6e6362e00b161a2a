package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventario-app/inventario-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"cero usa defaults", dto.PageRequest{}, 20, 0},
		{"limite negativo", dto.PageRequest{Limit: -5, Offset: -3}, 20, 0},
		{"limite sobre el tope", dto.PageRequest{Limit: 500, Offset: 40}, 100, 40},
		{"valores válidos se respetan", dto.PageRequest{Limit: 50, Offset: 10}, 50, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
