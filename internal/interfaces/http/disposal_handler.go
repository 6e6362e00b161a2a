package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/application/usecase"
)

// DisposalHandler consulta de bajas registradas (protegido, solo admin).
type DisposalHandler struct {
	uc *usecase.DisposalUseCase
}

// NewDisposalHandler construye el handler.
func NewDisposalHandler(uc *usecase.DisposalUseCase) *DisposalHandler {
	return &DisposalHandler{uc: uc}
}

// List godoc
// @Summary      Listar bajas de ítems
// @Tags         disposals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.DisposalResponse
// @Router       /api/disposals [get]
func (h *DisposalHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
