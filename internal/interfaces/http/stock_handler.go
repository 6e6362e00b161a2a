package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// StockHandler maneja los ajustes de stock y la consulta del ledger (protegido).
// Las respuestas usan la forma {error: ...} / {success, stock, history_id} que
// consume el frontend, distinta del resto de la API.
type StockHandler struct {
	adjust      *stock.AdjustStockUseCase
	historyRepo repository.StockHistoryRepository
	log         *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(adjust *stock.AdjustStockUseCase, historyRepo repository.StockHistoryRepository, log *logger.Logger) *StockHandler {
	return &StockHandler{adjust: adjust, historyRepo: historyRepo, log: log}
}

// Adjust godoc
// @Summary      Ajustar stock de un ítem
// @Description  Aplica un ajuste add/subtract atómico con entrada en el ledger.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.AdjustStockRequest  true  "type (add|subtract) y quantity"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.StockErrorResponse
// @Failure      404   {object}  dto.StockErrorResponse
// @Failure      500   {object}  dto.StockErrorResponse
// @Router       /api/items/{id}/stock [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{Error: "invalid request body"})
	}

	out, err := h.adjust.AdjustStock(c.Context(), stock.AdjustmentInput{
		ItemID:   c.Params("id"),
		Action:   in.Type,
		Quantity: in.Quantity,
		UserID:   GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{Error: "invalid type or quantity"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{Error: "insufficient stock"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.StockErrorResponse{Error: "item not found"})
		default:
			h.log.Error().Err(err).Str("item_id", c.Params("id")).Msg("ajuste de stock falló")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.StockErrorResponse{Error: "internal error"})
		}
	}
	return c.JSON(dto.AdjustStockResponse{Success: true, Stock: out.Stock, HistoryID: out.HistoryID})
}

// History godoc
// @Summary      Ledger de ajustes de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID del ítem"
// @Param        limit   query  int     false "Límite"   default(20)
// @Param        offset  query  int     false "Offset"   default(0)
// @Success      200  {array}  dto.StockHistoryResponse
// @Router       /api/items/{id}/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	entries, err := h.historyRepo.ListByItem(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockHistoryResponse{
			ID:        e.ID,
			ItemID:    e.ItemID,
			Action:    e.Action,
			Quantity:  e.Quantity,
			OldStock:  e.OldStock,
			NewStock:  e.NewStock,
			CreatedBy: e.CreatedBy,
			CreatedAt: e.CreatedAt,
		})
	}
	return c.JSON(out)
}
