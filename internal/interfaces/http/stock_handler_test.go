package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	httpiface "github.com/inventario-app/inventario-api/internal/interfaces/http"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: un solo ítem en memoria detrás de un TxRunner con mutex.
// ──────────────────────────────────────────────────────────────────────────────

type stockFixture struct {
	mu      sync.Mutex
	item    *entity.Item
	history []*entity.StockHistory
}

func (f *stockFixture) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var copia *entity.Item
	if f.item != nil {
		c := *f.item
		copia = &c
	}
	var pending []*entity.StockHistory
	if err := fn(&fixtureItemRepo{item: copia}, &fixtureHistoryRepo{entries: &pending}); err != nil {
		return err
	}
	f.item = copia
	f.history = append(f.history, pending...)
	return nil
}

type fixtureItemRepo struct{ item *entity.Item }

func (r *fixtureItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	if r.item == nil || r.item.ID != id {
		return nil, nil
	}
	c := *r.item
	return &c, nil
}

func (r *fixtureItemRepo) UpdateStock(_ string, s int) error {
	r.item.Stock = s
	return nil
}

func (r *fixtureItemRepo) Create(*entity.Item) error                                { return nil }
func (r *fixtureItemRepo) GetByID(id string) (*entity.Item, error)                  { return r.GetForUpdate(id) }
func (r *fixtureItemRepo) GetDetailByID(string) (*entity.ItemDetail, error)         { return nil, nil }
func (r *fixtureItemRepo) List(repository.ItemFilter) ([]*entity.ItemDetail, error) { return nil, nil }
func (r *fixtureItemRepo) Update(*entity.Item) error                                { return nil }
func (r *fixtureItemRepo) Delete(string) error                                      { return nil }
func (r *fixtureItemRepo) SetLocation(string, string) error                         { return nil }

type fixtureHistoryRepo struct{ entries *[]*entity.StockHistory }

func (r *fixtureHistoryRepo) Create(h *entity.StockHistory) error {
	*r.entries = append(*r.entries, h)
	return nil
}

func (r *fixtureHistoryRepo) ListByItem(string, int, int) ([]*entity.StockHistory, error) {
	return nil, nil
}

type noopRoleLister struct{}

func (noopRoleLister) ListIDsByRole(string) ([]string, error) { return nil, nil }

type noopNotificationCreator struct{}

func (noopNotificationCreator) Create(*entity.Notification) error { return nil }

func buildStockTestApp(fixture *stockFixture) *fiber.App {
	log := logger.Nop()
	notifier := stock.NewLowStockNotifier(noopRoleLister{}, noopNotificationCreator{}, log)
	uc := stock.NewAdjustStockUseCase(fixture, notifier, log)
	handler := httpiface.NewStockHandler(uc, &fixtureHistoryRepo{entries: new([]*entity.StockHistory)}, log)

	app := fiber.New()
	app.Post("/api/items/:id/stock", func(c *fiber.Ctx) error {
		c.Locals(httpiface.LocalUserID, testUserID)
		c.Locals(httpiface.LocalRole, entity.RolePasante)
		return c.Next()
	}, handler.Adjust)
	return app
}

func postStock(t *testing.T, app *fiber.App, itemID, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/items/"+itemID+"/stock",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/items/:id/stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHandler_AjusteExitoso(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Name: "Taladro", Stock: 10, MinStock: 2}}
	app := buildStockTestApp(fixture)

	resp := postStock(t, app, "item-1", `{"type":"subtract","quantity":4}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success   bool   `json:"success"`
		Stock     int    `json:"stock"`
		HistoryID string `json:"history_id"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, 6, body.Stock)
	assert.NotEmpty(t, body.HistoryID)
	assert.Equal(t, 6, fixture.item.Stock)
}

func TestStockHandler_BodyInvalido(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Stock: 10, MinStock: 2}}
	app := buildStockTestApp(fixture)

	resp := postStock(t, app, "item-1", `{esto no es json`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "invalid request body", body.Error)
}

func TestStockHandler_TipoOCantidadInvalida(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Stock: 10, MinStock: 2}}
	app := buildStockTestApp(fixture)

	cases := []string{
		`{"type":"remove","quantity":1}`,
		`{"type":"add","quantity":0}`,
		`{"type":"add","quantity":-5}`,
	}
	for _, payload := range cases {
		resp := postStock(t, app, "item-1", payload)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload %s", payload)

		var body struct {
			Error string `json:"error"`
		}
		decodeJSON(t, resp, &body)
		assert.Equal(t, "invalid type or quantity", body.Error)
	}
	assert.Equal(t, 10, fixture.item.Stock, "el stock no debe mutar")
}

func TestStockHandler_StockInsuficiente(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Stock: 4, MinStock: 2}}
	app := buildStockTestApp(fixture)

	resp := postStock(t, app, "item-1", `{"type":"subtract","quantity":999}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "insufficient stock", body.Error)
	assert.Equal(t, 4, fixture.item.Stock)
	assert.Empty(t, fixture.history, "sin entrada en el ledger")
}

func TestStockHandler_ItemInexistente(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Stock: 4, MinStock: 2}}
	app := buildStockTestApp(fixture)

	resp := postStock(t, app, "no-existe", `{"type":"add","quantity":1}`)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "item not found", body.Error)
}

func TestStockHandler_TipoCaseInsensitive(t *testing.T) {
	fixture := &stockFixture{item: &entity.Item{ID: "item-1", Stock: 10, MinStock: 2}}
	app := buildStockTestApp(fixture)

	resp := postStock(t, app, "item-1", `{"type":"SUBTRACT","quantity":1}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 9, fixture.item.Stock)
}
