package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/domain"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: emulan la transacción (commit/rollback) y el lock de fila
// con un mutex que serializa los ajustes igual que SELECT FOR UPDATE.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu          sync.Mutex
	items       map[string]*entity.Item
	history     []*entity.StockHistory
	failHistory bool
}

func newMemStore(items ...*entity.Item) *memStore {
	s := &memStore{items: make(map[string]*entity.Item)}
	for _, it := range items {
		copia := *it
		s.items[it.ID] = &copia
	}
	return s
}

func (s *memStore) item(id string) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *memStore) historyRows() []*entity.StockHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.StockHistory(nil), s.history...)
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Copia de trabajo: si fn falla no se aplica nada (rollback).
	txItems := make(map[string]*entity.Item, len(r.store.items))
	for id, it := range r.store.items {
		copia := *it
		txItems[id] = &copia
	}
	var txHistory []*entity.StockHistory

	itemRepo := &txItemRepo{items: txItems}
	historyRepo := &txHistoryRepo{entries: &txHistory, fail: r.store.failHistory}

	if err := fn(itemRepo, historyRepo); err != nil {
		return err
	}
	r.store.items = txItems
	r.store.history = append(r.store.history, txHistory...)
	return nil
}

type txItemRepo struct {
	items map[string]*entity.Item
}

func (r *txItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (r *txItemRepo) UpdateStock(itemID string, s int) error {
	r.items[itemID].Stock = s
	return nil
}

func (r *txItemRepo) Create(*entity.Item) error                          { return nil }
func (r *txItemRepo) GetByID(id string) (*entity.Item, error)            { return r.GetForUpdate(id) }
func (r *txItemRepo) GetDetailByID(string) (*entity.ItemDetail, error)   { return nil, nil }
func (r *txItemRepo) List(repository.ItemFilter) ([]*entity.ItemDetail, error) { return nil, nil }
func (r *txItemRepo) Update(*entity.Item) error                          { return nil }
func (r *txItemRepo) Delete(string) error                                { return nil }
func (r *txItemRepo) SetLocation(string, string) error                   { return nil }

type txHistoryRepo struct {
	entries *[]*entity.StockHistory
	fail    bool
}

func (r *txHistoryRepo) Create(h *entity.StockHistory) error {
	if r.fail {
		return assert.AnError
	}
	*r.entries = append(*r.entries, h)
	return nil
}

func (r *txHistoryRepo) ListByItem(string, int, int) ([]*entity.StockHistory, error) {
	return nil, nil
}

type fakeRoleLister struct {
	mu     sync.Mutex
	admins []string
	err    error
}

func (f *fakeRoleLister) ListIDsByRole(string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.admins, f.err
}

type fakeNotificationCreator struct {
	mu      sync.Mutex
	created []*entity.Notification
	err     error
}

func (f *fakeNotificationCreator) Create(n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationCreator) all() []*entity.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Notification(nil), f.created...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testItemID = "item-1"
	testUserID = "user-1"
)

func buildUseCase(store *memStore, users *fakeRoleLister, notifs *fakeNotificationCreator) *stock.AdjustStockUseCase {
	log := logger.Nop()
	notifier := stock.NewLowStockNotifier(users, notifs, log)
	return stock.NewAdjustStockUseCase(&fakeTxRunner{store: store}, notifier, log)
}

func testItem(stockQty, minStock int) *entity.Item {
	return &entity.Item{
		ID:       testItemID,
		Name:     "Taladro",
		Stock:    stockQty,
		MinStock: minStock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y aritmética
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_AddIncrementaStock(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	out, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "add", Quantity: 5, UserID: testUserID,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, out.Stock)
	assert.NotEmpty(t, out.HistoryID)
	assert.Equal(t, 15, store.item(testItemID).Stock, "el stock debe persistirse")
}

func TestAdjustStock_SubtractRegistraLedgerConBrackets(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	out, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 6, UserID: testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Stock)

	rows := store.historyRows()
	require.Len(t, rows, 1)
	h := rows[0]
	assert.Equal(t, out.HistoryID, h.ID)
	assert.Equal(t, "subtract", h.Action)
	assert.Equal(t, 6, h.Quantity)
	assert.Equal(t, 10, h.OldStock, "old_stock debe ser el valor previo")
	assert.Equal(t, 4, h.NewStock, "new_stock debe ser el valor resultante")
	assert.Equal(t, testUserID, h.CreatedBy)
}

func TestAdjustStock_AccionCaseInsensitive(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	out, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "  ADD ", Quantity: 1, UserID: testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, out.Stock)

	rows := store.historyRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "add", rows[0].Action, "la acción se normaliza a minúsculas")
}

func TestAdjustStock_AccionInvalida(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	for _, action := range []string{"", "remove", "ADDD", "sub"} {
		_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
			ItemID: testItemID, Action: action, Quantity: 1, UserID: testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "acción %q debe rechazarse", action)
	}
	assert.Equal(t, 10, store.item(testItemID).Stock, "el stock no debe mutar")
	assert.Empty(t, store.historyRows(), "no debe haber entradas en el ledger")
}

func TestAdjustStock_CantidadInvalida(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	for _, qty := range []int{0, -1, -100} {
		_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
			ItemID: testItemID, Action: "add", Quantity: qty, UserID: testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, store.historyRows())
}

func TestAdjustStock_ItemInexistente(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: "no-existe", Action: "add", Quantity: 1, UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente y atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_StockInsuficiente_NoMutaEstado(t *testing.T) {
	store := newMemStore(testItem(4, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 999, UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 4, store.item(testItemID).Stock, "sin decremento parcial")
	assert.Empty(t, store.historyRows(), "un ajuste rechazado no deja entrada en el ledger")
}

func TestAdjustStock_SubtractExacto(t *testing.T) {
	store := newMemStore(testItem(5, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	out, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 5, UserID: testUserID,
	})
	require.NoError(t, err, "old_stock == quantity debe permitirse")
	assert.Equal(t, 0, out.Stock)
}

func TestAdjustStock_FalloDelLedger_RevierteElStock(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	store.failHistory = true
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "add", Quantity: 5, UserID: testUserID,
	})
	require.Error(t, err)

	assert.Equal(t, 10, store.item(testItemID).Stock,
		"si la entrada del ledger no se escribe, el stock tampoco")
	assert.Empty(t, store.historyRows())
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia y no-idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_SubtractsConcurrentes_SinSobregiro(t *testing.T) {
	// stock=5 y dos subtract de 3 concurrentes: exactamente uno debe fallar.
	store := newMemStore(testItem(5, 1))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
				ItemID: testItemID, Action: "subtract", Quantity: 3, UserID: testUserID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var failures int
	for err := range errs {
		if err != nil {
			failures++
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, failures, "exactamente un subtract debe fallar")
	assert.Equal(t, 2, store.item(testItemID).Stock)
	assert.Len(t, store.historyRows(), 1, "solo el ajuste exitoso deja ledger")
}

func TestAdjustStock_NoEsIdempotente(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	uc := buildUseCase(store, &fakeRoleLister{}, &fakeNotificationCreator{})

	in := stock.AdjustmentInput{ItemID: testItemID, Action: "subtract", Quantity: 2, UserID: testUserID}
	out1, err := uc.AdjustStock(context.Background(), in)
	require.NoError(t, err)
	out2, err := uc.AdjustStock(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, out1.HistoryID, out2.HistoryID, "cada ajuste genera su propia entrada")
	assert.Equal(t, 6, store.item(testItemID).Stock, "el mismo payload aplicado dos veces descuenta dos veces")
	assert.Len(t, store.historyRows(), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fan-out de notificaciones post-commit
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_BajoUmbral_NotificaResponsableYAdmins(t *testing.T) {
	item := testItem(5, 4)
	item.ResponsibleUserID = "resp-1"
	store := newMemStore(item)
	users := &fakeRoleLister{admins: []string{"admin-1", "admin-2"}}
	notifs := &fakeNotificationCreator{}
	uc := buildUseCase(store, users, notifs)

	// 5 - 2 = 3 < min_stock 4: dispara el fan-out.
	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 2, UserID: testUserID,
	})
	require.NoError(t, err)

	created := notifs.all()
	require.Len(t, created, 3, "responsable + 2 admins")

	targets := make([]string, 0, 3)
	for _, n := range created {
		targets = append(targets, n.UserID)
		assert.Equal(t, "Alert: item Taladro low on stock (3 units)", n.Message)
		assert.False(t, n.IsRead)
	}
	assert.ElementsMatch(t, []string{"resp-1", "admin-1", "admin-2"}, targets)
}

func TestAdjustStock_SobreUmbral_NoNotifica(t *testing.T) {
	store := newMemStore(testItem(10, 2))
	users := &fakeRoleLister{admins: []string{"admin-1"}}
	notifs := &fakeNotificationCreator{}
	uc := buildUseCase(store, users, notifs)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 1, UserID: testUserID,
	})
	require.NoError(t, err)
	assert.Empty(t, notifs.all(), "9 >= min_stock 2: sin notificaciones")
}

func TestAdjustStock_UmbralExacto_NoNotifica(t *testing.T) {
	// stock == min_stock no es bajo stock (la condición es estricta: stock < min).
	store := newMemStore(testItem(5, 4))
	notifs := &fakeNotificationCreator{}
	uc := buildUseCase(store, &fakeRoleLister{admins: []string{"admin-1"}}, notifs)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 1, UserID: testUserID,
	})
	require.NoError(t, err)
	assert.Empty(t, notifs.all())
}

func TestAdjustStock_FalloDelNotificador_NoAfectaElAjuste(t *testing.T) {
	store := newMemStore(testItem(3, 4))
	notifs := &fakeNotificationCreator{err: assert.AnError}
	uc := buildUseCase(store, &fakeRoleLister{admins: []string{"admin-1"}}, notifs)

	out, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ItemID: testItemID, Action: "subtract", Quantity: 1, UserID: testUserID,
	})
	require.NoError(t, err, "el ajuste ya está confirmado cuando corre el fan-out")
	assert.Equal(t, 2, out.Stock)
	assert.Len(t, store.historyRows(), 1)
}

func TestAdjustStock_RepetidoBajoUmbral_NotificaCadaVez(t *testing.T) {
	// Sin deduplicación: cada ajuste bajo el umbral produce su propio fan-out.
	store := newMemStore(testItem(3, 10))
	notifs := &fakeNotificationCreator{}
	uc := buildUseCase(store, &fakeRoleLister{admins: []string{"admin-1"}}, notifs)

	for i := 0; i < 3; i++ {
		_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
			ItemID: testItemID, Action: "subtract", Quantity: 1, UserID: testUserID,
		})
		require.NoError(t, err)
	}
	assert.Len(t, notifs.all(), 3)
}
