package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventario-app/inventario-api/internal/application/stock"
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/pkg/logger"
)

// selectiveCreator falla solo para los destinatarios marcados.
type selectiveCreator struct {
	mu      sync.Mutex
	failFor map[string]bool
	created []*entity.Notification
}

func (f *selectiveCreator) Create(n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[n.UserID] {
		return assert.AnError
	}
	f.created = append(f.created, n)
	return nil
}

func lowStockItem() *entity.Item {
	return &entity.Item{
		ID:                "item-1",
		Name:              "Multímetro",
		Stock:             2,
		MinStock:          5,
		ResponsibleUserID: "resp-1",
	}
}

func TestNotify_FanOutResponsableYAdmins(t *testing.T) {
	users := &fakeRoleLister{admins: []string{"admin-1", "admin-2"}}
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(users, notifs, logger.Nop())

	err := n.Notify(context.Background(), lowStockItem())
	require.NoError(t, err)

	created := notifs.all()
	require.Len(t, created, 3)

	targets := make([]string, 0, 3)
	for _, c := range created {
		targets = append(targets, c.UserID)
		assert.Equal(t, "Alert: item Multímetro low on stock (2 units)", c.Message)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.IsRead)
	}
	assert.ElementsMatch(t, []string{"resp-1", "admin-1", "admin-2"}, targets)
}

func TestNotify_SinResponsable_SoloAdmins(t *testing.T) {
	users := &fakeRoleLister{admins: []string{"admin-1"}}
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(users, notifs, logger.Nop())

	item := lowStockItem()
	item.ResponsibleUserID = ""
	require.NoError(t, n.Notify(context.Background(), item))

	created := notifs.all()
	require.Len(t, created, 1)
	assert.Equal(t, "admin-1", created[0].UserID)
}

func TestNotify_StockSuficiente_NoHaceNada(t *testing.T) {
	users := &fakeRoleLister{admins: []string{"admin-1"}}
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(users, notifs, logger.Nop())

	item := lowStockItem()
	item.Stock = item.MinStock
	require.NoError(t, n.Notify(context.Background(), item))
	assert.Empty(t, notifs.all(), "stock == min_stock no es bajo stock")
}

func TestNotify_ItemNil_NoHaceNada(t *testing.T) {
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(&fakeRoleLister{}, notifs, logger.Nop())

	require.NoError(t, n.Notify(context.Background(), nil))
	assert.Empty(t, notifs.all())
}

func TestNotify_FalloParcial_ContinuaConElResto(t *testing.T) {
	users := &fakeRoleLister{admins: []string{"admin-1", "admin-2"}}
	creator := &selectiveCreator{failFor: map[string]bool{"admin-1": true}}
	n := stock.NewLowStockNotifier(users, creator, logger.Nop())

	err := n.Notify(context.Background(), lowStockItem())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 de 3 notificaciones fallaron")

	targets := make([]string, 0, 2)
	for _, c := range creator.created {
		targets = append(targets, c.UserID)
	}
	assert.ElementsMatch(t, []string{"resp-1", "admin-2"}, targets,
		"los destinatarios restantes reciben su notificación")
}

func TestNotify_FalloListandoAdmins(t *testing.T) {
	users := &fakeRoleLister{err: assert.AnError}
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(users, notifs, logger.Nop())

	err := n.Notify(context.Background(), lowStockItem())
	require.Error(t, err)
	assert.Empty(t, notifs.all())
}

func TestNotify_SinDeduplicacion(t *testing.T) {
	users := &fakeRoleLister{admins: []string{"admin-1"}}
	notifs := &fakeNotificationCreator{}
	n := stock.NewLowStockNotifier(users, notifs, logger.Nop())

	item := lowStockItem()
	require.NoError(t, n.Notify(context.Background(), item))
	require.NoError(t, n.Notify(context.Background(), item))

	assert.Len(t, notifs.all(), 4, "dos invocaciones producen dos fan-outs completos")
}
