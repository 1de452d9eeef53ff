package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

func init() {
	logger, _ := zap.NewDevelopment()
	zap.ReplaceGlobals(logger)
}

// --- Mock Store ---

type mockCartStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart

	getErr  error
	saveErr error
	saves   int
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: make(map[string]*models.Cart)}
}

func (m *mockCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	copied := *cart
	return &copied, nil
}

func (m *mockCartStore) Save(_ context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *mockCartStore) stored(userID string) *models.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.carts[userID]
}

// --- Helpers ---

func testItem(id, name string, price int) models.CartItem {
	return models.CartItem{
		ID:    id,
		Name:  name,
		City:  "Jalandhar",
		Price: price,
		Type:  models.ServiceConsultation,
	}
}

func newCartService(store *mockCartStore) *services.CartService {
	return services.NewCartService(store, time.Second)
}

// --- Tests ---

func TestCart_AddItem_NewLine(t *testing.T) {
	svc := newCartService(newMockCartStore())

	snap, note := svc.AddItem(context.Background(), "u1", testItem("mb-consultation", "Model Town - Consultation", 99))

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 99, snap.Total)
	assert.Equal(t, 1, snap.ItemCount)
	assert.Equal(t, "Model Town - Consultation added to cart!", note)
}

func TestCart_AddItem_ExistingLineBumpsQuantity(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	snap, _ := svc.AddItem(ctx, "u1", testItem("a", "A", 100))

	assert.Len(t, snap.Items, 1, "same ID must merge, not append")
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 200, snap.Total)
	assert.Equal(t, 2, snap.ItemCount)
}

func TestCart_Totals_RecomputedAcrossLines(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 99))
	svc.AddItem(ctx, "u1", testItem("a", "A", 99))
	snap, _ := svc.AddItem(ctx, "u1", testItem("b", "B", 199))

	assert.Equal(t, 99*2+199, snap.Total)
	assert.Equal(t, 3, snap.ItemCount)
}

func TestCart_RemoveItem(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	svc.AddItem(ctx, "u1", testItem("b", "B", 200))
	snap, note := svc.RemoveItem(ctx, "u1", "a")

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "b", snap.Items[0].ID)
	assert.Equal(t, 200, snap.Total)
	assert.Equal(t, "Item removed from cart", note)
}

func TestCart_RemoveItem_UnknownIDIsNoop(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	snap, _ := svc.RemoveItem(ctx, "u1", "ghost")

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 100, snap.Total)
}

func TestCart_UpdateQuantity(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 50))
	snap := svc.UpdateQuantity(ctx, "u1", "a", 4)

	assert.Equal(t, 4, snap.Items[0].Quantity)
	assert.Equal(t, 200, snap.Total)
	assert.Equal(t, 4, snap.ItemCount)
}

func TestCart_UpdateQuantity_ZeroDropsLine(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 50))
	snap := svc.UpdateQuantity(ctx, "u1", "a", 0)

	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.Total)
}

func TestCart_UpdateQuantity_NegativeClampsToZero(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 50))
	snap := svc.UpdateQuantity(ctx, "u1", "a", -3)

	assert.Empty(t, snap.Items, "negative quantity clamps to zero and drops the line")
}

func TestCart_SaveForLater(t *testing.T) {
	svc := newCartService(newMockCartStore())

	snap, note := svc.SaveForLater(context.Background(), "u1", models.SavedItem{ID: "mb", Name: "Model Town"})

	assert.Len(t, snap.SavedItems, 1)
	assert.False(t, snap.SavedItems[0].SavedAt.IsZero())
	assert.Equal(t, "Model Town saved for later!", note)
}

func TestCart_SaveForLater_DuplicateIsSilentNoop(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.SaveForLater(ctx, "u1", models.SavedItem{ID: "mb", Name: "Model Town"})
	snap, note := svc.SaveForLater(ctx, "u1", models.SavedItem{ID: "mb", Name: "Model Town"})

	assert.Len(t, snap.SavedItems, 1)
	assert.Empty(t, note)
}

func TestCart_RemoveSaved(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.SaveForLater(ctx, "u1", models.SavedItem{ID: "mb", Name: "Model Town"})
	snap, note := svc.RemoveSaved(ctx, "u1", "mb")

	assert.Empty(t, snap.SavedItems)
	assert.Equal(t, "Removed from saved items", note)
}

func TestCart_Clear_LeavesSavedItems(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	svc.SaveForLater(ctx, "u1", models.SavedItem{ID: "mb", Name: "Model Town"})
	snap, note := svc.ClearCart(ctx, "u1")

	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.Total)
	assert.Equal(t, 0, snap.ItemCount)
	assert.Len(t, snap.SavedItems, 1, "clearing the cart must not touch saved items")
	assert.Equal(t, "Cart cleared", note)
}

func TestCart_LoadsPersistedStateOnFirstAccess(t *testing.T) {
	store := newMockCartStore()
	store.carts["u1"] = &models.Cart{
		UserID: "u1",
		Items:  []models.CartItem{{ID: "a", Name: "A", Price: 100, Quantity: 2}},
	}
	svc := newCartService(store)

	snap := svc.Snapshot(context.Background(), "u1")

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 200, snap.Total)
}

func TestCart_LoadFailureStartsEmpty(t *testing.T) {
	store := newMockCartStore()
	store.getErr = errors.New("store down")
	svc := newCartService(store)

	snap := svc.Snapshot(context.Background(), "u1")
	assert.Empty(t, snap.Items)

	// Not retried on the next access.
	store.mu.Lock()
	store.getErr = nil
	store.carts["u1"] = &models.Cart{UserID: "u1", Items: []models.CartItem{{ID: "a", Quantity: 1}}}
	store.mu.Unlock()

	snap = svc.Snapshot(context.Background(), "u1")
	assert.Empty(t, snap.Items, "failed load is not retried within a session")
}

func TestCart_MutationsPersistAsynchronously(t *testing.T) {
	store := newMockCartStore()
	svc := newCartService(store)

	svc.AddItem(context.Background(), "u1", testItem("a", "A", 100))

	assert.Eventually(t, func() bool {
		cart := store.stored("u1")
		return cart != nil && len(cart.Items) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCart_SaveFailureDoesNotAffectSession(t *testing.T) {
	store := newMockCartStore()
	store.saveErr = errors.New("store down")
	svc := newCartService(store)
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))

	assert.Eventually(t, func() bool { return store.saveCount() >= 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, store.saveCount(), "failed save is not retried")

	snap := svc.Snapshot(ctx, "u1")
	assert.Len(t, snap.Items, 1, "in-memory state survives a failed save")
}

func TestCart_EndSessionReloadsFromStore(t *testing.T) {
	store := newMockCartStore()
	svc := newCartService(store)
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	assert.Eventually(t, func() bool { return store.stored("u1") != nil }, time.Second, 10*time.Millisecond)

	svc.EndSession("u1")

	snap := svc.Snapshot(ctx, "u1")
	assert.Len(t, snap.Items, 1, "next access reloads the persisted document")
}

func TestCart_SnapshotDoesNotAliasInternalState(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	snap, _ := svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	snap.Items[0].Quantity = 99

	again := svc.Snapshot(ctx, "u1")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestCart_SessionsAreIsolatedPerUser(t *testing.T) {
	svc := newCartService(newMockCartStore())
	ctx := context.Background()

	svc.AddItem(ctx, "u1", testItem("a", "A", 100))
	snap := svc.Snapshot(ctx, "u2")

	assert.Empty(t, snap.Items)
}
