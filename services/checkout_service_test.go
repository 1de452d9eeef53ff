package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

// --- Mock Stores ---

type mockOrderStore struct {
	mu        sync.Mutex
	orders    []models.Order
	createErr error
}

func (m *mockOrderStore) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderStore) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

type mockPayments struct {
	mu    sync.Mutex
	calls int
	err   error
	block chan struct{}
}

func (m *mockPayments) Process(_ context.Context, _ models.CheckoutForm, _ int) error {
	m.mu.Lock()
	m.calls++
	err := m.err
	block := m.block
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return err
}

func (m *mockPayments) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockPublisher struct {
	mu        sync.Mutex
	published []models.Order
}

func (m *mockPublisher) PublishOrderConfirmed(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, *order)
	return nil
}

func (m *mockPublisher) publishedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.published)
}

// --- Helpers ---

func testForm() models.CheckoutForm {
	return models.CheckoutForm{
		Email:      "jas@example.com",
		FirstName:  "Jas",
		LastName:   "Dhillon",
		Address:    "12 GT Road",
		City:       "Jalandhar",
		State:      "Punjab",
		ZipCode:    "144001",
		CardNumber: "4111 1111 1111 1234",
		ExpiryDate: "12/27",
		CVV:        "123",
		NameOnCard: "Jas Dhillon",
	}
}

type checkoutFixture struct {
	carts     *services.CartService
	orders    *mockOrderStore
	payments  *mockPayments
	publisher *mockPublisher
	svc       *services.CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		carts:     services.NewCartService(newMockCartStore(), time.Second),
		orders:    &mockOrderStore{},
		payments:  &mockPayments{},
		publisher: &mockPublisher{},
	}
	f.svc = services.NewCheckoutService(f.carts, f.orders, f.payments, f.publisher)
	return f
}

// --- Tests ---

func TestPricing(t *testing.T) {
	fee, tax, total := services.Pricing(200)
	assert.Equal(t, 10, fee)
	assert.Equal(t, 16, tax)
	assert.Equal(t, 226, total)
}

func TestPricing_RoundsEachAmountIndependently(t *testing.T) {
	// 99: fee round(4.95)=5, tax round(7.92)=8, total round(111.87)=112.
	fee, tax, total := services.Pricing(99)
	assert.Equal(t, 5, fee)
	assert.Equal(t, 8, tax)
	assert.Equal(t, 112, total)

	// 105: fee round(5.25)=5, tax round(8.4)=8, total round(118.65)=119.
	// Subtotal+fee+tax is 118, one unit below the stored total.
	fee, tax, total = services.Pricing(105)
	assert.Equal(t, 5, fee)
	assert.Equal(t, 8, tax)
	assert.Equal(t, 119, total)
	assert.NotEqual(t, 105+fee+tax, total)
}

func TestPricing_ZeroSubtotal(t *testing.T) {
	fee, tax, total := services.Pricing(0)
	assert.Zero(t, fee)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestCheckout_EmptyCartRejectedBeforePayment(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Submit(context.Background(), "u1", testForm())

	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Zero(t, f.payments.callCount(), "payment must not run for an empty cart")

	status, _ := f.svc.Status("u1")
	assert.Equal(t, services.CheckoutAwaitingInput, status)
}

func TestCheckout_SuccessfulFlow(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))

	order, err := f.svc.Submit(ctx, "u1", testForm())

	assert.NoError(t, err)
	assert.Equal(t, 200, order.Subtotal)
	assert.Equal(t, 10, order.ServiceFee)
	assert.Equal(t, 16, order.Tax)
	assert.Equal(t, 226, order.Total)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "NH-"))
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Only the masked card survives into the persisted record.
	assert.Equal(t, "1234", order.CustomerInfo.CardLast4)

	f.orders.mu.Lock()
	assert.Len(t, f.orders.orders, 1)
	f.orders.mu.Unlock()

	snap := f.carts.Snapshot(ctx, "u1")
	assert.Empty(t, snap.Items, "cart is cleared after a successful checkout")

	status, orderNo := f.svc.Status("u1")
	assert.Equal(t, services.CheckoutCompleted, status)
	assert.Equal(t, order.OrderNumber, orderNo)

	assert.Eventually(t, func() bool { return f.publisher.publishedCount() == 1 },
		time.Second, 10*time.Millisecond, "order event published after checkout")
}

func TestCheckout_DuplicateSubmitBlockedWhileProcessing(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))

	f.payments.block = make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, "u1", testForm())
		firstDone <- err
	}()

	assert.Eventually(t, func() bool {
		status, _ := f.svc.Status("u1")
		return status == services.CheckoutProcessing
	}, time.Second, 10*time.Millisecond)

	_, err := f.svc.Submit(ctx, "u1", testForm())
	assert.ErrorIs(t, err, apperrors.ErrCheckoutInProgress)

	close(f.payments.block)
	assert.NoError(t, <-firstDone)
	assert.Equal(t, 1, f.payments.callCount())
}

func TestCheckout_PaymentFailureReturnsToAwaitingInput(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	f.payments.err = errors.New("card declined")

	_, err := f.svc.Submit(ctx, "u1", testForm())

	assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)

	status, _ := f.svc.Status("u1")
	assert.Equal(t, services.CheckoutAwaitingInput, status)

	snap := f.carts.Snapshot(ctx, "u1")
	assert.Len(t, snap.Items, 1, "failed payment leaves the cart untouched")
	assert.Zero(t, f.publisher.publishedCount())
}

func TestCheckout_OrderPersistFailureReturnsToAwaitingInput(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	f.orders.createErr = errors.New("store down")

	_, err := f.svc.Submit(ctx, "u1", testForm())

	assert.ErrorIs(t, err, apperrors.ErrOrderNotSaved)

	status, _ := f.svc.Status("u1")
	assert.Equal(t, services.CheckoutAwaitingInput, status)

	snap := f.carts.Snapshot(ctx, "u1")
	assert.Len(t, snap.Items, 1, "cart is only cleared once the order is saved")
}

func TestCheckout_RetryAfterFailureSucceeds(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	f.payments.err = errors.New("card declined")

	_, err := f.svc.Submit(ctx, "u1", testForm())
	assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)

	f.payments.mu.Lock()
	f.payments.err = nil
	f.payments.mu.Unlock()

	order, err := f.svc.Submit(ctx, "u1", testForm())
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCheckout_CompletedFlowResetsOnNextSubmission(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	first, err := f.svc.Submit(ctx, "u1", testForm())
	assert.NoError(t, err)

	status, orderNo := f.svc.Status("u1")
	assert.Equal(t, services.CheckoutCompleted, status)
	assert.Equal(t, first.OrderNumber, orderNo)

	// The cart is empty after completion, so the next submission fails, but
	// it must run from AwaitingInput rather than be short-circuited by the
	// finished flow.
	_, err = f.svc.Submit(ctx, "u1", testForm())
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)

	status, orderNo = f.svc.Status("u1")
	assert.Equal(t, services.CheckoutAwaitingInput, status)
	assert.Empty(t, orderNo)

	f.carts.AddItem(ctx, "u1", testItem("b", "B", 200))
	second, err := f.svc.Submit(ctx, "u1", testForm())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCheckout_OrdersListsOwnUserOnly(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.carts.AddItem(ctx, "u1", testItem("a", "A", 100))
	f.carts.AddItem(ctx, "u2", testItem("b", "B", 200))
	f.svc.Submit(ctx, "u1", testForm())
	f.svc.Submit(ctx, "u2", testForm())

	orders, err := f.svc.Orders(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 100, orders[0].Subtotal)
}
