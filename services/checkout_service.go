package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

type CheckoutStatus string

const (
	CheckoutAwaitingInput CheckoutStatus = "awaiting_input"
	CheckoutProcessing    CheckoutStatus = "processing"
	CheckoutCompleted     CheckoutStatus = "completed"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// PaymentProcessor charges the given amount. The production implementation is
// a fixed-latency simulation; see SimulatedProcessor.
type PaymentProcessor interface {
	Process(ctx context.Context, form models.CheckoutForm, amount int) error
}

// OrderPublisher emits order events after checkout; publishing is best-effort.
type OrderPublisher interface {
	PublishOrderConfirmed(ctx context.Context, order *models.Order) error
}

// Pricing applies the checkout fee schedule. The three amounts are rounded
// independently, so fee+tax can differ from total-subtotal by a unit; the
// discrepancy is kept for compatibility with persisted orders.
func Pricing(subtotal int) (serviceFee, tax, total int) {
	serviceFee = int(math.Round(float64(subtotal) * 0.05))
	tax = int(math.Round(float64(subtotal) * 0.08))
	total = int(math.Round(float64(subtotal) * 1.13))
	return serviceFee, tax, total
}

// CheckoutService runs one checkout flow per user:
// AwaitingInput -> Processing -> {Completed, AwaitingInput}. Processing blocks
// further submissions; a duplicate submission would create duplicate orders.
type CheckoutService struct {
	carts     *CartService
	orders    OrderStore
	payments  PaymentProcessor
	publisher OrderPublisher

	mu    sync.Mutex
	flows map[string]*checkoutFlow
}

type checkoutFlow struct {
	mu          sync.Mutex
	status      CheckoutStatus
	lastOrderNo string
}

func NewCheckoutService(carts *CartService, orders OrderStore, payments PaymentProcessor, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		payments:  payments,
		publisher: publisher,
		flows:     make(map[string]*checkoutFlow),
	}
}

func (s *CheckoutService) flow(userID string) *checkoutFlow {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[userID]
	if !ok {
		f = &checkoutFlow{status: CheckoutAwaitingInput}
		s.flows[userID] = f
	}
	return f
}

// Status reports the flow state and, once completed, the last order number.
func (s *CheckoutService) Status(userID string) (CheckoutStatus, string) {
	f := s.flow(userID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.lastOrderNo
}

// Submit runs a checkout attempt for the user's current cart snapshot.
// Rejected while another attempt is Processing, and on an empty cart before
// any payment call. A Completed flow is reset to AwaitingInput as the next
// submission begins, so each attempt runs from AwaitingInput. On success the order is persisted, the cart cleared, an
// order event published best-effort, and the flow marked Completed. On payment
// or persistence failure the flow returns to AwaitingInput with the cart
// untouched.
func (s *CheckoutService) Submit(ctx context.Context, userID string, form models.CheckoutForm) (*models.Order, error) {
	f := s.flow(userID)

	f.mu.Lock()
	if f.status == CheckoutProcessing {
		f.mu.Unlock()
		return nil, apperrors.ErrCheckoutInProgress
	}
	// A completed flow is finished; a new submission starts a fresh one.
	if f.status == CheckoutCompleted {
		f.status = CheckoutAwaitingInput
		f.lastOrderNo = ""
	}

	snapshot := s.carts.Snapshot(ctx, userID)
	if len(snapshot.Items) == 0 {
		f.mu.Unlock()
		return nil, apperrors.ErrEmptyCart
	}
	f.status = CheckoutProcessing
	f.mu.Unlock()

	fail := func(err *apperrors.Error) (*models.Order, error) {
		f.mu.Lock()
		f.status = CheckoutAwaitingInput
		f.mu.Unlock()
		return nil, err
	}

	serviceFee, tax, total := Pricing(snapshot.Total)

	if err := s.payments.Process(ctx, form, total); err != nil {
		zap.L().Warn("payment failed", zap.String("user_id", userID), zap.Error(err))
		return fail(apperrors.Wrap(apperrors.ErrPaymentFailed, err))
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("NH-%d", now.UnixMilli()),
		UserID:      userID,
		Items:       snapshot.Items,
		Subtotal:    snapshot.Total,
		ServiceFee:  serviceFee,
		Tax:         tax,
		Total:       total,
		CustomerInfo: models.CustomerInfo{
			Email:      form.Email,
			FirstName:  form.FirstName,
			LastName:   form.LastName,
			Address:    form.Address,
			City:       form.City,
			State:      form.State,
			ZipCode:    form.ZipCode,
			CardLast4:  lastFour(form.CardNumber),
			NameOnCard: form.NameOnCard,
		},
		Status:    models.OrderStatusConfirmed,
		CreatedAt: now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		zap.L().Error("failed to persist order", zap.String("user_id", userID), zap.Error(err))
		return fail(apperrors.Wrap(apperrors.ErrOrderNotSaved, err))
	}

	s.carts.ClearCart(ctx, userID)

	if s.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.publisher.PublishOrderConfirmed(pubCtx, order); err != nil {
				zap.L().Warn("failed to publish order event",
					zap.String("order_number", order.OrderNumber), zap.Error(err))
			}
		}()
	}

	f.mu.Lock()
	f.status = CheckoutCompleted
	f.lastOrderNo = order.OrderNumber
	f.mu.Unlock()

	return order, nil
}

// Orders lists the user's order history, newest first.
func (s *CheckoutService) Orders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

func lastFour(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
