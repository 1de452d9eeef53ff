package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// CartStore is the persistence boundary for per-user cart documents.
// Get returns (nil, nil) when no document exists.
type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// CartSnapshot is the full derived cart state returned from every operation.
// Total and ItemCount are recomputed from the item slice on every mutation,
// never patched incrementally.
type CartSnapshot struct {
	Items      []models.CartItem  `json:"items"`
	SavedItems []models.SavedItem `json:"saved_items"`
	Total      int                `json:"total"`
	ItemCount  int                `json:"item_count"`
}

// CartService owns the in-memory cart state machine for every active user.
// State is loaded from the store on first access and is the single source of
// truth afterwards; each mutation is mirrored to the store asynchronously,
// last write wins. Store failures are logged and swallowed, never retried.
type CartService struct {
	store        CartStore
	storeTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	mu     sync.Mutex
	loaded bool
	items  []models.CartItem
	saved  []models.SavedItem
}

func NewCartService(store CartStore, storeTimeout time.Duration) *CartService {
	return &CartService{
		store:        store,
		storeTimeout: storeTimeout,
		sessions:     make(map[string]*cartSession),
	}
}

func (s *CartService) session(userID string) *cartSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &cartSession{}
		s.sessions[userID] = sess
	}
	return sess
}

// ensureLoaded performs the session-start sync from the persisted document.
// A failed load is logged and the cart starts empty; it is not retried, so a
// divergent store state stays until the next successful save.
func (s *CartService) ensureLoaded(ctx context.Context, userID string, sess *cartSession) {
	if sess.loaded {
		return
	}
	sess.loaded = true

	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if cart == nil {
		return
	}
	sess.items = append(sess.items[:0], cart.Items...)
	sess.saved = append(sess.saved[:0], cart.SavedItems...)
}

// persist mirrors the current state to the store without blocking the caller.
func (s *CartService) persist(userID string, items []models.CartItem, saved []models.SavedItem) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
		defer cancel()

		cart := &models.Cart{UserID: userID, Items: items, SavedItems: saved}
		if err := s.store.Save(ctx, cart); err != nil {
			zap.L().Error("failed to save cart", zap.String("user_id", userID), zap.Error(err))
		}
	}()
}

func computeTotals(items []models.CartItem) (total, itemCount int) {
	for _, item := range items {
		total += item.Price * item.Quantity
		itemCount += item.Quantity
	}
	return total, itemCount
}

// snapshot copies the session state so callers never alias internal slices.
func (sess *cartSession) snapshot() CartSnapshot {
	items := make([]models.CartItem, len(sess.items))
	copy(items, sess.items)
	saved := make([]models.SavedItem, len(sess.saved))
	copy(saved, sess.saved)

	total, itemCount := computeTotals(items)
	return CartSnapshot{Items: items, SavedItems: saved, Total: total, ItemCount: itemCount}
}

// Snapshot returns the current cart state, loading it on first access.
func (s *CartService) Snapshot(ctx context.Context, userID string) CartSnapshot {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.ensureLoaded(ctx, userID, sess)
	return sess.snapshot()
}

// AddItem adds item with quantity 1, or bumps the quantity when a line with
// the same ID already exists. The returned note names the item.
func (s *CartService) AddItem(ctx context.Context, userID string, item models.CartItem) (CartSnapshot, string) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	found := false
	for i := range sess.items {
		if sess.items[i].ID == item.ID {
			sess.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		sess.items = append(sess.items, item)
	}

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap, fmt.Sprintf("%s added to cart!", item.Name)
}

// RemoveItem deletes the line with the given ID; unknown IDs are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, id string) (CartSnapshot, string) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	kept := sess.items[:0]
	for _, item := range sess.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	sess.items = kept

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap, "Item removed from cart"
}

// UpdateQuantity sets the line's quantity to max(0, quantity) and drops the
// line entirely when it reaches zero. Silent: driven by stepper controls.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, id string, quantity int) CartSnapshot {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	if quantity < 0 {
		quantity = 0
	}

	kept := sess.items[:0]
	for _, item := range sess.items {
		if item.ID == id {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	sess.items = kept

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap
}

// SaveForLater bookmarks an item; re-saving an already-saved ID is a no-op
// and emits no note.
func (s *CartService) SaveForLater(ctx context.Context, userID string, item models.SavedItem) (CartSnapshot, string) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	for _, existing := range sess.saved {
		if existing.ID == item.ID {
			return sess.snapshot(), ""
		}
	}
	if item.SavedAt.IsZero() {
		item.SavedAt = time.Now().UTC()
	}
	sess.saved = append(sess.saved, item)

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap, fmt.Sprintf("%s saved for later!", item.Name)
}

// RemoveSaved deletes a bookmark if present.
func (s *CartService) RemoveSaved(ctx context.Context, userID, id string) (CartSnapshot, string) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	kept := sess.saved[:0]
	for _, item := range sess.saved {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	sess.saved = kept

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap, "Removed from saved items"
}

// ClearCart empties the line items and zeroes the totals. Saved items are
// untouched.
func (s *CartService) ClearCart(ctx context.Context, userID string) (CartSnapshot, string) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.ensureLoaded(ctx, userID, sess)

	sess.items = nil

	snap := sess.snapshot()
	s.persist(userID, snap.Items, snap.SavedItems)
	return snap, "Cart cleared"
}

// LoadCart wholesale-replaces the in-memory state, bypassing the store read.
// Used when an already-fetched document should become the session state.
func (s *CartService) LoadCart(userID string, items []models.CartItem, saved []models.SavedItem) CartSnapshot {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.loaded = true
	sess.items = append([]models.CartItem(nil), items...)
	sess.saved = append([]models.SavedItem(nil), saved...)
	return sess.snapshot()
}

// EndSession drops the in-memory state so the next access reloads from the
// store. Called on logout.
func (s *CartService) EndSession(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
