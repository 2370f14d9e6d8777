// Package cart holds the client-side cart state and the operations around
// it. The model is deliberately non-optimistic: every mutation is followed
// by a full re-fetch of the server's cart, and the store only ever holds the
// last snapshot the server returned.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
	"github.com/Tahancr42/parastore-frontend/internal/notify"
)

// RemoteCart is the typed boundary to the cart resource. Single attempt per
// call; errors come back opaque and untouched.
type RemoteCart interface {
	FetchCart(ctx context.Context, userID string) ([]domain.LineItem, error)
	AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.LineItem, error)
	SetQuantity(ctx context.Context, itemID int64, userID string, quantity int) (*domain.LineItem, error)
	RemoveItem(ctx context.Context, itemID int64, userID string) error
	Clear(ctx context.Context, userID string) error
}

// IdentitySource reports who the cart belongs to right now, nil when nobody
// is logged in.
type IdentitySource interface {
	Current() *domain.Identity
}

// Store holds the authoritative-from-server line items for the current
// identity. Only Load/Reload write items; everything else reads. Overlapping
// loads are allowed and resolve last-resolved-wins: each response already
// carries the full authoritative cart, so whichever lands last is at least
// as fresh as its request was.
type Store struct {
	remote   RemoteCart
	identity IdentitySource
	notify   notify.Notifier

	loadTimeout time.Duration

	mu       sync.RWMutex
	items    []domain.LineItem
	inflight int
}

func NewStore(remote RemoteCart, identity IdentitySource, notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Store{
		remote:      remote,
		identity:    identity,
		notify:      notifier,
		loadTimeout: 30 * time.Second,
	}
}

// Load replaces the store's state with a fresh server snapshot for the
// current identity. Anonymous sessions get an empty cart without a network
// call. A failed fetch empties the cart rather than leaving stale rows, and
// is surfaced as a notification, never as an error.
func (s *Store) Load(ctx context.Context) {
	id := s.identity.Current()
	if id == nil {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return
	}
	userID := id.UserID

	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()

	items, err := s.remote.FetchCart(ctx, userID)

	s.mu.Lock()
	s.inflight--
	// The session may have moved on while this fetch was in flight; a
	// response for a previous identity must never be applied.
	current := s.identity.Current()
	if current == nil || current.UserID != userID {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.items = nil
		s.mu.Unlock()
		s.notify.Error("Erreur lors du chargement du panier")
		return
	}
	s.items = items
	s.mu.Unlock()
}

// Reload is the single mutation-completion hook: every successful facade
// operation calls it exactly once.
func (s *Store) Reload(ctx context.Context) {
	s.Load(ctx)
}

// HandleIdentityChange is wired to session.Manager.OnChange. Prior state is
// discarded immediately; when somebody is logged in a fresh load follows.
func (s *Store) HandleIdentityChange(identity *domain.Identity) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	if identity == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
	defer cancel()
	s.Load(ctx)
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the sum of quantities across the cart.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums the server-computed line totals. Line totals are never
// recomputed from unit price and quantity on this side of the wire.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, item := range s.items {
		total += item.LineTotal
	}
	return total
}

// ContainsProduct reports whether the cart holds a line for productID.
func (s *Store) ContainsProduct(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// QuantityOf returns the quantity of productID in the cart, 0 when absent.
func (s *Store) QuantityOf(productID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Loading reports whether at least one load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}
