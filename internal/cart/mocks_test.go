package cart

import (
	"context"
	"sync"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

// fakeRemote implements RemoteCart and counts every network call per
// operation so tests can assert "zero network calls" preconditions.
type fakeRemote struct {
	mu sync.Mutex

	fetchFunc func(ctx context.Context, userID string) ([]domain.LineItem, error)
	addErr    error
	setErr    error
	removeErr error
	clearErr  error

	calls map[string]int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{calls: make(map[string]int)}
}

func (f *fakeRemote) count(op string) {
	f.mu.Lock()
	f.calls[op]++
	f.mu.Unlock()
}

func (f *fakeRemote) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRemote) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeRemote) FetchCart(ctx context.Context, userID string) ([]domain.LineItem, error) {
	f.count("fetch")
	f.mu.Lock()
	fn := f.fetchFunc
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, userID)
}

func (f *fakeRemote) AddItem(context.Context, string, int64, int) (*domain.LineItem, error) {
	f.count("add")
	return &domain.LineItem{}, f.addErr
}

func (f *fakeRemote) SetQuantity(context.Context, int64, string, int) (*domain.LineItem, error) {
	f.count("set")
	return &domain.LineItem{}, f.setErr
}

func (f *fakeRemote) RemoveItem(context.Context, int64, string) error {
	f.count("remove")
	return f.removeErr
}

func (f *fakeRemote) Clear(context.Context, string) error {
	f.count("clear")
	return f.clearErr
}

type fakeIdentity struct {
	mu sync.Mutex
	id *domain.Identity
}

func (f *fakeIdentity) Current() *domain.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *fakeIdentity) set(id *domain.Identity) {
	f.mu.Lock()
	f.id = id
	f.mu.Unlock()
}

func loggedIn(userID string) *fakeIdentity {
	return &fakeIdentity{id: &domain.Identity{UserID: userID, Role: domain.RoleClient}}
}

// spyNotifier records notifications for assertions.
type spyNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	infos     []string
}

func (s *spyNotifier) Success(msg string) {
	s.mu.Lock()
	s.successes = append(s.successes, msg)
	s.mu.Unlock()
}

func (s *spyNotifier) Error(msg string) {
	s.mu.Lock()
	s.errors = append(s.errors, msg)
	s.mu.Unlock()
}

func (s *spyNotifier) Info(msg string) {
	s.mu.Lock()
	s.infos = append(s.infos, msg)
	s.mu.Unlock()
}

func (s *spyNotifier) errorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors)
}

func (s *spyNotifier) successCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.successes)
}

// sampleItems mirrors the dev fixtures the web client shipped with.
func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{ID: 1, ProductID: 1, ProductName: "Vitamine C 1000mg - Immunité", UnitPrice: 120.00, Quantity: 2, LineTotal: 240.00, ImageURL: "/vitamine.jpg"},
		{ID: 2, ProductID: 2, ProductName: "Oméga-3 1000mg - Santé cardiovasculaire", UnitPrice: 180.00, Quantity: 1, LineTotal: 180.00, ImageURL: "/oenobiol.jpg"},
		{ID: 3, ProductID: 3, ProductName: "Magnésium 400mg - Relaxation musculaire", UnitPrice: 95.00, Quantity: 3, LineTotal: 285.00, ImageURL: "/zohi_sommeil.jpg"},
	}
}
