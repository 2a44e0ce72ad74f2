package cart

import (
	"context"
	"fmt"
	"sync"

	"dapuribu-be/internal/utils"
)

// Persister writes the full line list on every mutation so a cart
// survives reloads and new sessions on the same identity.
type Persister interface {
	Save(ctx context.Context, key string, lines []Line) error
	Load(ctx context.Context, key string) ([]Line, error)
	Delete(ctx context.Context, key string) error
}

// Store holds one customer's in-progress selection. It is an explicit,
// injectable container: callers construct one per cart key with the
// persister they want, which keeps tests isolated per instance.
type Store struct {
	mu    sync.Mutex
	key   string
	lines []Line
	p     Persister
}

// NewStore returns an empty store for the given key.
func NewStore(key string, p Persister) *Store {
	return &Store{key: key, p: p}
}

// LoadStore rehydrates a store from persisted state. A key that was
// never saved yields an empty cart.
func LoadStore(ctx context.Context, key string, p Persister) (*Store, error) {
	lines, err := p.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &Store{key: key, lines: lines, p: p}, nil
}

// KeyFromContext derives the cart identity: the authenticated user wins,
// anonymous visitors fall back to their device id.
func KeyFromContext(ctx context.Context) (string, error) {
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		return fmt.Sprintf("user:%d", userID), nil
	}
	if deviceID := utils.GetDeviceIDFromContext(ctx); deviceID != "" {
		return "device:" + deviceID, nil
	}
	return "", ErrNoCartKey
}

// AddItem inserts a new line with quantity 1, or bumps the quantity of
// the existing line for the same menu id. It always succeeds against
// the in-memory state; only persistence can fail.
func (s *Store) AddItem(ctx context.Context, item ItemSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuID == item.MenuID {
			s.lines[i].Quantity++
			return s.persist(ctx)
		}
	}

	s.lines = append(s.lines, Line{
		MenuID:   item.MenuID,
		Name:     item.Name,
		Price:    item.Price,
		ImageURL: item.ImageURL,
		Quantity: 1,
	})
	return s.persist(ctx)
}

// UpdateQuantity sets the line's quantity; any value <= 0 removes the
// line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, menuID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuID == menuID {
			if quantity <= 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = quantity
			}
			return s.persist(ctx)
		}
	}
	return nil
}

// RemoveItem deletes the line for the id; no-op when absent.
func (s *Store) RemoveItem(ctx context.Context, menuID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuID == menuID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart. Used after a successful checkout.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.p.Delete(ctx, s.key)
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities, not the line count.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the undiscounted sum of price x quantity. No tax or
// admin fee applies.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// persist is called with the lock held.
func (s *Store) persist(ctx context.Context) error {
	return s.p.Save(ctx, s.key, s.lines)
}
