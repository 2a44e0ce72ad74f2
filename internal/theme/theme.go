package theme

import (
	"context"
	"sync"
)

// Mode is the display preference. Only two values exist.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

func ValidMode(m Mode) bool {
	return m == Light || m == Dark
}

// Persister stores one mode string per identity key.
type Persister interface {
	Save(ctx context.Context, key string, mode Mode) error
	Load(ctx context.Context, key string) (Mode, error)
}

// Store holds the preference for one identity and notifies subscribers
// on every change. State transitions are pure; side effects such as
// setting cookies belong to the subscribers.
type Store struct {
	mu   sync.Mutex
	key  string
	mode Mode
	p    Persister
	subs []func(Mode)
}

// NewStore starts at light mode, the default for first-time visitors.
func NewStore(key string, p Persister) *Store {
	return &Store{key: key, mode: Light, p: p}
}

// LoadStore rehydrates the preference; a never-saved key yields light.
func LoadStore(ctx context.Context, key string, p Persister) (*Store, error) {
	mode, err := p.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ValidMode(mode) {
		mode = Light
	}
	return &Store{key: key, mode: mode, p: p}, nil
}

// Subscribe registers a callback fired on every successful Set or
// Toggle, and fires it immediately with the current mode so late
// subscribers converge on the persisted state.
func (s *Store) Subscribe(fn func(Mode)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	mode := s.mode
	s.mu.Unlock()

	fn(mode)
}

// Mode returns the current preference.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Set applies an explicit mode. Invalid values are ignored.
func (s *Store) Set(ctx context.Context, mode Mode) error {
	if !ValidMode(mode) {
		return ErrInvalidMode
	}

	s.mu.Lock()
	s.mode = mode
	subs := make([]func(Mode), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}
	return s.p.Save(ctx, s.key, mode)
}

// Toggle flips between light and dark.
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	s.mu.Lock()
	next := Light
	if s.mode == Light {
		next = Dark
	}
	s.mu.Unlock()

	return next, s.Set(ctx, next)
}
