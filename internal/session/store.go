package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pocketdiner/pocket-diner/internal/cart"
	"github.com/pocketdiner/pocket-diner/internal/checkout"
)

// State is everything one guest session owns: a cart ledger and the current
// checkout form instance.
type State struct {
	ID       uuid.UUID
	Cart     *cart.Ledger
	Checkout *checkout.Checkout
}

// ResetCheckout starts a fresh form instance with defaults. Called after a
// successful submission: the submitted instance is terminal.
func (st *State) ResetCheckout() {
	st.Checkout = checkout.New()
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// Store keeps live sessions in memory. Nothing survives the process: carts
// and forms are ephemeral by design.
type Store struct {
	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	sessions map[uuid.UUID]*entry
	newCart  func() *cart.Ledger
	onCreate func(*State)
}

func NewStore(secret []byte, ttl time.Duration, newCart func() *cart.Ledger) *Store {
	return &Store{
		secret:   secret,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*entry),
		newCart:  newCart,
	}
}

// OnCreate registers a hook invoked for every new session, before it is
// served. Used to attach event subscribers to the fresh ledger.
func (s *Store) OnCreate(fn func(*State)) {
	s.mu.Lock()
	s.onCreate = fn
	s.mu.Unlock()
}

// Create makes a new session with the demo cart seed and a default form,
// returning its signed token.
func (s *Store) Create() (*State, string, error) {
	st := &State{
		ID:       uuid.New(),
		Cart:     s.newCart(),
		Checkout: checkout.New(),
	}

	token, err := issueToken(s.secret, st.ID, s.ttl)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.sessions[st.ID] = &entry{state: st, lastSeen: time.Now().UTC()}
	hook := s.onCreate
	s.mu.Unlock()

	if hook != nil {
		hook(st)
	}
	return st, token, nil
}

// Resolve returns the live session for a token, if the token verifies and
// the session has not been evicted.
func (s *Store) Resolve(token string) (*State, bool) {
	id, err := sessionIDFromToken(token, s.secret)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now().UTC()
	return e.state, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle longer than the ttl and reports how many were
// dropped.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartJanitor sweeps on a tick until the context is cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				s.Sweep(now)
			}
		}
	}()
}
