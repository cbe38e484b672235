// Package engine implements the client-side application state engine: the
// single owner of the activity catalog, the user's session, the interest set,
// and the discovery cursor. Every screen reads and mutates this model through
// the operations defined here.
package engine

import (
	"context"
	"log"
	"slices"
	"sort"
	"sync"
	"time"

	"example.com/leggo/internal/domain"
	"example.com/leggo/internal/observability"
	"example.com/leggo/internal/persistence"
)

// Authenticator is the mock credential exchange consumed by the engine.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.UserSession, error)
	Signup(ctx context.Context, email, password string) (*domain.UserSession, error)
}

// State is the merged, observable application state. Observers receive an
// isolated copy after each committed operation; mutating it has no effect on
// the engine.
type State struct {
	IsAuthenticated bool
	Token           string
	CurrentUser     *domain.UserSession
	IsLoadingAuth   bool

	// Activities is the full catalog, newest first.
	Activities []domain.Activity
	// InterestedIDs preserves the order activities were marked, for the
	// planned list.
	InterestedIDs []string
	// Cursor is the zero-based offset into the current discoverable list.
	Cursor int
}

func (s State) clone() State {
	out := s
	out.Activities = slices.Clone(s.Activities)
	out.InterestedIDs = slices.Clone(s.InterestedIDs)
	if s.CurrentUser != nil {
		user := *s.CurrentUser
		out.CurrentUser = &user
	}
	return out
}

// Engine composes the auth, catalog, interest, and discovery slices behind a
// single lock. All mutation flows through commit, which notifies subscribers
// exactly once per logical operation.
type Engine struct {
	store  persistence.Store
	auth   Authenticator
	logger *log.Logger

	createDelay time.Duration
	sleep       func(context.Context, time.Duration)

	mu      sync.Mutex
	state   State
	deck    []string // ordered ids of the current discoverable list
	subs    map[int]func(State)
	nextSub int
}

// Option configures optional behaviour for the Engine.
type Option func(*Engine)

// WithLogger overrides the logger used to report recovery and notify issues.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCreateLatency sets the simulated round-trip delay applied before an
// activity create commits.
func WithCreateLatency(d time.Duration) Option {
	return func(e *Engine) {
		e.createDelay = d
	}
}

// WithSleep overrides the delay function, letting tests run synchronously.
func WithSleep(sleep func(context.Context, time.Duration)) Option {
	return func(e *Engine) {
		e.sleep = sleep
	}
}

// New constructs an Engine. The auth loading flag starts true so the UI shows
// a loading tree until RecoverSession completes.
func New(store persistence.Store, auth Authenticator, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		auth:   auth,
		logger: log.New(log.Writer(), "[engine] ", log.LstdFlags),
		sleep:  defaultSleep,
		state:  State{IsLoadingAuth: true},
		subs:   make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Subscribe registers an observer called synchronously after each commit with
// a snapshot of the new state. The returned func unregisters it.
func (e *Engine) Subscribe(fn func(State)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Snapshot returns an isolated copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// commit applies mutate under the lock. If mutate reports a change, the
// discoverable list is recomputed, the cursor reset when its sequence
// changed, and every subscriber notified once with the new snapshot.
func (e *Engine) commit(mutate func(*State) bool) {
	e.mu.Lock()
	if !mutate(&e.state) {
		e.mu.Unlock()
		return
	}

	deck := discoverableIDs(e.state)
	if !slices.Equal(deck, e.deck) {
		// The swipe widget is re-seeded with a fresh slice whenever the
		// list's identity changes; it cannot resume mid-deck.
		e.deck = deck
		e.state.Cursor = 0
	}
	observability.SetDiscoverableRemaining(remaining(e.state, e.deck))

	snap := e.state.clone()
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]func(State), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, e.subs[id])
	}
	e.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func discoverableIDs(s State) []string {
	interested := make(map[string]struct{}, len(s.InterestedIDs))
	for _, id := range s.InterestedIDs {
		interested[id] = struct{}{}
	}
	ids := make([]string, 0, len(s.Activities))
	for _, act := range s.Activities {
		if _, ok := interested[act.ID]; !ok {
			ids = append(ids, act.ID)
		}
	}
	return ids
}

func discoverableOf(s State) []domain.Activity {
	interested := make(map[string]struct{}, len(s.InterestedIDs))
	for _, id := range s.InterestedIDs {
		interested[id] = struct{}{}
	}
	list := make([]domain.Activity, 0, len(s.Activities))
	for _, act := range s.Activities {
		if _, ok := interested[act.ID]; !ok {
			list = append(list, act)
		}
	}
	return list
}

func remaining(s State, deck []string) int {
	n := len(deck) - s.Cursor
	if n < 0 {
		return 0
	}
	return n
}
