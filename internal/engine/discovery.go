package engine

import (
	"example.com/leggo/internal/domain"
	"example.com/leggo/internal/observability"
)

// SwipeDirection labels a discrete swipe event from the card-stack widget.
type SwipeDirection string

const (
	// SwipeLeft passes on a card without deciding anything about it.
	SwipeLeft SwipeDirection = "pass"
	// SwipeRight marks the card's activity as interested.
	SwipeRight SwipeDirection = "like"
)

// Discoverable returns the catalog filtered by "not yet interested", in
// catalog order.
func (e *Engine) Discoverable() []domain.Activity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return discoverableOf(e.state)
}

// Deck returns the slice handed to the card-stack widget: the discoverable
// list from the cursor onward.
func (e *Engine) Deck() []domain.Activity {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := discoverableOf(e.state)
	if e.state.Cursor >= len(list) {
		return nil
	}
	return list[e.state.Cursor:]
}

// Cursor returns the zero-based offset into the current discoverable list.
func (e *Engine) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Cursor
}

// Exhausted reports whether there is nothing left to discover. It is derived,
// never stored.
func (e *Engine) Exhausted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := discoverableOf(e.state)
	return len(list) == 0 || e.state.Cursor >= len(list)
}

// RecordSwipe applies one swipe event. A like moves the activity into the
// interest set, which shrinks the discoverable list and resets the cursor to
// zero on recomputation; the interest mutation alone drives the shrinkage. A
// pass advances the cursor by one and leaves the list untouched.
func (e *Engine) RecordSwipe(direction SwipeDirection, activity domain.Activity) {
	switch direction {
	case SwipeRight:
		e.MarkInterested(activity.ID)
	case SwipeLeft:
		e.commit(func(s *State) bool {
			if s.Cursor >= len(e.deck) {
				return false
			}
			s.Cursor++
			return true
		})
	default:
		return
	}
	observability.RecordSwipe(string(direction))
}
