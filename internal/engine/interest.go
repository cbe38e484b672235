package engine

import (
	"slices"

	"example.com/leggo/internal/domain"
)

// MarkInterested adds an activity id to the interest set. Marking an id that
// is already present changes nothing: no duplicate, no reordering, no
// notification.
func (e *Engine) MarkInterested(id string) {
	e.commit(func(s *State) bool {
		if slices.Contains(s.InterestedIDs, id) {
			return false
		}
		s.InterestedIDs = append(s.InterestedIDs, id)
		return true
	})
}

// UnmarkInterested removes an activity id from the interest set. Unmarking an
// absent id is a silent no-op.
func (e *Engine) UnmarkInterested(id string) {
	e.commit(func(s *State) bool {
		i := slices.Index(s.InterestedIDs, id)
		if i < 0 {
			return false
		}
		s.InterestedIDs = append(s.InterestedIDs[:i:i], s.InterestedIDs[i+1:]...)
		return true
	})
}

// Planned resolves the interest set to activities in mark order. Ids whose
// activity has since left the catalog are skipped rather than treated as an
// error.
func (e *Engine) Planned() []domain.Activity {
	e.mu.Lock()
	defer e.mu.Unlock()

	byID := make(map[string]domain.Activity, len(e.state.Activities))
	for _, act := range e.state.Activities {
		byID[act.ID] = act
	}
	planned := make([]domain.Activity, 0, len(e.state.InterestedIDs))
	for _, id := range e.state.InterestedIDs {
		if act, ok := byID[id]; ok {
			planned = append(planned, act)
		}
	}
	return planned
}
