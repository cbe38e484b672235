package engine

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"example.com/leggo/internal/domain"
	"example.com/leggo/internal/observability"
)

// LoadInitial replaces the catalog wholesale with the seed dataset. Calling
// it again replaces, never appends.
func (e *Engine) LoadInitial(seed []domain.Activity) {
	e.commit(func(s *State) bool {
		s.Activities = slices.Clone(seed)
		return true
	})
}

// CreateActivity validates the input, simulates a network round trip, and
// prepends the new record to the catalog. It fails with
// domain.ErrAuthRequired when no user is logged in and with a
// *domain.ValidationError naming the first bad field; neither failure mutates
// state.
func (e *Engine) CreateActivity(ctx context.Context, input domain.NewActivity) (domain.Activity, error) {
	e.mu.Lock()
	user := e.state.CurrentUser
	e.mu.Unlock()
	if user == nil {
		return domain.Activity{}, domain.ErrAuthRequired
	}
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	e.sleep(ctx, e.createDelay)

	activity := domain.Activity{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Location:    input.Location,
		DateTime:    input.DateTime,
		CreatorID:   user.UserID,
	}
	e.commit(func(s *State) bool {
		s.Activities = append([]domain.Activity{activity}, s.Activities...)
		return true
	})
	observability.RecordActivityCreated()
	return activity, nil
}

// RemoveActivity deletes the activity with the given id. Removing an absent
// id is a silent no-op. Interest entries pointing at the removed activity are
// left in place; the planned view skips them.
func (e *Engine) RemoveActivity(id string) {
	e.commit(func(s *State) bool {
		for i, act := range s.Activities {
			if act.ID == id {
				s.Activities = append(s.Activities[:i:i], s.Activities[i+1:]...)
				return true
			}
		}
		return false
	})
}

// FindActivity looks up a catalog entry by id, for the detail view.
func (e *Engine) FindActivity(id string) (domain.Activity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, act := range e.state.Activities {
		if act.ID == id {
			return act, true
		}
	}
	return domain.Activity{}, false
}
