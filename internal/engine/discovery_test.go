package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwipeRightShrinksDeckAndResetsCursor(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	deck := e.Deck()
	require.Len(t, deck, 3)
	require.Equal(t, 0, e.Cursor())

	e.RecordSwipe(SwipeRight, deck[0]) // like A

	require.Equal(t, []string{"A"}, e.Snapshot().InterestedIDs)
	got := e.Discoverable()
	require.Len(t, got, 2)
	require.Equal(t, "B", got[0].ID)
	require.Equal(t, "C", got[1].ID)
	require.Equal(t, 0, e.Cursor(), "cursor resets when the list shrinks")
}

func TestSwipeLeftAdvancesCursorWithoutMutation(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	deck := e.Deck()
	e.RecordSwipe(SwipeLeft, deck[0]) // pass on A

	require.Empty(t, e.Snapshot().InterestedIDs)
	require.Equal(t, 1, e.Cursor())
	require.Len(t, e.Discoverable(), 3, "passing keeps the list intact")

	remaining := e.Deck()
	require.Len(t, remaining, 2)
	require.Equal(t, "B", remaining[0].ID)
}

func TestEachLikeRestartsFromTopOfShrunkDeck(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	// Like whatever is on top until the deck runs out; the interest mutation
	// alone drives the shrinkage, never a cursor increment.
	for i := 0; i < 3; i++ {
		require.False(t, e.Exhausted())
		require.Equal(t, 0, e.Cursor())
		e.RecordSwipe(SwipeRight, e.Deck()[0])
	}

	require.True(t, e.Exhausted())
	require.Equal(t, []string{"A", "B", "C"}, e.Snapshot().InterestedIDs)
}

func TestExhaustionByPassingEveryCard(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	for i := 0; i < 3; i++ {
		require.False(t, e.Exhausted())
		e.RecordSwipe(SwipeLeft, e.Deck()[0])
	}

	require.True(t, e.Exhausted())
	require.Equal(t, 3, e.Cursor())
	require.Empty(t, e.Deck())

	// Passing with nothing left is a no-op; the cursor never exceeds the
	// list length.
	e.RecordSwipe(SwipeLeft, activity("A", "Alpha"))
	require.Equal(t, 3, e.Cursor())
}

func TestCursorResetsWhenCatalogMutationChangesList(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	e.RecordSwipe(SwipeLeft, e.Deck()[0])
	e.RecordSwipe(SwipeLeft, e.Deck()[0])
	require.Equal(t, 2, e.Cursor())

	e.RemoveActivity("C")
	require.Equal(t, 0, e.Cursor(), "list identity changed, widget is re-seeded")

	e.RecordSwipe(SwipeLeft, e.Deck()[0])
	require.Equal(t, 1, e.Cursor())

	e.UnmarkInterested("absent") // no-op must not reset
	require.Equal(t, 1, e.Cursor())
}

func TestUnmarkReturnsActivityToDiscoverable(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	e.RecordSwipe(SwipeRight, e.Deck()[0]) // like A
	e.RecordSwipe(SwipeLeft, e.Deck()[0])  // pass B
	require.Equal(t, 1, e.Cursor())

	e.UnmarkInterested("A")

	got := e.Discoverable()
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].ID)
	require.Equal(t, 0, e.Cursor(), "list grew back, cursor resets")
}

func TestEmptyCatalogIsExhausted(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	require.True(t, e.Exhausted())
	require.Empty(t, e.Deck())
}

func TestUnknownSwipeDirectionIgnored(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	seedABC(e)

	e.RecordSwipe(SwipeDirection("up"), e.Deck()[0])

	require.Equal(t, 0, e.Cursor())
	require.Empty(t, e.Snapshot().InterestedIDs)
}
