package binpack2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Four rectangles that tile a 10x10 bin exactly under best_area scoring and
// an SAS split, with rotation and merging both disabled.
func TestGuillotineEngine_FullTiling(t *testing.T) {
	e := newGuillotineEngine(10, 10, BestArea, SAS, false, false)

	items := []*Item{
		NewItem(1, 4, 4),
		NewItem(2, 6, 4),
		NewItem(3, 4, 6),
		NewItem(4, 6, 6),
	}
	for _, it := range items {
		require.True(t, e.Insert(it), "item %d should fit", it.ID)
	}

	assertContained(t, items, 10, 10)
	assertNoOverlap(t, items)
	require.Equal(t, 100, e.UsedArea())
	require.Equal(t, 100, totalArea(items))
	require.Len(t, e.freeRects, 0, "a perfect tiling should leave no free rectangles")
}

func TestGuillotineEngine_RejectsOversizedItem(t *testing.T) {
	e := newGuillotineEngine(10, 10, BestArea, SAS, false, false)
	ok := e.Insert(NewItem(1, 11, 1))
	require.False(t, ok)
	require.Equal(t, 0, e.UsedArea())
}

func TestGuillotineEngine_RotationUnlocksFit(t *testing.T) {
	e := newGuillotineEngine(5, 10, BestArea, SAS, true, false)
	it := NewItem(1, 10, 5)
	require.True(t, e.Insert(it))
	require.True(t, it.Rotated)
	require.Equal(t, 5, it.Width)
	require.Equal(t, 10, it.Height)
}

func TestGuillotineMergeFreeListFusesAdjacentFreeSpace(t *testing.T) {
	e := newGuillotineEngine(10, 10, BestArea, SAS, false, true)
	// Placing and immediately removing coverage isn't possible through the
	// public API, so exercise the merge directly against a free list that
	// should collapse back into a single rectangle.
	e.freeRects = []FreeRectangle{
		{X: 0, Y: 0, Width: 10, Height: 4},
		{X: 0, Y: 4, Width: 10, Height: 6},
	}
	e.mergeFreeList()
	require.Len(t, e.freeRects, 1)
	require.Equal(t, FreeRectangle{X: 0, Y: 0, Width: 10, Height: 10}, e.freeRects[0])
}

func TestGuillotineFreeRectsStayDisjoint(t *testing.T) {
	e := newGuillotineEngine(20, 20, BestShortSide, LLAS, true, true)
	items := []*Item{
		NewItem(1, 7, 3),
		NewItem(2, 5, 5),
		NewItem(3, 9, 2),
		NewItem(4, 4, 8),
		NewItem(5, 6, 6),
	}
	for _, it := range items {
		e.Insert(it)
	}

	for i := 0; i < len(e.freeRects); i++ {
		for j := i + 1; j < len(e.freeRects); j++ {
			if intersectsRect(e.freeRects[i], e.freeRects[j]) {
				t.Errorf("free rectangles %+v and %+v overlap", e.freeRects[i], e.freeRects[j])
			}
		}
	}
	assertNoOverlap(t, e.Items())
	assertContained(t, e.Items(), 20, 20)
}
