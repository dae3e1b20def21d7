package binpack2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 5x5 bins with bin_best_fit and descending-area sorting: items sort
// to [(4,4),(4,4),(3,3),(2,2)]. Each 4x4 claims its own bin (its 1-wide
// leftover strips can't hold a 3x3 or a 2x2); the 3x3 can't fit either
// existing bin so opens a third, and the 2x2 then fits into that third
// bin's leftover alongside it.
func TestBinManager_BestFitOpensExpectedBinCount(t *testing.T) {
	m := NewBinManager(5, 5, ManagerOptions{
		PackAlgo:         GuillotineAlgo,
		BinAlgo:          BinBestFit,
		Heuristic:        BestArea,
		Sorting:          true,
		SortingHeuristic: DESCA,
	})

	m.AddItems(
		NewItem(1, 3, 3),
		NewItem(2, 4, 4),
		NewItem(3, 2, 2),
		NewItem(4, 4, 4),
	)
	require.NoError(t, m.Execute())
	require.Len(t, m.Bins(), 3)

	require.Len(t, m.Bins()[0].Items(), 1)
	require.Len(t, m.Bins()[1].Items(), 1)
	require.Len(t, m.Bins()[2].Items(), 2)

	for _, b := range m.Bins() {
		assertContained(t, b.Items(), 5, 5)
		assertNoOverlap(t, b.Items())
	}
}

func TestBinManager_OversizedItemIsFatal(t *testing.T) {
	m := NewBinManager(10, 10, ManagerOptions{PackAlgo: GuillotineAlgo})
	m.AddItems(NewItem(1, 11, 1))
	err := m.Execute()
	require.Error(t, err)
}

func TestBinManager_OversizedItemFitsWithRotation(t *testing.T) {
	m := NewBinManager(10, 10, ManagerOptions{PackAlgo: GuillotineAlgo, AllowRotate: true})
	m.AddItems(NewItem(1, 11, 9))
	require.Error(t, m.Execute(), "11x9 doesn't fit a 10x10 bin even rotated")

	m2 := NewBinManager(10, 20, ManagerOptions{PackAlgo: GuillotineAlgo, AllowRotate: true})
	m2.AddItems(NewItem(1, 15, 8))
	require.NoError(t, m2.Execute())
}

func TestBinManager_FirstFitOpensNewBinOnlyWhenNeeded(t *testing.T) {
	m := NewBinManager(5, 5, ManagerOptions{PackAlgo: GuillotineAlgo, BinAlgo: BinFirstFit, Heuristic: BestArea})
	m.AddItems(
		NewItem(1, 4, 4), // leaves a leftover strip in bin 0
		NewItem(2, 5, 5),
		NewItem(3, 1, 1),
	)
	require.NoError(t, m.Execute())
	require.Len(t, m.Bins(), 2, "the third item should fit in bin 0's leftover strip rather than opening a third bin")
}

func TestBinManager_AddItemsResortsPendingQueue(t *testing.T) {
	m := NewBinManager(100, 100, ManagerOptions{
		PackAlgo:         GuillotineAlgo,
		Sorting:          true,
		SortingHeuristic: DESCA,
	})
	m.AddItems(NewItem(1, 2, 2), NewItem(2, 9, 9))
	require.Equal(t, 2, m.pending[0].ID, "largest area should sort first")

	m.AddItems(NewItem(3, 5, 5))
	require.Equal(t, 2, m.pending[0].ID)
	require.Equal(t, 3, m.pending[1].ID)
	require.Equal(t, 1, m.pending[2].ID)
}

func TestBinManager_StatsReportEfficiency(t *testing.T) {
	m := NewBinManager(10, 10, ManagerOptions{PackAlgo: GuillotineAlgo, Heuristic: BestArea})
	m.AddItems(NewItem(1, 4, 4), NewItem(2, 6, 4), NewItem(3, 4, 6), NewItem(4, 6, 6))
	require.NoError(t, m.Execute())
	require.Len(t, m.Bins(), 1)

	stats := m.Bins()[0].Stats()
	require.Equal(t, 100, stats.Area)
	require.Equal(t, 100, stats.UsedArea)
	require.InDelta(t, 1.0, stats.Efficiency, 0.0001)
}

func TestNewBinManager_PanicsOnNonPositiveDimensions(t *testing.T) {
	require.Panics(t, func() { NewBinManager(0, 10, ManagerOptions{}) })
	require.Panics(t, func() { NewBinManager(10, -1, ManagerOptions{}) })
}

func TestNewBinManager_PanicsOnInvalidHeuristicForAlgo(t *testing.T) {
	require.Panics(t, func() {
		NewBinManager(10, 10, ManagerOptions{PackAlgo: GuillotineAlgo, Heuristic: ContactPoint})
	})
}

func TestNewBinManager_AcceptsEachPackAlgo(t *testing.T) {
	for _, algo := range []PackAlgo{GuillotineAlgo, MaximalRectangleAlgo, ShelfAlgo, SkylineAlgo} {
		require.NotPanics(t, func() {
			NewBinManager(10, 10, ManagerOptions{PackAlgo: algo})
		}, "algo %s", algo)
	}
}
