package binpack2d

import (
	"cmp"
	"slices"
)

// sortItems orders items in place according to h. Unknown heuristics fall
// back to DESCA (descending area), matching this package's "unknown keys
// fall back to descending area" rule. slices.SortStableFunc is a stable
// sort, so items comparing equal under the chosen key retain their relative
// input order.
func sortItems(items []*Item, h SortingHeuristic) {
	key, ascending := sortKey(h)
	slices.SortStableFunc(items, func(a, b *Item) int {
		c := cmp.Compare(key(a), key(b))
		if ascending {
			return c
		}
		return -c
	})
}

func sortKey(h SortingHeuristic) (key func(*Item) float64, ascending bool) {
	switch h {
	case ASCA:
		return itemArea, true
	case DESCA:
		return itemArea, false
	case ASCSS:
		return itemShortSide, true
	case DESCSS:
		return itemShortSide, false
	case ASCLS:
		return itemLongSide, true
	case DESCLS:
		return itemLongSide, false
	case ASCPERIM:
		return itemPerimeter, true
	case DESCPERIM:
		return itemPerimeter, false
	case ASCDIFF:
		return itemDiff, true
	case DESCDIFF:
		return itemDiff, false
	case ASCRATIO:
		return itemRatio, true
	case DESCRATIO:
		return itemRatio, false
	default:
		return itemArea, false
	}
}

func itemArea(it *Item) float64      { return float64(it.Width * it.Height) }
func itemPerimeter(it *Item) float64 { return float64(2*it.Width + 2*it.Height) }
func itemDiff(it *Item) float64      { return float64(abs(it.Width - it.Height)) }
func itemRatio(it *Item) float64     { return float64(it.Width) / float64(it.Height) }

func itemShortSide(it *Item) float64 {
	if it.Width < it.Height {
		return float64(it.Width)
	}
	return float64(it.Height)
}

func itemLongSide(it *Item) float64 {
	if it.Width > it.Height {
		return float64(it.Width)
	}
	return float64(it.Height)
}
