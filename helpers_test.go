package binpack2d

import "testing"

// assertContained fails the test if any item falls outside [0,binW]x[0,binH].
func assertContained(t *testing.T, items []*Item, binW, binH int) {
	t.Helper()
	for _, it := range items {
		if it.X < 0 || it.Y < 0 || it.X+it.Width > binW || it.Y+it.Height > binH {
			t.Errorf("item %d at (%d,%d) size %dx%d escapes bin %dx%d",
				it.ID, it.X, it.Y, it.Width, it.Height, binW, binH)
		}
	}
}

// assertNoOverlap fails the test if any two items' open interiors overlap.
func assertNoOverlap(t *testing.T, items []*Item) {
	t.Helper()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			ar := FreeRectangle{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
			br := FreeRectangle{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
			if intersectsRect(ar, br) {
				t.Errorf("items %d and %d overlap: %+v vs %+v", a.ID, b.ID, a, b)
			}
		}
	}
}

func totalArea(items []*Item) int {
	sum := 0
	for _, it := range items {
		sum += it.Area()
	}
	return sum
}
