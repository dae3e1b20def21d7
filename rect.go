package binpack2d

// FreeRectangle is an axis-aligned empty region tracked by an engine's
// free-space bookkeeping (Guillotine's free list, Maximal Rectangles'
// maximal set, or a wastemap).
type FreeRectangle struct {
	X, Y, Width, Height int
}

// Area returns Width * Height.
func (r FreeRectangle) Area() int {
	return r.Width * r.Height
}

// fits reports whether an item of size w,h fits upright inside r.
func (r FreeRectangle) fits(w, h int) bool {
	return w <= r.Width && h <= r.Height
}

// containsRect reports whether b lies entirely within a (inclusive edges).
func containsRect(a, b FreeRectangle) bool {
	return a.X <= b.X &&
		b.X+b.Width <= a.X+a.Width &&
		a.Y <= b.Y &&
		b.Y+b.Height <= a.Y+a.Height
}

// intersectsRect reports whether a and b's open interiors overlap.
func intersectsRect(a, b FreeRectangle) bool {
	return b.X < a.X+a.Width &&
		a.X < b.X+b.Width &&
		b.Y < a.Y+a.Height &&
		a.Y < b.Y+b.Height
}

// containsPoint reports whether (x,y) lies within r, inclusive lower bound
// and exclusive upper bound on each axis.
func containsPoint(r FreeRectangle, x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// splitFourWay returns the up-to-four strips of free space left over when
// placed is carved out of free: the portions of free strictly left of,
// right of, below, and above placed. Degenerate (zero-area) strips are
// omitted. Used by the Maximal Rectangles engine, which does not require
// the resulting strips to be disjoint from each other or from the rest of
// the free set.
func splitFourWay(free, placed FreeRectangle) []FreeRectangle {
	if !intersectsRect(free, placed) {
		return nil
	}

	var out []FreeRectangle

	if placed.X < free.X+free.Width && placed.X+placed.Width > free.X {
		if placed.Y > free.Y && placed.Y < free.Y+free.Height {
			top := free
			top.Height = placed.Y - free.Y
			out = append(out, top)
		}
		if placed.Y+placed.Height < free.Y+free.Height {
			bottom := free
			bottom.Y = placed.Y + placed.Height
			bottom.Height = free.Y + free.Height - bottom.Y
			out = append(out, bottom)
		}
	}

	if placed.Y < free.Y+free.Height && placed.Y+placed.Height > free.Y {
		if placed.X > free.X && placed.X < free.X+free.Width {
			left := free
			left.Width = placed.X - free.X
			out = append(out, left)
		}
		if placed.X+placed.Width < free.X+free.Width {
			right := free
			right.X = placed.X + placed.Width
			right.Width = free.X + free.Width - right.X
			out = append(out, right)
		}
	}

	return out
}

// splitGuillotine carves the L-shaped remainder of free, once an item of
// size placedW x placedH is placed at free's origin, into exactly two
// disjoint rectangles (the guillotine property: the cut spans the full
// free rectangle). rule selects which axis the cut runs along.
func splitGuillotine(free FreeRectangle, placedW, placedH int, rule SplitHeuristic) (bottom, right FreeRectangle) {
	bottom = FreeRectangle{
		X:      free.X,
		Y:      free.Y + placedH,
		Height: free.Height - placedH,
	}
	right = FreeRectangle{
		X:     free.X + placedW,
		Y:     free.Y,
		Width: free.Width - placedW,
	}

	leftoverW := free.Width - placedW
	leftoverH := free.Height - placedH

	var splitHorizontal bool
	switch rule {
	case SLAS:
		// Cut chosen from the shorter remaining (leftover) space.
		splitHorizontal = leftoverW <= leftoverH
	case LLAS:
		// Cut chosen from the longer remaining (leftover) space.
		splitHorizontal = leftoverW > leftoverH
	case SDAS:
		// Cut chosen to make one single large resulting rectangle,
		// maximizing the area difference between the two.
		splitHorizontal = placedW*leftoverH > leftoverW*placedH
	case LDAS:
		// Cut chosen to minimize the area difference by keeping both
		// resulting rectangles as even as possible.
		splitHorizontal = placedW*leftoverH <= leftoverW*placedH
	case LAS:
		// Cut along the longer axis of the original free rectangle.
		splitHorizontal = free.Width > free.Height
	default: // SAS
		// Cut along the shorter axis of the original free rectangle.
		splitHorizontal = free.Width <= free.Height
	}

	if splitHorizontal {
		bottom.Width = free.Width
		right.Height = placedH
	} else {
		bottom.Width = placedW
		right.Height = free.Height
	}

	return bottom, right
}
