package binpack2d

// maxRectsEngine maintains the set of maximal empty rectangles in a bin:
// every empty rectangle in the bin is contained in at least one element of
// the set. Unlike Guillotine, free rectangles are allowed to overlap each
// other; maximality, not disjointness, is the invariant.
type maxRectsEngine struct {
	width, height int
	freeRects     []FreeRectangle
	items         []*Item
	usedArea      int

	allowRotate bool
	heuristic   Heuristic
}

func newMaxRectsEngine(width, height int, h Heuristic, rotate bool) *maxRectsEngine {
	return &maxRectsEngine{
		width:       width,
		height:      height,
		freeRects:   []FreeRectangle{{X: 0, Y: 0, Width: width, Height: height}},
		allowRotate: rotate,
		heuristic:   h,
	}
}

func (e *maxRectsEngine) UsedArea() int  { return e.usedArea }
func (e *maxRectsEngine) Items() []*Item { return e.items }

func (e *maxRectsEngine) candidates(width, height int) []candidate {
	var cands []candidate
	for i, free := range e.freeRects {
		if free.fits(width, height) {
			cands = append(cands, e.scoreCandidate(i, free, width, height, false))
		}
		if e.allowRotate && free.fits(height, width) {
			cands = append(cands, e.scoreCandidate(i, free, height, width, true))
		}
	}
	return cands
}

func (e *maxRectsEngine) scoreCandidate(freeIndex int, free FreeRectangle, w, h int, rotated bool) candidate {
	c := candidate{freeIndex: freeIndex, x: free.X, y: free.Y, width: w, height: h, rotated: rotated}
	switch e.heuristic {
	case BottomLeft:
		c.sc = score{a: free.Y + h, b: free.X}
	case ContactPoint:
		// Higher contact is better; negate so smaller-is-better holds.
		c.sc = score{a: -e.contactScore(free.X, free.Y, w, h)}
	case BestLongSide:
		short, long := abs(free.Width-w), abs(free.Height-h)
		if short > long {
			short, long = long, short
		}
		c.sc = score{a: long, b: short}
	case BestShortSide:
		short, long := abs(free.Width-w), abs(free.Height-h)
		if short > long {
			short, long = long, short
		}
		c.sc = score{a: short, b: long}
	default: // BestArea
		c.sc = score{a: free.Area() - w*h, b: min(abs(free.Width-w), abs(free.Height-h))}
	}
	return c
}

func (e *maxRectsEngine) FindBestScore(item *Item) (score, bool) {
	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return score{}, false
	}
	return best.sc, true
}

func (e *maxRectsEngine) Insert(item *Item) bool {
	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return false
	}

	if best.rotated {
		item.Rotate()
	}
	item.place(best.x, best.y)
	placed := FreeRectangle{X: best.x, Y: best.y, Width: best.width, Height: best.height}

	e.placeRect(placed)
	e.usedArea += best.width * best.height
	e.items = append(e.items, item)
	return true
}

// placeRect intersects placed against every current free rectangle,
// replacing each intersected one with its non-overlapping strips, then
// prunes any free rectangle that ended up strictly contained in another.
// This restores the maximal-rectangles invariant and must run after every
// placement.
func (e *maxRectsEngine) placeRect(placed FreeRectangle) {
	var kept []FreeRectangle
	var fresh []FreeRectangle

	for _, free := range e.freeRects {
		if !intersectsRect(free, placed) {
			kept = append(kept, free)
			continue
		}
		fresh = append(fresh, splitFourWay(free, placed)...)
	}

	// A freshly produced strip already contained in a surviving free
	// rectangle (or in another fresh strip) is redundant.
	var candidates []FreeRectangle
	for _, r := range fresh {
		redundant := false
		for _, k := range kept {
			if containsRect(k, r) {
				redundant = true
				break
			}
		}
		if !redundant {
			candidates = append(candidates, r)
		}
	}

	e.freeRects = append(kept, candidates...)
	e.pruneFreeList()
}

// pruneFreeList deletes any free rectangle strictly contained in another.
// O(n^2), acceptable per this engine's design.
func (e *maxRectsEngine) pruneFreeList() {
	var out []FreeRectangle
	for i, r := range e.freeRects {
		dominated := false
		for j, other := range e.freeRects {
			if i == j {
				continue
			}
			if containsRect(other, r) && (i > j || !containsRect(r, other)) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, r)
		}
	}
	e.freeRects = out
}

// commonIntervalLength returns the length of the overlap between
// [i1start,i1end) and [i2start,i2end), or 0 if disjoint.
func commonIntervalLength(i1start, i1end, i2start, i2end int) int {
	if i1end < i2start || i2end < i1start {
		return 0
	}
	return min(i1end, i2end) - max(i1start, i2start)
}

// contactScore sums the shared edge length between a candidate placement
// at (x,y,w,h) and the bin boundary or any already-placed item.
func (e *maxRectsEngine) contactScore(x, y, w, h int) int {
	sc := 0
	if x == 0 || x+w == e.width {
		sc += h
	}
	if y == 0 || y+h == e.height {
		sc += w
	}
	for _, used := range e.items {
		if used.X == x+w || used.X+used.Width == x {
			sc += commonIntervalLength(used.Y, used.Y+used.Height, y, y+h)
		}
		if used.Y == y+h || used.Y+used.Height == y {
			sc += commonIntervalLength(used.X, used.X+used.Width, x, x+w)
		}
	}
	return sc
}
