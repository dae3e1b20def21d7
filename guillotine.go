package binpack2d

// guillotineEngine maintains a set of disjoint free rectangles partitioned
// by guillotine cuts. Every placement removes the free rectangle it used
// and splits its remainder into two new ones by a single cut (the
// guillotine property), keeping only those with non-zero area, optionally
// followed by a pass that fuses adjacent free rectangles back
// together.
type guillotineEngine struct {
	width, height int
	freeRects     []FreeRectangle
	items         []*Item
	usedArea      int

	allowRotate bool
	merge       bool
	split       SplitHeuristic
	scoreFn     func(w, h int, free FreeRectangle) int
}

func newGuillotineEngine(width, height int, h Heuristic, split SplitHeuristic, rotate, merge bool) *guillotineEngine {
	return &guillotineEngine{
		width:       width,
		height:      height,
		freeRects:   []FreeRectangle{{X: 0, Y: 0, Width: width, Height: height}},
		allowRotate: rotate,
		merge:       merge,
		split:       split,
		scoreFn:     guillotineScoreFunc(h),
	}
}

func guillotineScoreFunc(h Heuristic) func(w, h2 int, free FreeRectangle) int {
	switch h {
	case BestShortSide:
		return scoreShortSide
	case BestLongSide:
		return scoreLongSide
	case WorstArea:
		return func(w, ht int, free FreeRectangle) int { return -scoreArea(w, ht, free) }
	case WorstShortSide:
		return func(w, ht int, free FreeRectangle) int { return -scoreShortSide(w, ht, free) }
	case WorstLongSide:
		return func(w, ht int, free FreeRectangle) int { return -scoreLongSide(w, ht, free) }
	default: // BestArea
		return scoreArea
	}
}

func scoreArea(w, h int, free FreeRectangle) int {
	return free.Area() - w*h
}

func scoreShortSide(w, h int, free FreeRectangle) int {
	return min(abs(free.Width-w), abs(free.Height-h))
}

func scoreLongSide(w, h int, free FreeRectangle) int {
	return max(abs(free.Width-w), abs(free.Height-h))
}

func (e *guillotineEngine) UsedArea() int  { return e.usedArea }
func (e *guillotineEngine) Items() []*Item { return e.items }

// candidates enumerates every (free rectangle, orientation) pair the item
// fits into, scored by e.scoreFn.
func (e *guillotineEngine) candidates(width, height int) []candidate {
	var cands []candidate
	for i, free := range e.freeRects {
		if free.fits(width, height) {
			cands = append(cands, candidate{
				sc:        score{a: e.scoreFn(width, height, free)},
				freeIndex: i,
				x:         free.X,
				y:         free.Y,
				width:     width,
				height:    height,
			})
		}
		if e.allowRotate && free.fits(height, width) {
			cands = append(cands, candidate{
				sc:        score{a: e.scoreFn(height, width, free)},
				freeIndex: i,
				x:         free.X,
				y:         free.Y,
				width:     height,
				height:    width,
				rotated:   true,
			})
		}
	}
	return cands
}

func (e *guillotineEngine) FindBestScore(item *Item) (score, bool) {
	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return score{}, false
	}
	return best.sc, true
}

func (e *guillotineEngine) Insert(item *Item) bool {
	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return false
	}

	if best.rotated {
		item.Rotate()
	}
	item.place(best.x, best.y)

	free := e.freeRects[best.freeIndex]
	e.freeRects = append(e.freeRects[:best.freeIndex], e.freeRects[best.freeIndex+1:]...)

	bottom, right := splitGuillotine(free, best.width, best.height, e.split)
	if bottom.Width > 0 && bottom.Height > 0 {
		e.freeRects = append(e.freeRects, bottom)
	}
	if right.Width > 0 && right.Height > 0 {
		e.freeRects = append(e.freeRects, right)
	}

	if e.merge {
		e.mergeFreeList()
	}

	e.usedArea += best.width * best.height
	e.items = append(e.items, item)
	return true
}

// mergeFreeList fuses pairs of free rectangles that share an edge and
// agree on the perpendicular dimension, back into a single rectangle: two
// free rectangles with identical widths whose y ranges abut, or identical
// heights whose x ranges abut.
func (e *guillotineEngine) mergeFreeList() {
	for i := 0; i < len(e.freeRects); i++ {
		merged := true
		for merged {
			merged = false
			for j := i + 1; j < len(e.freeRects); j++ {
				a, b := e.freeRects[i], e.freeRects[j]
				if a.Width == b.Width && a.X == b.X {
					if a.Y == b.Y+b.Height {
						a.Y = b.Y
						a.Height += b.Height
						e.freeRects[i] = a
						e.freeRects = append(e.freeRects[:j], e.freeRects[j+1:]...)
						merged = true
						break
					}
					if a.Y+a.Height == b.Y {
						a.Height += b.Height
						e.freeRects[i] = a
						e.freeRects = append(e.freeRects[:j], e.freeRects[j+1:]...)
						merged = true
						break
					}
				} else if a.Height == b.Height && a.Y == b.Y {
					if a.X == b.X+b.Width {
						a.X = b.X
						a.Width += b.Width
						e.freeRects[i] = a
						e.freeRects = append(e.freeRects[:j], e.freeRects[j+1:]...)
						merged = true
						break
					}
					if a.X+a.Width == b.X {
						a.Width += b.Width
						e.freeRects[i] = a
						e.freeRects = append(e.freeRects[:j], e.freeRects[j+1:]...)
						merged = true
						break
					}
				}
			}
		}
	}
}
