package binpack2d

// innerShelf is one horizontal band of a Shelf engine. Shelves are kept
// bottom-up in e.shelves; the last element is always the "open" shelf,
// which may still grow in height (up to the bin top) as taller items are
// placed on it. Every earlier shelf is "closed": its height is fixed and
// its leftover strip has already been donated to the wastemap, if one is
// configured.
type innerShelf struct {
	y, height int
	usedWidth int
}

func (s *innerShelf) freeWidth(binWidth int) int {
	return binWidth - s.usedWidth
}

// shelfEngine packs items left-to-right into horizontal bands, optionally
// reclaiming each band's leftover strip (and the above-shelf strip left
// when the open shelf grows) via an embedded Guillotine wastemap.
type shelfEngine struct {
	width, height int
	shelves       []*innerShelf
	items         []*Item
	usedArea      int

	allowRotate bool
	heuristic   Heuristic
	useWasteMap bool
	wasteMap    *guillotineEngine
}

func newShelfEngine(width, height int, h Heuristic, rotate, wasteMap bool) *shelfEngine {
	e := &shelfEngine{
		width:       width,
		height:      height,
		allowRotate: rotate,
		heuristic:   h,
		useWasteMap: wasteMap,
	}
	if wasteMap {
		e.wasteMap = newGuillotineEngine(width, height, BestArea, SAS, rotate, true)
		// Nothing has been donated yet: the wastemap only ever holds the
		// leftover strip of a closed shelf or the strip trapped above a
		// grown one, never the bin's untouched remainder.
		e.wasteMap.freeRects = nil
	}
	return e
}

func (e *shelfEngine) UsedArea() int  { return e.usedArea }
func (e *shelfEngine) Items() []*Item { return e.items }

func (e *shelfEngine) topY() int {
	var y int
	for _, s := range e.shelves {
		y += s.height
	}
	return y
}

// fitsShelf reports whether an item of size w,h fits on shelf i, and the
// height that shelf would end up at (equal to s.height unless i is the
// open shelf and the item is taller, in which case the shelf grows).
func (e *shelfEngine) fitsShelf(i, w, h int) (newHeight int, ok bool) {
	s := e.shelves[i]
	if w > s.freeWidth(e.width) {
		return 0, false
	}
	if h <= s.height {
		return s.height, true
	}
	if i != len(e.shelves)-1 {
		// Only the open (topmost) shelf is allowed to grow.
		return 0, false
	}
	if s.y+h > e.height {
		return 0, false
	}
	return h, true
}

func (e *shelfEngine) candidatesAcrossShelves(w, h int) []candidate {
	var cands []candidate
	for i := range e.shelves {
		if newHeight, ok := e.fitsShelf(i, w, h); ok {
			cands = append(cands, e.scoreShelfCandidate(i, w, h, newHeight, false))
		}
		if e.allowRotate {
			if newHeight, ok := e.fitsShelf(i, h, w); ok {
				cands = append(cands, e.scoreShelfCandidate(i, h, w, newHeight, true))
			}
		}
	}
	return cands
}

func (e *shelfEngine) scoreShelfCandidate(i, w, h, newHeight int, rotated bool) candidate {
	s := e.shelves[i]
	c := candidate{freeIndex: i, x: s.usedWidth, y: s.y, width: w, height: h, rotated: rotated}
	freeW := s.freeWidth(e.width) - w
	switch e.heuristic {
	case BestWidthFit:
		c.sc = score{a: freeW}
	case WorstWidthFit:
		c.sc = score{a: -freeW}
	case BestHeightFit:
		c.sc = score{a: newHeight - h}
	case WorstHeightFit:
		c.sc = score{a: -(newHeight - h)}
	case BestAreaFit:
		c.sc = score{a: freeW*newHeight - w*h}
	case WorstAreaFit:
		c.sc = score{a: -(freeW*newHeight - w*h)}
	default: // NextFit, FirstFit handled by the caller, not scored here
		c.sc = score{}
	}
	return c
}

// bestExistingShelf selects the shelf (and orientation) to place w,h on,
// per the configured heuristic: next_fit only ever considers the open
// shelf; first_fit takes the first shelf encountered (bottom-up) that
// fits; the best_*/worst_* heuristics score every fitting shelf and pick
// the extreme.
func (e *shelfEngine) bestExistingShelf(w, h int) (candidate, bool) {
	switch e.heuristic {
	case NextFit:
		if len(e.shelves) == 0 {
			return candidate{}, false
		}
		i := len(e.shelves) - 1
		if newHeight, ok := e.fitsShelf(i, w, h); ok {
			return e.scoreShelfCandidate(i, w, h, newHeight, false), true
		}
		if e.allowRotate {
			if newHeight, ok := e.fitsShelf(i, h, w); ok {
				return e.scoreShelfCandidate(i, h, w, newHeight, true), true
			}
		}
		return candidate{}, false
	case FirstFit:
		for i := range e.shelves {
			if newHeight, ok := e.fitsShelf(i, w, h); ok {
				return e.scoreShelfCandidate(i, w, h, newHeight, false), true
			}
			if e.allowRotate {
				if newHeight, ok := e.fitsShelf(i, h, w); ok {
					return e.scoreShelfCandidate(i, h, w, newHeight, true), true
				}
			}
		}
		return candidate{}, false
	default:
		return pickBest(e.candidatesAcrossShelves(w, h))
	}
}

func (e *shelfEngine) FindBestScore(item *Item) (score, bool) {
	if e.useWasteMap {
		if sc, ok := e.wasteMap.FindBestScore(item); ok {
			return sc, true
		}
	}
	if c, ok := e.bestExistingShelf(item.Width, item.Height); ok {
		return c.sc, true
	}
	if fits, _, _ := e.newShelfFits(item.Width, item.Height); fits {
		return score{}, true
	}
	if e.allowRotate {
		if fits, _, _ := e.newShelfFits(item.Height, item.Width); fits {
			return score{}, true
		}
	}
	return score{}, false
}

// newShelfFits reports whether a fresh shelf of height h, opened above the
// current top shelf, would fit within the bin.
func (e *shelfEngine) newShelfFits(w, h int) (ok bool, y int, height int) {
	if w > e.width {
		return false, 0, 0
	}
	y = e.topY()
	if y+h > e.height {
		return false, 0, 0
	}
	return true, y, h
}

func (e *shelfEngine) Insert(item *Item) bool {
	if e.useWasteMap && e.wasteMap.Insert(item) {
		e.usedArea += item.Area()
		e.items = append(e.items, item)
		return true
	}

	if c, ok := e.bestExistingShelf(item.Width, item.Height); ok {
		e.placeOnShelf(item, c)
		return true
	}

	if ok, y, h := e.newShelfFits(item.Width, item.Height); ok {
		e.openShelf(item, item.Width, item.Height, y, h, false)
		return true
	}
	if e.allowRotate {
		if ok, y, h := e.newShelfFits(item.Height, item.Width); ok {
			e.openShelf(item, item.Height, item.Width, y, h, true)
			return true
		}
	}
	return false
}

func (e *shelfEngine) placeOnShelf(item *Item, c candidate) {
	if c.rotated {
		item.Rotate()
	}
	item.place(c.x, c.y)

	s := e.shelves[c.freeIndex]
	if c.height > s.height {
		// The open shelf is growing: the strip above every item already
		// on it, up to the new height, is trapped space.
		if e.useWasteMap && s.usedWidth > 0 {
			e.wasteMap.freeRects = append(e.wasteMap.freeRects, FreeRectangle{
				X: 0, Y: s.y + s.height, Width: s.usedWidth, Height: c.height - s.height,
			})
			e.wasteMap.mergeFreeList()
		}
		s.height = c.height
	}
	s.usedWidth += c.width

	e.usedArea += c.width * c.height
	e.items = append(e.items, item)
}

func (e *shelfEngine) openShelf(item *Item, w, h, y, height int, rotated bool) {
	e.closeTopShelf()

	s := &innerShelf{y: y, height: height}
	if rotated {
		item.Rotate()
	}
	item.place(0, y)
	s.usedWidth = w
	e.shelves = append(e.shelves, s)

	e.usedArea += w * h
	e.items = append(e.items, item)
}

// closeTopShelf donates the current open shelf's unused strip to the
// wastemap before a new shelf is opened above it.
func (e *shelfEngine) closeTopShelf() {
	if !e.useWasteMap || len(e.shelves) == 0 {
		return
	}
	s := e.shelves[len(e.shelves)-1]
	free := s.freeWidth(e.width)
	if free <= 0 || s.height <= 0 {
		return
	}
	e.wasteMap.freeRects = append(e.wasteMap.freeRects, FreeRectangle{
		X: s.usedWidth, Y: s.y, Width: free, Height: s.height,
	})
	e.wasteMap.mergeFreeList()
}
