package binpack2d

// skylineSegment is one horizontal run of the upper envelope of occupied
// space. A Skyline engine's segments are kept sorted by X and always
// partition [0, width) with no gap and no overlap.
type skylineSegment struct {
	X, Y, Width int
}

// skylineEngine maintains the skyline as an x-sorted sequence of segments.
// An optional wastemap (a Guillotine engine reused by composition, not
// subclassing) reclaims the trapped space under a placement that spans
// segments of differing height.
type skylineEngine struct {
	width, height int
	segments      []skylineSegment
	items         []*Item
	usedArea      int

	allowRotate bool
	heuristic   Heuristic
	useWasteMap bool
	wasteMap    *guillotineEngine
}

func newSkylineEngine(width, height int, h Heuristic, rotate, wasteMap bool) *skylineEngine {
	e := &skylineEngine{
		width:       width,
		height:      height,
		segments:    []skylineSegment{{X: 0, Y: 0, Width: width}},
		allowRotate: rotate,
		heuristic:   h,
		useWasteMap: wasteMap,
	}
	if wasteMap {
		e.wasteMap = newGuillotineEngine(width, height, BestArea, SAS, rotate, true)
		// Nothing has been donated yet: the wastemap only ever holds space
		// reclaimed from trapped or closed-off regions, never the bin's
		// untouched remainder, so it starts with no free rectangles at all.
		e.wasteMap.freeRects = nil
	}
	return e
}

func (e *skylineEngine) UsedArea() int  { return e.usedArea }
func (e *skylineEngine) Items() []*Item { return e.items }

// testFit mirrors spec.md's fit test for segment i with (w,h): walking
// forward from segment i, accumulating width until w is covered, tracking
// the highest y spanned. Returns the placement y and whether it fits both
// within the bin's width and height.
func (e *skylineEngine) testFit(i, w, h int) (y int, ok bool) {
	x := e.segments[i].X
	if x+w > e.width {
		return 0, false
	}

	widthLeft := w
	y = e.segments[i].Y
	for widthLeft > 0 {
		if i >= len(e.segments) {
			return 0, false
		}
		y = max(y, e.segments[i].Y)
		if y+h > e.height {
			return 0, false
		}
		widthLeft -= e.segments[i].Width
		i++
	}
	return y, true
}

// wastedArea returns the area that would go unused beneath an item of
// width w placed at height y, starting at segment index i.
func (e *skylineEngine) wastedArea(i, w, y int) int {
	waste := 0
	left := e.segments[i].X
	right := left + w
	for i < len(e.segments) && e.segments[i].X < right {
		seg := e.segments[i]
		if seg.X >= right || seg.X+seg.Width <= left {
			break
		}
		segLeft := seg.X
		segRight := min(right, segLeft+seg.Width)
		waste += (segRight - segLeft) * (y - seg.Y)
		i++
	}
	return waste
}

func (e *skylineEngine) candidates(width, height int) []candidate {
	var cands []candidate
	for i := range e.segments {
		if y, ok := e.testFit(i, width, height); ok {
			cands = append(cands, e.scoreCandidate(i, y, width, height, false))
		}
		if e.allowRotate {
			if y, ok := e.testFit(i, height, width); ok {
				cands = append(cands, e.scoreCandidate(i, y, height, width, true))
			}
		}
	}
	return cands
}

func (e *skylineEngine) scoreCandidate(i, y, w, h int, rotated bool) candidate {
	c := candidate{freeIndex: i, x: e.segments[i].X, y: y, width: w, height: h, rotated: rotated}
	switch e.heuristic {
	case BestFit:
		c.sc = score{a: e.wastedArea(i, w, y), b: y + h}
	default: // BottomLeft
		c.sc = score{a: y + h, b: e.segments[i].Width}
	}
	return c
}

func (e *skylineEngine) FindBestScore(item *Item) (score, bool) {
	if e.useWasteMap {
		if sc, ok := e.wasteMap.FindBestScore(item); ok {
			return sc, true
		}
	}
	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return score{}, false
	}
	return best.sc, true
}

func (e *skylineEngine) Insert(item *Item) bool {
	if e.useWasteMap && e.wasteMap.Insert(item) {
		e.usedArea += item.Area()
		e.items = append(e.items, item)
		return true
	}

	best, ok := pickBest(e.candidates(item.Width, item.Height))
	if !ok {
		return false
	}

	if best.rotated {
		item.Rotate()
	}
	item.place(best.x, best.y)

	if e.useWasteMap {
		e.donateToWasteMap(best.freeIndex, best.width, best.y)
	}
	e.commit(best.freeIndex, best.x, best.y, best.width, best.height)

	e.usedArea += best.width * best.height
	e.items = append(e.items, item)
	return true
}

// donateToWasteMap records, as free rectangles in the wastemap, the space
// trapped beneath the item between segment index i and wherever the
// item's span ends.
func (e *skylineEngine) donateToWasteMap(i, w, y int) {
	left := e.segments[i].X
	right := left + w
	for i < len(e.segments) && e.segments[i].X < right {
		seg := e.segments[i]
		if seg.X >= right || seg.X+seg.Width <= left {
			break
		}
		segLeft := seg.X
		segRight := min(right, segLeft+seg.Width)
		wh := y - seg.Y
		ww := segRight - segLeft
		if ww > 0 && wh > 0 {
			e.wasteMap.freeRects = append(e.wasteMap.freeRects, FreeRectangle{
				X: segLeft, Y: seg.Y, Width: ww, Height: wh,
			})
		}
		i++
	}
	e.wasteMap.mergeFreeList()
}

// commit clips every segment overlapping the item's x-range per the five
// cases from this package's design document (outside the item; fully
// under; left-overhang only; right-overhang only; both overhangs), adds a
// new segment on top of the item if room remains, then merges adjacent
// segments sharing a y.
func (e *skylineEngine) commit(i, x, y, w, h int) {
	itemLeft, itemRight := x, x+w

	var clipped []skylineSegment
	for _, seg := range e.segments {
		clipped = append(clipped, clipSegment(seg, itemLeft, itemRight)...)
	}

	if y+h < e.height {
		clipped = insertSorted(clipped, skylineSegment{X: x, Y: y + h, Width: w})
	}

	e.segments = mergeSegments(clipped)
}

// clipSegment implements the five cases: a segment entirely outside the
// item's x-range passes through unchanged; one entirely under it vanishes;
// one overhanging on just the left, just the right, or both sides is
// clipped down to the part(s) not under the item.
func clipSegment(seg skylineSegment, itemLeft, itemRight int) []skylineSegment {
	segLeft, segRight := seg.X, seg.X+seg.Width

	switch {
	case segLeft >= itemRight || segRight <= itemLeft:
		return []skylineSegment{seg}
	case segLeft >= itemLeft && segRight <= itemRight:
		return nil
	case segLeft < itemLeft && segRight <= itemRight:
		return []skylineSegment{{X: segLeft, Y: seg.Y, Width: itemLeft - segLeft}}
	case segLeft >= itemLeft && segRight > itemRight:
		return []skylineSegment{{X: itemRight, Y: seg.Y, Width: segRight - itemRight}}
	default: // segLeft < itemLeft && segRight > itemRight
		return []skylineSegment{
			{X: segLeft, Y: seg.Y, Width: itemLeft - segLeft},
			{X: itemRight, Y: seg.Y, Width: segRight - itemRight},
		}
	}
}

func insertSorted(segs []skylineSegment, s skylineSegment) []skylineSegment {
	i := 0
	for i < len(segs) && segs[i].X < s.X {
		i++
	}
	segs = append(segs, skylineSegment{})
	copy(segs[i+1:], segs[i:])
	segs[i] = s
	return segs
}

// mergeSegments fuses adjacent segments sharing a y value, restoring the
// "no two adjacent segments share a y" invariant.
func mergeSegments(segs []skylineSegment) []skylineSegment {
	if len(segs) == 0 {
		return segs
	}
	out := segs[:1]
	for _, seg := range segs[1:] {
		last := &out[len(out)-1]
		if last.Y == seg.Y && last.X+last.Width == seg.X {
			last.Width += seg.Width
			continue
		}
		out = append(out, seg)
	}
	return out
}
