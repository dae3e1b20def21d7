package binpack2d

// engine is the shared contract all four placement engines satisfy. A Bin
// owns exactly one engine instance; the manager never touches engine
// internals directly. Modeled as a two-method interface rather than a
// class hierarchy, per the polymorphism note in this package's design
// document: Insert commits a placement (or reports no-fit), FindBestScore
// answers "how would this item score here" without mutating anything, so
// bin_best_fit can compare bins without committing to one.
type engine interface {
	// Insert attempts to place item into the bin's remaining free space.
	// On success it sets item's X, Y and (if rotated) Rotated, and
	// returns true. On failure it returns false and leaves item and the
	// engine's state untouched.
	Insert(item *Item) bool
	// FindBestScore reports the score Insert would achieve for item
	// without placing it. ok is false if the item does not fit anywhere
	// in the bin under the current configuration.
	FindBestScore(item *Item) (sc score, ok bool)
	// UsedArea returns the total area of all placed items.
	UsedArea() int
	// Items returns the items placed so far, in insertion order.
	Items() []*Item
}

// score is a lexicographically-compared pair, smaller is always better in
// both fields. Most engines only need one comparison key; the second is
// used where the source algorithm defines a natural tie-break metric of
// its own (e.g. Maximal Rectangles' short-side/long-side pair).
type score struct {
	a, b int
}

// candidate is one placement option under consideration during Insert or
// FindBestScore. freeIndex identifies which element of the engine's
// free-space collection (free rectangle, shelf, or skyline segment) the
// candidate came from, used only to break ties by earliest insertion
// order as required by the tie-breaking rule below.
type candidate struct {
	sc            score
	freeIndex     int
	x, y          int
	width, height int
	rotated       bool
}

// betterCandidate implements this package's tie-breaking rule: the lowest
// score wins; ties are broken first by the smallest (y, x) placement
// coordinate, then by the earliest-inserted free-space element.
func betterCandidate(c, best candidate) bool {
	if c.sc.a != best.sc.a {
		return c.sc.a < best.sc.a
	}
	if c.sc.b != best.sc.b {
		return c.sc.b < best.sc.b
	}
	if c.y != best.y {
		return c.y < best.y
	}
	if c.x != best.x {
		return c.x < best.x
	}
	return c.freeIndex < best.freeIndex
}

// pickBest returns the best of cands under betterCandidate, and false if
// cands is empty.
func pickBest(cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if betterCandidate(c, best) {
			best = c
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
