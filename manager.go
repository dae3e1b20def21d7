package binpack2d

import (
	"fmt"

	"github.com/google/uuid"
)

// ManagerOptions configures a BinManager: which placement engine each bin
// uses, how bins are selected for an incoming item, and how items are
// pre-sorted before packing begins.
type ManagerOptions struct {
	PackAlgo       PackAlgo
	BinAlgo        BinAlgo
	Heuristic      Heuristic
	SplitHeuristic SplitHeuristic
	AllowRotate    bool
	// RectangleMerge enables the guillotine free-list merge pass. Ignored
	// by engines other than GuillotineAlgo.
	RectangleMerge bool
	// WasteMap enables a Guillotine-backed wastemap. Ignored by engines
	// other than ShelfAlgo and SkylineAlgo.
	WasteMap bool
	// Sorting enables pre-sorting of items added via AddItems, using
	// SortingHeuristic as the key.
	Sorting          bool
	SortingHeuristic SortingHeuristic
}

func (o ManagerOptions) validate() error {
	if err := o.PackAlgo.Validate(); err != nil {
		return err
	}
	if err := o.BinAlgo.Validate(); err != nil {
		return err
	}
	if o.Heuristic != "" {
		if err := o.Heuristic.Validate(o.PackAlgo); err != nil {
			return err
		}
	}
	if o.PackAlgo == GuillotineAlgo {
		if err := o.SplitHeuristic.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Bin is one rectangle of bin_width x bin_height managed by a BinManager,
// packed by a single placement engine.
type Bin struct {
	ID     uuid.UUID
	Width  int
	Height int

	eng engine
}

// Items returns the items placed in this bin, in insertion order.
func (b *Bin) Items() []*Item {
	return b.eng.Items()
}

// BinStats summarizes a Bin's occupancy.
type BinStats struct {
	Width, Height int
	Area          int
	UsedArea      int
	Efficiency    float64
	Items         []*Item
}

// Stats computes a snapshot of the bin's current occupancy.
func (b *Bin) Stats() BinStats {
	area := b.Width * b.Height
	used := b.eng.UsedArea()
	var efficiency float64
	if area > 0 {
		efficiency = float64(used) / float64(area)
	}
	return BinStats{
		Width:      b.Width,
		Height:     b.Height,
		Area:       area,
		UsedArea:   used,
		Efficiency: efficiency,
		Items:      b.eng.Items(),
	}
}

// BinManager packs a stream of items across as many bins of a fixed size as
// needed, opening a new bin whenever no existing bin can accommodate the
// next item.
type BinManager struct {
	width, height int
	opts          ManagerOptions

	bins    []*Bin
	pending []*Item
}

// NewBinManager creates a manager for bins of size width x height. It
// panics if width or height is non-positive, or if opts names an unknown
// or mutually inconsistent combination of algorithm and heuristic -
// configuration errors are programmer errors, caught at construction
// rather than threaded through every call.
func NewBinManager(width, height int, opts ManagerOptions) *BinManager {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("binpack2d: bin dimensions must be positive, got %dx%d", width, height))
	}
	if err := opts.validate(); err != nil {
		panic("binpack2d: " + err.Error())
	}
	return &BinManager{width: width, height: height, opts: opts}
}

// AddItems queues items for packing by the next Execute call. If sorting
// is enabled, the full pending set is re-sorted after the new items are
// appended.
func (m *BinManager) AddItems(items ...*Item) {
	m.pending = append(m.pending, items...)
	if m.opts.Sorting {
		sortItems(m.pending, m.opts.SortingHeuristic)
	}
}

// Execute packs every pending item into m's bins, opening new bins as
// needed, and returns an error without placing anything further if it
// encounters an item that cannot fit in an empty bin in any allowed
// orientation.
func (m *BinManager) Execute() error {
	for _, it := range m.pending {
		if !m.fitsEmptyBin(it) {
			return fmt.Errorf("binpack2d: item %d (%dx%d) cannot fit in a %dx%d bin",
				it.ID, it.Width, it.Height, m.width, m.height)
		}

		var ok bool
		switch m.opts.BinAlgo {
		case BinBestFit:
			ok = m.binBestFit(it)
		default:
			ok = m.binFirstFit(it)
		}
		if ok {
			continue
		}

		bin := m.openBin()
		if !bin.eng.Insert(it) {
			return fmt.Errorf("binpack2d: item %d (%dx%d) rejected by a freshly opened %dx%d bin",
				it.ID, it.Width, it.Height, m.width, m.height)
		}
	}
	m.pending = nil
	return nil
}

func (m *BinManager) fitsEmptyBin(it *Item) bool {
	if fitsOrientation(it.Width, it.Height, m.width, m.height) {
		return true
	}
	return m.opts.AllowRotate && fitsOrientation(it.Height, it.Width, m.width, m.height)
}

// binFirstFit tries each existing bin in opening order, committing to the
// first one that accepts the item.
func (m *BinManager) binFirstFit(it *Item) bool {
	for _, b := range m.bins {
		if b.eng.Insert(it) {
			return true
		}
	}
	return false
}

// binBestFit scores the item against every existing bin's engine without
// mutating it, then commits to whichever bin reports the lowest score.
func (m *BinManager) binBestFit(it *Item) bool {
	bestIdx := -1
	var best score
	for i, b := range m.bins {
		sc, ok := b.eng.FindBestScore(it)
		if !ok {
			continue
		}
		if bestIdx == -1 || sc.a < best.a || (sc.a == best.a && sc.b < best.b) {
			bestIdx, best = i, sc
		}
	}
	if bestIdx == -1 {
		return false
	}
	return m.bins[bestIdx].eng.Insert(it)
}

func (m *BinManager) openBin() *Bin {
	b := &Bin{
		ID:     uuid.New(),
		Width:  m.width,
		Height: m.height,
		eng:    newEngine(m.width, m.height, m.opts),
	}
	m.bins = append(m.bins, b)
	return b
}

// Bins returns every bin opened so far, in the order they were opened.
func (m *BinManager) Bins() []*Bin {
	return m.bins
}

func newEngine(width, height int, opts ManagerOptions) engine {
	switch opts.PackAlgo {
	case MaximalRectangleAlgo:
		return newMaxRectsEngine(width, height, opts.Heuristic, opts.AllowRotate)
	case ShelfAlgo:
		return newShelfEngine(width, height, opts.Heuristic, opts.AllowRotate, opts.WasteMap)
	case SkylineAlgo:
		return newSkylineEngine(width, height, opts.Heuristic, opts.AllowRotate, opts.WasteMap)
	default: // GuillotineAlgo
		return newGuillotineEngine(width, height, opts.Heuristic, opts.SplitHeuristic, opts.AllowRotate, opts.RectangleMerge)
	}
}
