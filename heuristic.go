package binpack2d

import "fmt"

// PackAlgo selects which placement engine a Bin uses.
type PackAlgo int

const (
	GuillotineAlgo PackAlgo = iota
	MaximalRectangleAlgo
	ShelfAlgo
	SkylineAlgo
)

// Validate reports whether a is a recognized algorithm.
func (a PackAlgo) Validate() error {
	switch a {
	case GuillotineAlgo, MaximalRectangleAlgo, ShelfAlgo, SkylineAlgo:
		return nil
	default:
		return fmt.Errorf("binpack2d: unknown pack algorithm %d", a)
	}
}

func (a PackAlgo) String() string {
	switch a {
	case GuillotineAlgo:
		return "guillotine"
	case MaximalRectangleAlgo:
		return "maximal_rectangle"
	case ShelfAlgo:
		return "shelf"
	case SkylineAlgo:
		return "skyline"
	default:
		return "unknown"
	}
}

// BinAlgo selects how the manager chooses which bin receives an item.
type BinAlgo int

const (
	BinFirstFit BinAlgo = iota
	BinBestFit
)

// Validate reports whether a is a recognized bin-selection algorithm.
func (a BinAlgo) Validate() error {
	switch a {
	case BinFirstFit, BinBestFit:
		return nil
	default:
		return fmt.Errorf("binpack2d: unknown bin algorithm %d", a)
	}
}

// Heuristic names a placement-scoring strategy. Validity is engine
// specific: see Validate for the subset each algorithm accepts.
// Smaller scores are always better by this package's convention; where the
// underlying metric is naturally "higher is better" (contact point), the
// engine negates it before comparing.
type Heuristic string

const (
	// Guillotine and Maximal Rectangles.
	BestArea      Heuristic = "best_area"
	BestShortSide Heuristic = "best_shortside"
	BestLongSide  Heuristic = "best_longside"

	// Guillotine only.
	WorstArea      Heuristic = "worst_area"
	WorstShortSide Heuristic = "worst_shortside"
	WorstLongSide  Heuristic = "worst_longside"

	// Maximal Rectangles only.
	BottomLeft   Heuristic = "bottom_left" // also valid for Skyline
	ContactPoint Heuristic = "contact_point"

	// Skyline only.
	BestFit Heuristic = "best_fit"

	// Shelf only.
	NextFit        Heuristic = "next_fit"
	FirstFit       Heuristic = "first_fit"
	BestWidthFit   Heuristic = "best_width_fit"
	BestHeightFit  Heuristic = "best_height_fit"
	BestAreaFit    Heuristic = "best_area_fit"
	WorstWidthFit  Heuristic = "worst_width_fit"
	WorstHeightFit Heuristic = "worst_height_fit"
	WorstAreaFit   Heuristic = "worst_area_fit"
)

// Validate reports whether h is one of the heuristics recognized by algo.
func (h Heuristic) Validate(algo PackAlgo) error {
	switch algo {
	case GuillotineAlgo:
		switch h {
		case BestArea, BestShortSide, BestLongSide, WorstArea, WorstShortSide, WorstLongSide:
			return nil
		}
	case MaximalRectangleAlgo:
		switch h {
		case BestArea, BestShortSide, BestLongSide, BottomLeft, ContactPoint:
			return nil
		}
	case ShelfAlgo:
		switch h {
		case NextFit, FirstFit, BestWidthFit, BestHeightFit, BestAreaFit,
			WorstWidthFit, WorstHeightFit, WorstAreaFit:
			return nil
		}
	case SkylineAlgo:
		switch h {
		case BottomLeft, BestFit:
			return nil
		}
	}
	return fmt.Errorf("binpack2d: heuristic %q is invalid for algorithm %s", h, algo)
}

// SplitHeuristic selects the guillotine cut axis rule. The cut axis is
// chosen from the shorter/longer of: the leftover space after placement
// (SLAS/LLAS), the free rectangle's own axis lengths (SAS/LAS), or the
// difference in area the cut produces (SDAS/LDAS).
type SplitHeuristic int

const (
	SAS  SplitHeuristic = iota // split along the shorter axis of the free rectangle
	LAS                        // split along the longer axis of the free rectangle
	SLAS                       // split along the shorter leftover axis
	LLAS                       // split along the longer leftover axis
	SDAS                       // give the shared corner to the larger remainder, maximizing their area difference
	LDAS                       // give the shared corner to the smaller remainder, keeping the two as even as possible
)

// Validate reports whether s is a recognized split heuristic.
func (s SplitHeuristic) Validate() error {
	switch s {
	case SAS, LAS, SLAS, LLAS, SDAS, LDAS:
		return nil
	default:
		return fmt.Errorf("binpack2d: unknown split heuristic %d", s)
	}
}

// SortingHeuristic selects the key used to pre-sort items before packing.
type SortingHeuristic string

const (
	ASCA      SortingHeuristic = "ASCA"
	DESCA     SortingHeuristic = "DESCA"
	ASCSS     SortingHeuristic = "ASCSS"
	DESCSS    SortingHeuristic = "DESCSS"
	ASCLS     SortingHeuristic = "ASCLS"
	DESCLS    SortingHeuristic = "DESCLS"
	ASCPERIM  SortingHeuristic = "ASCPERIM"
	DESCPERIM SortingHeuristic = "DESCPERIM"
	ASCDIFF   SortingHeuristic = "ASCDIFF"
	DESCDIFF  SortingHeuristic = "DESCDIFF"
	ASCRATIO  SortingHeuristic = "ASCRATIO"
	DESCRATIO SortingHeuristic = "DESCRATIO"
)
