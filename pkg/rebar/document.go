package rebar

import "sort"

// Document is a read-only collection of bars, in the order the host
// document lists them.
type Document struct {
	SketchBars []SketchBar
	BaseBars   []BaseBar
}

// ListBars collects the document's bars for cut-list rendering.
//
// Sketch bars come first in document order, then base bars sorted
// ascending by mark number (stable). With onePerMark set, only the
// first bar of each mark is kept, across both kinds: a base bar whose
// stringified mark number collides with an earlier sketch mark is
// dropped too.
func (d Document) ListBars(onePerMark bool) []Bar {
	bars := make([]Bar, 0, len(d.SketchBars)+len(d.BaseBars))
	seen := make(map[string]bool)

	for _, b := range d.SketchBars {
		if onePerMark {
			m := markOf(b)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
		}
		bars = append(bars, b)
	}

	base := append([]BaseBar(nil), d.BaseBars...)
	sort.SliceStable(base, func(i, j int) bool {
		return base[i].MarkNumber < base[j].MarkNumber
	})
	for _, b := range base {
		if onePerMark {
			m := markOf(b)
			if seen[m] {
				continue
			}
			seen[m] = true
		}
		bars = append(bars, b)
	}

	return bars
}
