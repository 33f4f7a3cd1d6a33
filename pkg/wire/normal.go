package wire

import "github.com/rebarcad/cutlist/pkg/geom"

// Normal returns the normal of the plane the wire lies in, derived
// from the first pair of non-parallel edge chords. The second result
// is false for straight (or empty) wires, which span no plane.
func (w Wire) Normal() (geom.Vector, bool) {
	edges := w.Sorted().Edges
	if len(edges) == 0 {
		return geom.Vector{}, false
	}
	first := edges[0].P2.Sub(edges[0].P1)
	for _, e := range edges[1:] {
		n := first.Cross(e.P2.Sub(e.P1))
		if !n.IsZero() {
			return n.Normalize(), true
		}
	}
	return geom.Vector{}, false
}
