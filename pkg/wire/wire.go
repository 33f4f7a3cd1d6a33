package wire

import "github.com/rebarcad/cutlist/pkg/geom"

// connectTol is the distance below which two edge endpoints are
// considered the same vertex.
const connectTol = 1e-6

// Wire is an ordered, connected sequence of edges forming a bar's
// centerline path.
type Wire struct {
	Edges []Edge
}

// New returns a wire over the given edges.
func New(edges ...Edge) Wire {
	return Wire{Edges: edges}
}

// Vertices returns the endpoints of every edge, in edge order.
// Shared endpoints of consecutive edges appear twice; callers folding
// a bounding box are unaffected by the duplication.
func (w Wire) Vertices() []geom.Vector {
	pts := make([]geom.Vector, 0, 2*len(w.Edges))
	for _, e := range w.Edges {
		pts = append(pts, e.P1, e.P2)
	}
	return pts
}

// Sorted returns a copy of the wire with its edges arranged in
// connectivity order: each edge starts at the previous edge's end
// vertex, with individual edges flipped as needed. Edges that cannot
// be connected to the chain are appended unchanged at the end.
func (w Wire) Sorted() Wire {
	if len(w.Edges) < 2 {
		return Wire{Edges: append([]Edge(nil), w.Edges...)}
	}

	remaining := append([]Edge(nil), w.Edges...)
	chain := []Edge{remaining[0]}
	remaining = remaining[1:]

	for len(remaining) > 0 {
		head := chain[0].P1
		tail := chain[len(chain)-1].P2
		matched := false
		for i, e := range remaining {
			switch {
			case samePoint(e.P1, tail):
				chain = append(chain, e)
			case samePoint(e.P2, tail):
				chain = append(chain, e.reversed())
			case samePoint(e.P2, head):
				chain = append([]Edge{e}, chain...)
			case samePoint(e.P1, head):
				chain = append([]Edge{e.reversed()}, chain...)
			default:
				continue
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
			matched = true
			break
		}
		if !matched {
			chain = append(chain, remaining...)
			break
		}
	}
	return Wire{Edges: chain}
}

// samePoint reports whether a and b are the same vertex within tolerance.
func samePoint(a, b geom.Vector) bool {
	return a.Sub(b).Length() < connectTol
}
