package wire

import "math"

// Fillet returns a copy of the wire in which each sharp corner between
// consecutive straight segments is replaced by a circular arc of the
// given radius, tangent to both segments.
//
// Corners are left sharp when the segments are collinear, when either
// segment is too short for the required trim, or when one of the
// adjoining edges is already an arc. A non-positive radius returns the
// wire unchanged (in sorted order).
func (w Wire) Fillet(radius float64) Wire {
	sorted := w.Sorted()
	if radius <= 0 || len(sorted.Edges) < 2 {
		return sorted
	}

	out := make([]Edge, 0, 2*len(sorted.Edges))
	curr := sorted.Edges[0]
	for _, next := range sorted.Edges[1:] {
		if curr.Kind != KindLine || next.Kind != KindLine {
			out = append(out, curr)
			curr = next
			continue
		}

		corner := curr.P2
		u := curr.P1.Sub(corner) // back along the incoming segment
		v := next.P2.Sub(corner) // along the outgoing segment
		lu, lv := u.Length(), v.Length()
		if lu < connectTol || lv < connectTol {
			out = append(out, curr)
			curr = next
			continue
		}
		u, v = u.Scale(1/lu), v.Scale(1/lv)

		// Half the interior corner angle determines trim and center
		// distances. Collinear segments (theta ~ pi) need no fillet;
		// doubled-back segments (theta ~ 0) cannot take one.
		cosTheta := math.Max(-1, math.Min(1, u.Dot(v)))
		theta := math.Acos(cosTheta)
		if theta < 1e-6 || math.Pi-theta < 1e-6 {
			out = append(out, curr)
			curr = next
			continue
		}
		half := theta / 2
		trim := radius / math.Tan(half)
		if trim >= lu || trim >= lv {
			out = append(out, curr)
			curr = next
			continue
		}

		a := corner.Add(u.Scale(trim)) // tangent point on the incoming segment
		b := corner.Add(v.Scale(trim)) // tangent point on the outgoing segment
		center := corner.Add(u.Add(v).Normalize().Scale(radius / math.Sin(half)))

		out = append(out, Line(curr.P1, a), Arc(a, b, center, radius))
		curr = Line(b, next.P2)
	}
	out = append(out, curr)
	return Wire{Edges: out}
}
