package wire

import (
	"math"

	"github.com/rebarcad/cutlist/pkg/geom"
)

// Kind discriminates the supported edge geometries.
type Kind int

const (
	// KindLine is a straight segment between two points.
	KindLine Kind = iota
	// KindArc is a circular arc between two points around a center.
	KindArc
)

// Edge is one element of a wire: a straight segment or a circular arc.
// Arcs additionally carry the defining circle (Center, Radius).
type Edge struct {
	Kind   Kind
	P1, P2 geom.Vector
	Center geom.Vector
	Radius float64
}

// Line returns a straight edge from p1 to p2.
func Line(p1, p2 geom.Vector) Edge {
	return Edge{Kind: KindLine, P1: p1, P2: p2}
}

// Arc returns a circular arc from p1 to p2 around center.
func Arc(p1, p2, center geom.Vector, radius float64) Edge {
	return Edge{Kind: KindArc, P1: p1, P2: p2, Center: center, Radius: radius}
}

// Length returns the arc length of the edge: the chord length for
// straight segments, radius times the subtended angle for arcs.
// Fillet arcs never exceed half a turn, so the minor arc is taken.
func (e Edge) Length() float64 {
	if e.Kind == KindLine {
		return e.P2.Sub(e.P1).Length()
	}
	return e.Radius * e.angle()
}

// angle returns the angle subtended by an arc at its center.
func (e Edge) angle() float64 {
	u := e.P1.Sub(e.Center).Normalize()
	w := e.P2.Sub(e.Center).Normalize()
	d := u.Dot(w)
	d = math.Max(-1, math.Min(1, d))
	return math.Acos(d)
}

// reversed returns the edge with its endpoints swapped.
func (e Edge) reversed() Edge {
	e.P1, e.P2 = e.P2, e.P1
	return e
}
