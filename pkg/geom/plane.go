package geom

import "math"

// Plane is an orthonormal 2D drawing frame embedded in 3D space.
// U and V span the plane, Axis is its normal (the view direction).
type Plane struct {
	Origin Vector
	U, V   Vector
	Axis   Vector
}

// PlaneFromAxis builds a drawing plane whose normal is axis.
//
// The in-plane axes are chosen deterministically: U is the normalized
// cross product of the global Z axis with the view axis, falling back
// to the global X axis for vertical views, and V completes the frame
// so that U × V = Axis.
func PlaneFromAxis(axis Vector) Plane {
	n := axis.Normalize()
	up := Vector{Z: 1}
	u := up.Cross(n)
	if u.Length() < eps {
		// Axis parallel to Z: any horizontal direction works.
		u = Vector{X: 1}
	}
	u = u.Normalize()
	v := n.Cross(u)
	return Plane{U: u, V: v, Axis: n}
}

// Project maps a 3D point to the 2D coordinates of its orthogonal
// projection onto the plane. The y coordinate is negated so that it
// grows downward, matching SVG.
func Project(p Vector, pl Plane) Point {
	d := p.Sub(pl.Origin)
	return Point{X: d.Dot(pl.U), Y: -d.Dot(pl.V)}
}

// Rect is an axis-aligned bounding box in view-plane coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// BoundingBox projects every point onto the plane and folds min/max
// over both axes. A single point yields a zero-area box. An empty
// input is a caller error and is reported as ErrNoPoints.
func BoundingBox(points []Vector, pl Plane) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrNoPoints
	}
	p := Project(points[0], pl)
	box := Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	for _, pt := range points[1:] {
		p = Project(pt, pl)
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box, nil
}
