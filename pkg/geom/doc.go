// Package geom provides the small amount of 3D vector math needed to
// flatten bent-wire geometry onto a 2D drawing plane.
//
// The coordinate convention follows technical drawing practice: a
// [Plane] carries an origin and two orthonormal in-plane axes, and
// [Project] maps a 3D point to plane coordinates with y growing
// downward (SVG convention).
package geom
