// Package wire models a bent-bar centerline as an ordered sequence of
// straight segments and circular arcs.
//
// A [Wire] is built from edges in any order; [Wire.Sorted] recovers the
// canonical connectivity order in which consecutive edges share
// endpoints. [Wire.Fillet] replaces sharp corners between straight
// segments with tangent arcs, which is how bar bending radii are
// introduced before drawing.
package wire
