// Package rebar models reinforcement bars as the renderer sees them:
// a bent-wire centerline plus diameter, corner rounding, a display
// mark and a display color.
//
// Two concrete kinds exist, mirroring the two bar families of the host
// CAD application: [SketchBar] carries a free-form string mark, while
// [BaseBar] carries an integer mark number. Both satisfy [Bar], which
// exposes the mark uniformly through DisplayMark.
package rebar
