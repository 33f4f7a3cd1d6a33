package render

import (
	"github.com/rebarcad/cutlist/pkg/errors"
	"github.com/rebarcad/cutlist/pkg/geom"
	"github.com/rebarcad/cutlist/pkg/rebar"
)

type viewKind int

const (
	viewInvalid viewKind = iota
	viewAuto
	viewVector
	viewPlane
)

// View selects how a bar is oriented onto the drawing plane. The zero
// value is the invalid view, which renders nothing; construct views
// with [AutoView], [VectorView] or [PlaneView].
type View struct {
	kind  viewKind
	vec   geom.Vector
	plane geom.Plane
}

// AutoView orients the drawing from the bar's own span axis.
func AutoView() View {
	return View{kind: viewAuto}
}

// VectorView orients the drawing orthogonal to the given direction.
// The zero vector behaves like [AutoView], matching the host
// convention of a null vector meaning "choose for me".
func VectorView(v geom.Vector) View {
	return View{kind: viewVector, vec: v}
}

// PlaneView uses the given drawing plane unchanged.
func PlaneView(p geom.Plane) View {
	return View{kind: viewPlane, plane: p}
}

// InvalidView is the explicit unsupported-input view. Hosts funnel
// view directions of unknown provenance through it to get the
// documented INVALID_VIEW_DIRECTION failure instead of a panic.
func InvalidView() View {
	return View{kind: viewInvalid}
}

// resolve turns the view into a concrete drawing plane for a bar.
func (v View) resolve(b rebar.Bar) (geom.Plane, error) {
	switch v.kind {
	case viewAuto:
		return geom.PlaneFromAxis(spanAxis(b)), nil
	case viewVector:
		if v.vec.IsZero() {
			return geom.PlaneFromAxis(spanAxis(b)), nil
		}
		return geom.PlaneFromAxis(v.vec), nil
	case viewPlane:
		return v.plane, nil
	default:
		return geom.Plane{}, errors.New(errors.ErrCodeInvalidViewDirection,
			"unsupported view direction; use AutoView, VectorView or PlaneView")
	}
}

// spanAxis returns the natural view axis for a bar: the normal of the
// plane its wire lies in, or the global Y axis for straight bars.
func spanAxis(b rebar.Bar) geom.Vector {
	if n, ok := b.Wire().Normal(); ok {
		return n
	}
	return geom.Vector{Y: 1}
}
