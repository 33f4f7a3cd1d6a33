package rebar

import (
	"strconv"

	"github.com/rebarcad/cutlist/pkg/wire"
)

// Bar is a reinforcement bar as consumed by the renderer. Bars are
// immutable for the duration of a render call.
type Bar interface {
	// Name identifies the bar object within its document.
	Name() string
	// Wire returns the bent centerline geometry.
	Wire() wire.Wire
	// Diameter returns the bar diameter, in drawing units.
	Diameter() float64
	// Rounding returns the corner-rounding ratio. The fillet radius is
	// Rounding times Diameter; zero means sharp corners.
	Rounding() float64
	// DisplayMark returns the bar's mark label and whether one is set.
	DisplayMark() (string, bool)
	// Color returns the bar's own shape color as a CSS color value.
	Color() string
}

// SketchBar is a bar carrying a user-assigned string mark.
type SketchBar struct {
	BarName    string
	Mark       string
	BarWire    wire.Wire
	BarDia     float64
	BarRound   float64
	ShapeColor string
}

func (b SketchBar) Name() string      { return b.BarName }
func (b SketchBar) Wire() wire.Wire   { return b.BarWire }
func (b SketchBar) Diameter() float64 { return b.BarDia }
func (b SketchBar) Rounding() float64 { return b.BarRound }

// DisplayMark returns the mark string; an empty mark counts as unset.
func (b SketchBar) DisplayMark() (string, bool) {
	return b.Mark, b.Mark != ""
}

func (b SketchBar) Color() string { return b.ShapeColor }

// BaseBar is a bar identified by an integer mark number.
type BaseBar struct {
	BarName    string
	MarkNumber int
	BarWire    wire.Wire
	BarDia     float64
	BarRound   float64
	ShapeColor string
}

func (b BaseBar) Name() string      { return b.BarName }
func (b BaseBar) Wire() wire.Wire   { return b.BarWire }
func (b BaseBar) Diameter() float64 { return b.BarDia }
func (b BaseBar) Rounding() float64 { return b.BarRound }

// DisplayMark returns the mark number formatted as a string.
func (b BaseBar) DisplayMark() (string, bool) {
	return strconv.Itoa(b.MarkNumber), true
}

func (b BaseBar) Color() string { return b.ShapeColor }

// markOf returns a bar's mark, or the empty string when none is set.
func markOf(b Bar) string {
	if m, ok := b.DisplayMark(); ok {
		return m
	}
	return ""
}
