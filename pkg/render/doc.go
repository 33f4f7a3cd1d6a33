// Package render turns bar geometry into 2D technical drawings.
//
// # Overview
//
// [RenderShape] draws a single bar's bent-wire shape with per-segment
// length dimensions into a canvas-fit SVG fragment. [RenderCutList]
// stacks many such shapes into a fixed-row-height cut-list sheet, one
// row per bar.
//
//	bars := doc.ListBars(true)
//	sheet, err := render.RenderCutList(bars, nil,
//		render.WithRowHeight(40),
//		render.WithWidth(60),
//		render.WithPrecision(2))
//	os.WriteFile("cutlist.svg", sheet.Bytes(), 0644)
//
// # View directions
//
// The view onto a bar is a closed sum type, [View]: automatic
// orientation from the bar's own span axis, an explicit direction
// vector, or an explicit drawing plane. Anything else is the invalid
// view, which renders nothing and reports INVALID_VIEW_DIRECTION.
//
// # Purity
//
// Rendering is a pure computation: all configuration (including the
// unit decimal precision) is passed in per call via [Option] values,
// output is an append-only element tree, and no state survives the
// call.
package render
