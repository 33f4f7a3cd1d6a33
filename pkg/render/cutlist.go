package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/svg"
)

// RenderCutList arranges one shape rendering per bar into a fixed-row
// table: row i holds bars[i], bordered at the full row size, with the
// bar's mark in the row's label band and the shape centered in the
// remaining cell.
//
// views pairs positionally with bars: a nil or single-element slice is
// broadcast to every bar, a shorter slice is padded with [AutoView].
// Extra views are ignored.
//
// A bar that fails to render gets an empty cell but keeps its row
// border and mark; the failures are joined into the returned error
// while the rest of the sheet is still produced. An empty bar list
// yields a minimal sheet of one empty row's size.
func RenderCutList(bars []rebar.Bar, views []View, opts ...Option) (*svg.Element, error) {
	cfg := newConfig(opts...)

	if len(bars) == 0 {
		doc := svg.Root()
		doc.Set("width", fmt.Sprintf("%smm", svg.FormatFloat(cfg.Width)))
		doc.Set("height", fmt.Sprintf("%smm", svg.FormatFloat(cfg.RowHeight)))
		doc.Set("viewBox", fmt.Sprintf("0 0 %s %s",
			svg.FormatFloat(cfg.Width), svg.FormatFloat(cfg.RowHeight)))
		return doc, nil
	}

	views = broadcastViews(views, len(bars))

	maxShapeHeight := cfg.RowHeight
	markBand := 0.0
	if cfg.IncludeMark {
		maxShapeHeight -= 2 * cfg.FontSize
		markBand = 2 * cfg.FontSize
	}

	doc := svg.Root()
	var errs []error
	for i, bar := range bars {
		shapeOpts := append(append([]Option(nil), opts...),
			WithMark(false),
			WithMaxHeight(maxShapeHeight),
			WithMaxWidth(cfg.Width),
		)
		shapeSVG, err := RenderShape(bar, views[i], shapeOpts...)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i, bar.Name(), err))
		}

		shapeWidth := mmAttr(shapeSVG, "width")
		shapeHeight := mmAttr(shapeSVG, "height")

		// Center the shape in its cell, below the label band.
		cell := svg.Group().Set("transform", fmt.Sprintf("translate(%s %s)",
			svg.FormatFloat((cfg.Width-shapeWidth)/2),
			svg.FormatFloat((maxShapeHeight-shapeHeight)/2+markBand)))
		for _, child := range shapeSVG.Children {
			if id, ok := child.Get("id"); ok && id == bar.Name() {
				cell.Append(child)
				break
			}
		}

		row := svg.Group().Set("transform", fmt.Sprintf("translate(0 %s)",
			svg.FormatFloat(float64(i)*cfg.RowHeight)))
		row.Append(svg.Rect(0, 0, cfg.Width, cfg.RowHeight, fmt.Sprintf("row_%d", i)))
		row.Append(cell)
		if cfg.IncludeMark {
			mark, _ := bar.DisplayMark()
			row.Append(svg.Text(mark, 2, 2*cfg.FontSize,
				cfg.FontFamily, 1.5*cfg.FontSize, ""))
		}
		doc.Append(row)
	}

	totalHeight := cfg.RowHeight * float64(len(bars))
	doc.Set("width", fmt.Sprintf("%smm", svg.FormatFloat(cfg.Width)))
	doc.Set("height", fmt.Sprintf("%smm", svg.FormatFloat(totalHeight)))
	doc.Set("viewBox", fmt.Sprintf("0 0 %s %s",
		svg.FormatFloat(cfg.Width), svg.FormatFloat(totalHeight)))

	return doc, errors.Join(errs...)
}

// broadcastViews pairs views with n bars: single views repeat, short
// slices pad with AutoView. The input is never mutated.
func broadcastViews(views []View, n int) []View {
	out := make([]View, n)
	switch {
	case len(views) == 1:
		for i := range out {
			out[i] = views[0]
		}
	default:
		copy(out, views)
		for i := len(views); i < n; i++ {
			out[i] = AutoView()
		}
	}
	return out
}

// mmAttr reads a millimeter-suffixed size attribute off a rendered
// fragment; fragments without the attribute (failed renders) count as
// zero-sized.
func mmAttr(e *svg.Element, key string) float64 {
	raw, ok := e.Get(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "mm"), 64)
	if err != nil {
		return 0
	}
	return v
}
