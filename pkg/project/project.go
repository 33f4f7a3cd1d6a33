package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rebarcad/cutlist/pkg/errors"
	"github.com/rebarcad/cutlist/pkg/geom"
	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/render"
	"github.com/rebarcad/cutlist/pkg/wire"
)

// Project is a parsed cut-list project file.
type Project struct {
	Bars   []BarDef  `toml:"bar"`
	Render RenderDef `toml:"render"`
}

// BarDef describes one bar. The centerline is a polyline of 3D points;
// consecutive points become straight wire segments. Exactly one of
// Mark or MarkNumber identifies the bar's mark.
type BarDef struct {
	Name       string       `toml:"name"`
	Mark       string       `toml:"mark"`
	MarkNumber *int         `toml:"mark_number"`
	Diameter   float64      `toml:"diameter"`
	Rounding   float64      `toml:"rounding"`
	Color      string       `toml:"color"`
	Points     [][3]float64 `toml:"points"`
}

// RenderDef carries the drawing settings of the [render] table.
// Zero values fall back to the renderer's defaults.
type RenderDef struct {
	StrokeWidth float64 `toml:"stroke_width"`
	ColorStyle  string  `toml:"color_style"`
	FontFamily  string  `toml:"font_family"`
	FontSize    float64 `toml:"font_size"`
	Precision   *int    `toml:"precision"`
	RowHeight   float64 `toml:"row_height"`
	Width       float64 `toml:"width"`
	IncludeMark *bool   `toml:"include_mark"`
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "read project file %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates project file contents.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project file")
	}
	for i, b := range p.Bars {
		if b.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidProject, "bar %d: missing name", i)
		}
		if err := errors.ValidateBarName(b.Name); err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		if err := errors.ValidateColor(b.Color); err != nil {
			return nil, fmt.Errorf("bar %q: %w", b.Name, err)
		}
		if len(b.Points) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidProject,
				"bar %q: centerline needs at least 2 points", b.Name)
		}
		if b.Diameter <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidProject,
				"bar %q: diameter must be positive", b.Name)
		}
		if b.Rounding < 0 {
			return nil, errors.New(errors.ErrCodeInvalidProject,
				"bar %q: rounding must not be negative", b.Name)
		}
	}
	return &p, nil
}

// Document converts the project's bar definitions into a renderable
// document: bars with a mark_number become base bars, all others
// sketch bars.
func (p *Project) Document() rebar.Document {
	var doc rebar.Document
	for _, b := range p.Bars {
		w := barWire(b)
		if b.MarkNumber != nil {
			doc.BaseBars = append(doc.BaseBars, rebar.BaseBar{
				BarName:    b.Name,
				MarkNumber: *b.MarkNumber,
				BarWire:    w,
				BarDia:     b.Diameter,
				BarRound:   b.Rounding,
				ShapeColor: b.Color,
			})
			continue
		}
		doc.SketchBars = append(doc.SketchBars, rebar.SketchBar{
			BarName:    b.Name,
			Mark:       b.Mark,
			BarWire:    w,
			BarDia:     b.Diameter,
			BarRound:   b.Rounding,
			ShapeColor: b.Color,
		})
	}
	return doc
}

// Options converts the [render] table into renderer options.
func (p *Project) Options() []render.Option {
	var opts []render.Option
	r := p.Render
	if r.StrokeWidth > 0 {
		opts = append(opts, render.WithStrokeWidth(r.StrokeWidth))
	}
	if r.ColorStyle != "" {
		opts = append(opts, render.WithColorStyle(r.ColorStyle))
	}
	if r.FontFamily != "" {
		opts = append(opts, render.WithFontFamily(r.FontFamily))
	}
	if r.FontSize > 0 {
		opts = append(opts, render.WithFontSize(r.FontSize))
	}
	if r.Precision != nil {
		opts = append(opts, render.WithPrecision(*r.Precision))
	}
	if r.RowHeight > 0 {
		opts = append(opts, render.WithRowHeight(r.RowHeight))
	}
	if r.Width > 0 {
		opts = append(opts, render.WithWidth(r.Width))
	}
	if r.IncludeMark != nil {
		opts = append(opts, render.WithMark(*r.IncludeMark))
	}
	return opts
}

// String summarizes the project for logs.
func (p *Project) String() string {
	return fmt.Sprintf("project with %d bars", len(p.Bars))
}

func barWire(b BarDef) wire.Wire {
	edges := make([]wire.Edge, 0, len(b.Points)-1)
	for i := 1; i < len(b.Points); i++ {
		p1 := b.Points[i-1]
		p2 := b.Points[i]
		edges = append(edges, wire.Line(
			geom.Vector{X: p1[0], Y: p1[1], Z: p1[2]},
			geom.Vector{X: p2[0], Y: p2[1], Z: p2[2]},
		))
	}
	return wire.New(edges...)
}
