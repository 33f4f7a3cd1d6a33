package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rebarcad/cutlist/pkg/errors"
	"github.com/rebarcad/cutlist/pkg/geom"
	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/svg"
	"github.com/rebarcad/cutlist/pkg/wire"
)

// RenderShape draws one bar's bent-wire shape, its per-segment length
// dimensions and (optionally) its mark into a self-contained SVG
// fragment sized to fit the configured canvas.
//
// The root element carries width/height in millimeters and a matching
// "0 0 w h" viewBox, both rounded to whole units. The shape group is
// transformed with scale-then-translate; stroke width and font size
// are divided back out of the scale so they keep their requested
// physical size at any zoom.
//
// An unresolvable view yields an empty <g> and an error carrying
// ErrCodeInvalidViewDirection; nothing is partially rendered.
func RenderShape(bar rebar.Bar, view View, opts ...Option) (*svg.Element, error) {
	cfg := newConfig(opts...)

	plane, err := view.resolve(bar)
	if err != nil {
		return svg.Group(), err
	}

	// The unfilleted wire keeps the nominal segment lengths for the
	// dimension labels; the filleted wire is what gets drawn.
	base := bar.Wire().Sorted()
	filleted := base
	filletRadius := bar.Rounding() * bar.Diameter()
	if filletRadius != 0 {
		filleted = bar.Wire().Fillet(filletRadius)
	}

	box, err := geom.BoundingBox(filleted.Vertices(), plane)
	if err != nil {
		return svg.Group(), errors.Wrap(errors.ErrCodeEmptyGeometry, err,
			"bar %q has no geometry to project", bar.Name())
	}

	strokeWidth := cfg.StrokeWidth
	fontSize := cfg.FontSize
	color := rebar.ResolveColor(bar, cfg.ColorStyle)

	doc := svg.Root()
	shape := svg.Group().Set("id", bar.Name())
	doc.Append(shape)
	edgesGroup := svg.Group()
	dimsGroup := svg.Group()
	shape.Append(edgesGroup, dimsGroup)

	// Vertical label allowance doubles when the mark sits above the
	// shape; horizontal allowance is one font size per side.
	markAllowance := 2.0
	markShift := 1.0
	if cfg.IncludeMark {
		markAllowance = 4
		markShift = 3
	}

	// A shape can project to a single point or a flat line, leaving one
	// or both extents at zero. A zero extent imposes no fit constraint;
	// a fully degenerate shape falls back to the explicit scale so the
	// canvas math stays finite.
	shapeWidth := box.Width()
	shapeHeight := box.Height()
	hScale, vScale := math.Inf(1), math.Inf(1)
	if cfg.MaxHeight != 0 && shapeHeight > 0 {
		vScale = (cfg.MaxHeight - fontSize*markAllowance - 2*strokeWidth) / shapeHeight
	}
	if cfg.MaxWidth != 0 && shapeWidth > 0 {
		hScale = (cfg.MaxWidth - 2*fontSize - 2*strokeWidth) / shapeWidth
	}
	scale := cfg.Scale
	if m := math.Min(hScale, vScale); !math.IsInf(m, 1) {
		scale = m
	}

	svgHeight := shapeHeight*scale + fontSize*markAllowance - 2*strokeWidth
	svgWidth := shapeWidth*scale + 2*fontSize - 2*strokeWidth

	// Move the bounding box corner just inside the label margin. The
	// group transform applies scale before translate, so translation
	// is expressed in pre-scale units.
	translateX := math.Round(-(box.MinX - (fontSize+strokeWidth)/scale))
	translateY := math.Round(-(box.MinY - markShift*fontSize/scale - strokeWidth/scale))
	shape.Set("transform", fmt.Sprintf("scale(%s) translate(%s %s)",
		svg.FormatFloat(scale), svg.FormatFloat(translateX), svg.FormatFloat(translateY)))

	doc.Set("width", fmt.Sprintf("%dmm", int(math.Round(svgWidth))))
	doc.Set("height", fmt.Sprintf("%dmm", int(math.Round(svgHeight))))
	doc.Set("viewBox", fmt.Sprintf("0 0 %d %d",
		int(math.Round(svgWidth)), int(math.Round(svgHeight))))

	// Undo the group scale on stroke and font so they render at the
	// requested physical size regardless of zoom.
	strokeWidth /= scale
	fontSize /= scale

	if cfg.IncludeMark {
		mark, _ := bar.DisplayMark()
		shape.Append(svg.Text(mark, box.MinX, box.MinY-1.5*fontSize,
			cfg.FontFamily, 1.5*fontSize, ""))
	}

	baseEdges := base.Edges
	straightIndex := 0
	for _, edge := range filleted.Edges {
		var edgeSVG *svg.Element
		switch edge.Kind {
		case wire.KindLine:
			p1 := geom.Project(edge.P1, plane)
			p2 := geom.Project(edge.P2, plane)
			if math.Round(p1.X) == math.Round(p2.X) && math.Round(p1.Y) == math.Round(p2.Y) {
				// Segment is perpendicular to the view plane.
				edgeSVG = svg.Point(p1, 2*strokeWidth, color)
			} else {
				edgeSVG = svg.Line(p1, p2, strokeWidth, color)
			}

			mid := geom.Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
			rotation := -90.0
			if math.Round(p1.X) != math.Round(p2.X) {
				rotation = math.Atan((p2.Y-p1.Y)/(p2.X-p1.X)) * 180 / math.Pi
			}

			var trueLength float64
			if straightIndex < len(baseEdges) {
				trueLength = baseEdges[straightIndex].Length()
			}
			label := svg.Text(formatLength(trueLength, cfg.Precision),
				mid.X, mid.Y-2*strokeWidth, cfg.FontFamily, fontSize, "middle")
			label.Set("transform", fmt.Sprintf("rotate(%s %s %s)",
				svg.FormatFloat(rotation),
				svg.FormatFloat(math.Round(mid.X)), svg.FormatFloat(math.Round(mid.Y))))
			dimsGroup.Append(label)
			straightIndex++
		case wire.KindArc:
			p1 := geom.Project(edge.P1, plane)
			p2 := geom.Project(edge.P2, plane)
			if math.Round(p1.X) == math.Round(p2.X) || math.Round(p1.Y) == math.Round(p2.Y) {
				// Arc collapses to a straight stroke in this view.
				edgeSVG = svg.Line(p1, p2, strokeWidth, color)
			} else {
				sweep := arcSweep(edge, plane)
				edgeSVG = svg.RoundCorner(p1, p2, filletRadius, sweep, strokeWidth, color)
			}
		default:
			edgeSVG = svg.Group()
		}
		edgesGroup.Append(edgeSVG)
	}

	return doc, nil
}

// arcSweep picks the SVG sweep flag so a fillet arc bows away from its
// center: true when the projected center lies on the positive side of
// the chord from P1 to P2.
func arcSweep(e wire.Edge, plane geom.Plane) bool {
	p1 := geom.Project(e.P1, plane)
	p2 := geom.Project(e.P2, plane)
	c := geom.Project(e.Center, plane)
	cross := (p2.X-p1.X)*(c.Y-p1.Y) - (p2.Y-p1.Y)*(c.X-p1.X)
	return cross > 0
}

// formatLength renders a length at the given decimal precision with
// trailing zeros (and a dangling decimal point) stripped, so 50.00
// prints as "50" and 33.333 at precision 2 as "33.33".
func formatLength(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
