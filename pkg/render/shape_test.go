package render

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/rebarcad/cutlist/pkg/errors"
	"github.com/rebarcad/cutlist/pkg/geom"
	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/svg"
	"github.com/rebarcad/cutlist/pkg/wire"
)

// frontPlane projects X to the right and Z upward (screen y negative).
var frontPlane = geom.Plane{U: geom.Vector{X: 1}, V: geom.Vector{Z: 1}, Axis: geom.Vector{Y: 1}}

func straightBar(length float64) rebar.SketchBar {
	return rebar.SketchBar{
		BarName: "Bar001",
		Mark:    "A1",
		BarWire: wire.New(wire.Line(geom.Vector{}, geom.Vector{X: length})),
		BarDia:  12,
	}
}

func lBar(rounding float64) rebar.SketchBar {
	return rebar.SketchBar{
		BarName: "Bar002",
		Mark:    "A2",
		BarWire: wire.New(
			wire.Line(geom.Vector{}, geom.Vector{X: 50}),
			wire.Line(geom.Vector{X: 50}, geom.Vector{X: 50, Z: 30}),
		),
		BarDia:   12,
		BarRound: rounding,
	}
}

// shapeParts unpacks the fragment produced by RenderShape: the shape
// group and its edge and dimension containers.
func shapeParts(t *testing.T, doc *svg.Element) (shape, edges, dims *svg.Element) {
	t.Helper()
	if len(doc.Children) != 1 {
		t.Fatalf("fragment has %d top-level children, want 1 shape group", len(doc.Children))
	}
	shape = doc.Children[0]
	if len(shape.Children) < 2 {
		t.Fatalf("shape group has %d children, want edge and dimension groups", len(shape.Children))
	}
	return shape, shape.Children[0], shape.Children[1]
}

func dimLabels(dims *svg.Element) []string {
	labels := make([]string, len(dims.Children))
	for i, c := range dims.Children {
		labels[i] = c.Text
	}
	return labels
}

func viewBoxDims(t *testing.T, doc *svg.Element) (w, h int) {
	t.Helper()
	vb, ok := doc.Get("viewBox")
	if !ok {
		t.Fatal("fragment missing viewBox")
	}
	fields := strings.Fields(vb)
	if len(fields) != 4 || fields[0] != "0" || fields[1] != "0" {
		t.Fatalf("viewBox = %q, want \"0 0 w h\"", vb)
	}
	w, _ = strconv.Atoi(fields[2])
	h, _ = strconv.Atoi(fields[3])
	return w, h
}

func mmValue(t *testing.T, doc *svg.Element, key string) float64 {
	t.Helper()
	raw, ok := doc.Get(key)
	if !ok {
		t.Fatalf("fragment missing %s", key)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "mm"), 64)
	if err != nil {
		t.Fatalf("%s = %q: %v", key, raw, err)
	}
	return v
}

func TestRenderShapeLengthLabels(t *testing.T) {
	tests := []struct {
		name      string
		length    float64
		precision int
		want      string
	}{
		{name: "integer length drops decimals", length: 50, precision: 2, want: "50"},
		{name: "fraction is rounded to precision", length: 33.333, precision: 2, want: "33.33"},
		{name: "trailing zero stripped", length: 12.5, precision: 2, want: "12.5"},
		{name: "precision zero", length: 33.333, precision: 0, want: "33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := RenderShape(straightBar(tt.length), PlaneView(frontPlane),
				WithPrecision(tt.precision))
			if err != nil {
				t.Fatalf("RenderShape() error = %v", err)
			}
			_, _, dims := shapeParts(t, doc)
			labels := dimLabels(dims)
			if len(labels) != 1 || labels[0] != tt.want {
				t.Errorf("labels = %v, want [%s]", labels, tt.want)
			}
		})
	}
}

func TestRenderShapeTrueLengthsSurviveFilleting(t *testing.T) {
	// Rounding 0.25 at diameter 12 trims both legs by the 3mm fillet,
	// but labels must keep the nominal 50 and 30.
	doc, err := RenderShape(lBar(0.25), PlaneView(frontPlane))
	if err != nil {
		t.Fatalf("RenderShape() error = %v", err)
	}
	_, edges, dims := shapeParts(t, doc)

	if got := dimLabels(dims); len(got) != 2 || got[0] != "50" || got[1] != "30" {
		t.Errorf("labels = %v, want [50 30]", got)
	}

	if len(edges.Children) != 3 {
		t.Fatalf("edge count = %d, want 3 (line, arc, line)", len(edges.Children))
	}
	if name := edges.Children[1].Name; name != "path" {
		t.Errorf("middle edge = %q, want path (fillet arc)", name)
	}
}

func TestRenderShapeScalingInvariance(t *testing.T) {
	render := func(scale float64) *svg.Element {
		doc, err := RenderShape(lBar(0), PlaneView(frontPlane), WithScale(scale))
		if err != nil {
			t.Fatalf("RenderShape() error = %v", err)
		}
		return doc
	}

	doc1 := render(1)
	doc2 := render(2)

	w1, h1 := viewBoxDims(t, doc1)
	w2, h2 := viewBoxDims(t, doc2)
	// Shape is 50x30; canvas adds the label margins on top of the
	// scaled shape extent.
	if w1 != 53 || h1 != 37 {
		t.Errorf("scale 1 viewBox = %dx%d, want 53x37", w1, h1)
	}
	if w2 != 103 || h2 != 67 {
		t.Errorf("scale 2 viewBox = %dx%d, want 103x67", w2, h2)
	}

	// Stroke width and font size compensate the group scale, so the
	// effective (attribute x scale) size is identical across renders.
	for _, tc := range []struct {
		doc   *svg.Element
		scale float64
	}{{doc1, 1}, {doc2, 2}} {
		_, edges, dims := shapeParts(t, tc.doc)
		swAttr, _ := edges.Children[0].Get("stroke-width")
		sw, _ := strconv.ParseFloat(swAttr, 64)
		if got := sw * tc.scale; math.Abs(got-0.35) > 1e-9 {
			t.Errorf("scale %v: effective stroke width = %v, want 0.35", tc.scale, got)
		}
		fsAttr, _ := dims.Children[0].Get("font-size")
		fs, _ := strconv.ParseFloat(fsAttr, 64)
		if got := fs * tc.scale; math.Abs(got-2) > 1e-9 {
			t.Errorf("scale %v: effective font size = %v, want 2", tc.scale, got)
		}
	}
}

func TestRenderShapeFitsConstraints(t *testing.T) {
	doc, err := RenderShape(lBar(0), PlaneView(frontPlane),
		WithMark(false), WithMaxHeight(40), WithMaxWidth(60))
	if err != nil {
		t.Fatalf("RenderShape() error = %v", err)
	}

	if h := mmValue(t, doc, "height"); h > 40.5 {
		t.Errorf("height = %v, exceeds max 40", h)
	}
	if w := mmValue(t, doc, "width"); w > 60.5 {
		t.Errorf("width = %v, exceeds max 60", w)
	}
}

func TestRenderShapeDegenerateEdgeIsDot(t *testing.T) {
	// Edge along the view axis projects to a single point.
	bar := rebar.SketchBar{
		BarName: "Bar009",
		Mark:    "D1",
		BarWire: wire.New(wire.Line(geom.Vector{}, geom.Vector{Y: 100})),
		BarDia:  12,
	}
	doc, err := RenderShape(bar, PlaneView(frontPlane))
	if err != nil {
		t.Fatalf("RenderShape() error = %v", err)
	}
	_, edges, _ := shapeParts(t, doc)

	if len(edges.Children) != 1 {
		t.Fatalf("edge count = %d, want 1", len(edges.Children))
	}
	dot := edges.Children[0]
	if dot.Name != "circle" {
		t.Fatalf("degenerate edge rendered as %q, want circle", dot.Name)
	}
	if r, _ := dot.Get("r"); r != "0.7" {
		t.Errorf("dot radius = %q, want 0.7 (2x stroke width)", r)
	}
}

func TestRenderShapePointProjectionUnderConstraints(t *testing.T) {
	// A bar along the view axis has zero extent on both axes, so the
	// fit constraints must not drive the scale (or the canvas math)
	// through a division by zero.
	bar := rebar.SketchBar{
		BarName: "Bar011",
		Mark:    "D2",
		BarWire: wire.New(wire.Line(geom.Vector{}, geom.Vector{Y: 100})),
		BarDia:  12,
	}
	doc, err := RenderShape(bar, PlaneView(frontPlane),
		WithMaxHeight(36), WithMaxWidth(60))
	if err != nil {
		t.Fatalf("RenderShape() error = %v", err)
	}

	if got, _ := doc.Get("width"); got != "3mm" {
		t.Errorf("width = %q, want 3mm", got)
	}
	if got, _ := doc.Get("height"); got != "7mm" {
		t.Errorf("height = %q, want 7mm", got)
	}
	if got, _ := doc.Get("viewBox"); got != "0 0 3 7" {
		t.Errorf("viewBox = %q, want 0 0 3 7", got)
	}

	shape, edges, _ := shapeParts(t, doc)
	if got, _ := shape.Get("transform"); got != "scale(1) translate(2 6)" {
		t.Errorf("transform = %q, want scale(1) translate(2 6)", got)
	}
	if r, _ := edges.Children[0].Get("r"); r != "0.7" {
		t.Errorf("dot radius = %q, want 0.7", r)
	}
}

func TestRenderShapeVerticalLabelRotation(t *testing.T) {
	bar := rebar.SketchBar{
		BarName: "Bar010",
		Mark:    "V1",
		BarWire: wire.New(wire.Line(geom.Vector{}, geom.Vector{Z: 30})),
		BarDia:  12,
	}
	doc, err := RenderShape(bar, PlaneView(frontPlane))
	if err != nil {
		t.Fatalf("RenderShape() error = %v", err)
	}
	_, _, dims := shapeParts(t, doc)

	tr, _ := dims.Children[0].Get("transform")
	if !strings.HasPrefix(tr, "rotate(-90 ") {
		t.Errorf("label transform = %q, want rotate(-90 ...)", tr)
	}
}

func TestRenderShapeMark(t *testing.T) {
	t.Run("mark rendered above the shape", func(t *testing.T) {
		doc, err := RenderShape(lBar(0), PlaneView(frontPlane))
		if err != nil {
			t.Fatalf("RenderShape() error = %v", err)
		}
		shape, _, _ := shapeParts(t, doc)
		if len(shape.Children) != 3 {
			t.Fatalf("shape group has %d children, want 3 (edges, dims, mark)", len(shape.Children))
		}
		mark := shape.Children[2]
		if mark.Name != "text" || mark.Text != "A2" {
			t.Errorf("mark element = %s %q, want text A2", mark.Name, mark.Text)
		}
	})

	t.Run("mark omitted", func(t *testing.T) {
		doc, err := RenderShape(lBar(0), PlaneView(frontPlane), WithMark(false))
		if err != nil {
			t.Fatalf("RenderShape() error = %v", err)
		}
		shape, _, _ := shapeParts(t, doc)
		if len(shape.Children) != 2 {
			t.Errorf("shape group has %d children, want 2 without mark", len(shape.Children))
		}
	})
}

func TestRenderShapeInvalidView(t *testing.T) {
	doc, err := RenderShape(lBar(0), InvalidView())
	if err == nil {
		t.Fatal("RenderShape() with invalid view returned nil error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidViewDirection) {
		t.Errorf("error code = %v, want INVALID_VIEW_DIRECTION", errors.GetCode(err))
	}
	if doc.Name != "g" || len(doc.Children) != 0 {
		t.Errorf("invalid view fragment = %s with %d children, want empty g",
			doc.Name, len(doc.Children))
	}
}

func TestRenderShapeEmptyGeometry(t *testing.T) {
	bar := rebar.SketchBar{BarName: "Bar000", Mark: "E1", BarDia: 12}
	doc, err := RenderShape(bar, PlaneView(frontPlane))
	if err == nil {
		t.Fatal("RenderShape() with no edges returned nil error")
	}
	if !errors.Is(err, errors.ErrCodeEmptyGeometry) {
		t.Errorf("error code = %v, want EMPTY_GEOMETRY", errors.GetCode(err))
	}
	if doc.Name != "g" || len(doc.Children) != 0 {
		t.Errorf("empty geometry fragment = %s with %d children, want empty g",
			doc.Name, len(doc.Children))
	}
}

func TestRenderShapeAutoView(t *testing.T) {
	tests := []struct {
		name string
		view View
	}{
		{name: "auto view", view: AutoView()},
		{name: "zero vector behaves as auto", view: VectorView(geom.Vector{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := RenderShape(lBar(0), tt.view)
			if err != nil {
				t.Fatalf("RenderShape() error = %v", err)
			}
			_, edges, _ := shapeParts(t, doc)
			// The L-bar spans a plane; the auto view must see both legs.
			if len(edges.Children) != 2 {
				t.Errorf("edge count = %d, want 2", len(edges.Children))
			}
			for _, e := range edges.Children {
				if e.Name != "line" {
					t.Errorf("edge rendered as %q, want line", e.Name)
				}
			}
		})
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{50, 2, "50"},
		{33.333, 2, "33.33"},
		{12.5, 3, "12.5"},
		{0, 2, "0"},
		{7.25, 0, "7"},
		{100.004, 2, "100"},
		{3.5, -1, "4"},
	}
	for _, tt := range tests {
		if got := formatLength(tt.v, tt.precision); got != tt.want {
			t.Errorf("formatLength(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}
