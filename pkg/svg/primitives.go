package svg

import (
	"fmt"

	"github.com/rebarcad/cutlist/pkg/geom"
)

// Root returns an empty SVG root element.
func Root() *Element {
	root := NewElement("svg")
	root.Set("version", "1.1")
	root.Set("xmlns", "http://www.w3.org/2000/svg")
	return root
}

// Group returns an empty <g> container.
func Group() *Element {
	return NewElement("g")
}

// Point returns a filled circle marking a single point. It stands in
// for edges that project down to a dot in the current view.
func Point(p geom.Point, radius float64, fill string) *Element {
	c := NewElement("circle")
	c.SetFloat("cx", p.X)
	c.SetFloat("cy", p.Y)
	c.SetFloat("r", radius)
	c.Set("fill", fill)
	return c
}

// Line returns a stroked line between two projected points.
func Line(p1, p2 geom.Point, strokeWidth float64, color string) *Element {
	l := NewElement("line")
	l.SetFloat("x1", p1.X)
	l.SetFloat("y1", p1.Y)
	l.SetFloat("x2", p2.X)
	l.SetFloat("y2", p2.Y)
	l.Set("stroke", color)
	l.SetFloat("stroke-width", strokeWidth)
	l.Set("fill", "none")
	return l
}

// Rect returns a stroked, unfilled rectangle. A non-empty id tags the
// element, as used for cut-list row borders.
func Rect(x, y, width, height float64, id string) *Element {
	r := NewElement("rect")
	r.SetFloat("x", x)
	r.SetFloat("y", y)
	r.SetFloat("width", width)
	r.SetFloat("height", height)
	r.Set("fill", "none")
	r.Set("stroke", "#000000")
	r.Set("stroke-width", "0.35")
	if id != "" {
		r.Set("id", id)
	}
	return r
}

// Text returns a text element anchored at (x, y). An empty anchor
// defaults to "start".
func Text(s string, x, y float64, fontFamily string, fontSize float64, anchor string) *Element {
	if anchor == "" {
		anchor = "start"
	}
	t := NewElement("text")
	t.SetFloat("x", x)
	t.SetFloat("y", y)
	t.Set("font-family", fontFamily)
	t.SetFloat("font-size", fontSize)
	t.Set("fill", "#000000")
	t.Set("text-anchor", anchor)
	t.Text = s
	return t
}

// RoundCorner returns the arc path for a filleted corner between two
// projected points. sweep selects the side of the chord the arc bows
// toward, in SVG sweep-flag terms.
func RoundCorner(p1, p2 geom.Point, radius float64, sweep bool, strokeWidth float64, color string) *Element {
	flag := 0
	if sweep {
		flag = 1
	}
	path := NewElement("path")
	path.Set("d", fmt.Sprintf("M%s %s A%s %s 0 0 %d %s %s",
		FormatFloat(p1.X), FormatFloat(p1.Y),
		FormatFloat(radius), FormatFloat(radius),
		flag,
		FormatFloat(p2.X), FormatFloat(p2.Y)))
	path.Set("stroke", color)
	path.SetFloat("stroke-width", strokeWidth)
	path.Set("fill", "none")
	return path
}
