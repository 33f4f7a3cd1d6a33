package rebar

import (
	"testing"

	"github.com/rebarcad/cutlist/pkg/geom"
	"github.com/rebarcad/cutlist/pkg/wire"
)

func testWire() wire.Wire {
	return wire.New(wire.Line(geom.Vector{}, geom.Vector{X: 100}))
}

func TestDisplayMark(t *testing.T) {
	tests := []struct {
		name   string
		bar    Bar
		want   string
		wantOK bool
	}{
		{
			name:   "sketch bar with mark",
			bar:    SketchBar{BarName: "Bar001", Mark: "A1"},
			want:   "A1",
			wantOK: true,
		},
		{
			name:   "sketch bar without mark",
			bar:    SketchBar{BarName: "Bar002"},
			want:   "",
			wantOK: false,
		},
		{
			name:   "base bar formats its number",
			bar:    BaseBar{BarName: "Bar003", MarkNumber: 7},
			want:   "7",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.bar.DisplayMark()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DisplayMark() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveColor(t *testing.T) {
	bar := SketchBar{ShapeColor: "#b91c1c"}
	noColor := SketchBar{}

	tests := []struct {
		name  string
		bar   Bar
		style string
		want  string
	}{
		{name: "shape color", bar: bar, style: ShapeColorStyle, want: "#b91c1c"},
		{name: "empty style means shape color", bar: bar, style: "", want: "#b91c1c"},
		{name: "named color passes through", bar: bar, style: "steelblue", want: "steelblue"},
		{name: "hex passes through", bar: bar, style: "#123456", want: "#123456"},
		{name: "shape color fallback", bar: noColor, style: ShapeColorStyle, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColor(tt.bar, tt.style); got != tt.want {
				t.Errorf("ResolveColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListBars(t *testing.T) {
	doc := Document{
		SketchBars: []SketchBar{
			{BarName: "S1", Mark: "A1", BarWire: testWire()},
			{BarName: "S2", Mark: "A1", BarWire: testWire()}, // duplicate mark
			{BarName: "S3", Mark: "A2", BarWire: testWire()},
			{BarName: "S4", BarWire: testWire()}, // unmarked
		},
		BaseBars: []BaseBar{
			{BarName: "B9", MarkNumber: 9, BarWire: testWire()},
			{BarName: "B2", MarkNumber: 2, BarWire: testWire()},
			{BarName: "B2dup", MarkNumber: 2, BarWire: testWire()},
		},
	}

	t.Run("one per mark", func(t *testing.T) {
		got := doc.ListBars(true)
		names := barNames(got)
		want := []string{"S1", "S3", "B2", "B9"}
		if !equalStrings(names, want) {
			t.Errorf("ListBars(true) = %v, want %v", names, want)
		}
	})

	t.Run("all bars, base bars sorted by mark number", func(t *testing.T) {
		got := doc.ListBars(false)
		names := barNames(got)
		want := []string{"S1", "S2", "S3", "S4", "B2", "B2dup", "B9"}
		if !equalStrings(names, want) {
			t.Errorf("ListBars(false) = %v, want %v", names, want)
		}
	})

	t.Run("base bar mark colliding with sketch mark is dropped", func(t *testing.T) {
		d := Document{
			SketchBars: []SketchBar{{BarName: "S1", Mark: "4"}},
			BaseBars:   []BaseBar{{BarName: "B4", MarkNumber: 4}},
		}
		names := barNames(d.ListBars(true))
		want := []string{"S1"}
		if !equalStrings(names, want) {
			t.Errorf("ListBars(true) = %v, want %v", names, want)
		}
	})
}

func barNames(bars []Bar) []string {
	names := make([]string, len(bars))
	for i, b := range bars {
		names[i] = b.Name()
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
