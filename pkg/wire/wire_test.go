package wire

import (
	"math"
	"testing"

	"github.com/rebarcad/cutlist/pkg/geom"
)

func TestEdgeLength(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want float64
	}{
		{
			name: "straight segment",
			edge: Line(geom.Vector{}, geom.Vector{X: 3, Y: 4}),
			want: 5,
		},
		{
			name: "quarter arc",
			edge: Arc(geom.Vector{X: 10}, geom.Vector{Y: 10}, geom.Vector{}, 10),
			want: 10 * math.Pi / 2,
		},
		{
			name: "zero-length segment",
			edge: Line(geom.Vector{X: 1}, geom.Vector{X: 1}),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSorted(t *testing.T) {
	a := geom.Vector{}
	b := geom.Vector{X: 100}
	c := geom.Vector{X: 100, Z: 50}
	d := geom.Vector{X: 150, Z: 50}

	tests := []struct {
		name  string
		edges []Edge
		want  []Edge
	}{
		{
			name:  "already ordered",
			edges: []Edge{Line(a, b), Line(b, c)},
			want:  []Edge{Line(a, b), Line(b, c)},
		},
		{
			name:  "shuffled",
			edges: []Edge{Line(b, c), Line(c, d), Line(a, b)},
			want:  []Edge{Line(a, b), Line(b, c), Line(c, d)},
		},
		{
			name:  "flipped edge is reversed into the chain",
			edges: []Edge{Line(a, b), Line(c, b)},
			want:  []Edge{Line(a, b), Line(b, c)},
		},
		{
			name:  "single edge",
			edges: []Edge{Line(a, b)},
			want:  []Edge{Line(a, b)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.edges...).Sorted().Edges
			if len(got) != len(tt.want) {
				t.Fatalf("Sorted() returned %d edges, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !samePoint(got[i].P1, tt.want[i].P1) || !samePoint(got[i].P2, tt.want[i].P2) {
					t.Errorf("edge %d = %v -> %v, want %v -> %v",
						i, got[i].P1, got[i].P2, tt.want[i].P1, tt.want[i].P2)
				}
			}
		})
	}
}

func TestSortedKeepsDisconnectedEdges(t *testing.T) {
	edges := []Edge{
		Line(geom.Vector{}, geom.Vector{X: 10}),
		Line(geom.Vector{X: 500}, geom.Vector{X: 600}),
	}
	got := New(edges...).Sorted().Edges
	if len(got) != 2 {
		t.Fatalf("Sorted() dropped edges: got %d, want 2", len(got))
	}
}

func TestVertices(t *testing.T) {
	w := New(
		Line(geom.Vector{}, geom.Vector{X: 10}),
		Line(geom.Vector{X: 10}, geom.Vector{X: 10, Z: 5}),
	)
	if got := len(w.Vertices()); got != 4 {
		t.Errorf("Vertices() returned %d points, want 4", got)
	}
}

func TestNormal(t *testing.T) {
	tests := []struct {
		name   string
		w      Wire
		want   geom.Vector
		wantOK bool
	}{
		{
			name: "L-bend in the XZ plane",
			w: New(
				Line(geom.Vector{}, geom.Vector{X: 100}),
				Line(geom.Vector{X: 100}, geom.Vector{X: 100, Z: 50}),
			),
			want:   geom.Vector{Y: -1},
			wantOK: true,
		},
		{
			name: "straight wire spans no plane",
			w: New(
				Line(geom.Vector{}, geom.Vector{X: 100}),
				Line(geom.Vector{X: 100}, geom.Vector{X: 200}),
			),
			wantOK: false,
		},
		{
			name:   "empty wire",
			w:      New(),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.w.Normal()
			if ok != tt.wantOK {
				t.Fatalf("Normal() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Sub(tt.want).Length() > 1e-9 {
				t.Errorf("Normal() = %v, want %v", got, tt.want)
			}
		})
	}
}
