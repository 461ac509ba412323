package cryptodash

import (
	"math"
	"testing"

	"github.com/cryptodash/cryptodash/date"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGeometryScale(t *testing.T) {
	g := Geometry{Width: 600, Height: 200, Padding: 40}
	points := g.Scale([]float64{100, 300, 200})
	if len(points) != 3 {
		t.Fatalf("got %d points", len(points))
	}

	// Equal horizontal steps across the 520px band.
	if !almost(points[0].X, 40) || !almost(points[1].X, 300) || !almost(points[2].X, 560) {
		t.Errorf("X = %v %v %v", points[0].X, points[1].X, points[2].X)
	}
	// The maximum sits at the top padding, the minimum at the bottom.
	if !almost(points[1].Y, 40) {
		t.Errorf("max Y = %v, want 40", points[1].Y)
	}
	if !almost(points[0].Y, 160) {
		t.Errorf("min Y = %v, want 160", points[0].Y)
	}
	// Higher value, smaller Y.
	if points[2].Y >= points[0].Y {
		t.Errorf("Y ordering: %v should be above %v", points[2].Y, points[0].Y)
	}
}

func TestGeometryScaleFlatSeries(t *testing.T) {
	g := DefaultGeometry
	points := g.Scale([]float64{500, 500, 500})
	for i, p := range points {
		if p.Y != points[0].Y {
			t.Fatalf("point %d Y = %v, flat series must stay level", i, p.Y)
		}
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("point %d Y = %v", i, p.Y)
		}
	}
}

func TestGeometryScaleSinglePoint(t *testing.T) {
	points := DefaultGeometry.Scale([]float64{42})
	if len(points) != 1 {
		t.Fatalf("got %d points", len(points))
	}
	if !almost(points[0].X, DefaultGeometry.Padding) {
		t.Errorf("X = %v", points[0].X)
	}
}

func TestGeometryIndexAt(t *testing.T) {
	g := Geometry{Width: 600, Height: 200, Padding: 40}
	tests := []struct {
		x    float64
		n    int
		want int
		ok   bool
	}{
		{40, 3, 0, true},
		{300, 3, 1, true},
		{560, 3, 2, true},
		{310, 3, 1, true},  // nearest, not floor
		{431, 3, 2, true},  // rounds up past the midpoint
		{-10, 3, 0, true},   // still rounds to the first sample
		{-200, 3, 0, false}, // far left of the band
		{900, 3, 0, false}, // right of the band
		{300, 1, 0, true},  // single sample owns the whole band
		{300, 0, 0, false}, // nothing to hover
	}
	for _, tc := range tests {
		got, ok := g.IndexAt(tc.x, tc.n)
		if got != tc.want || ok != tc.ok {
			t.Errorf("IndexAt(%v, %d) = %d,%v want %d,%v", tc.x, tc.n, got, ok, tc.want, tc.ok)
		}
	}
}

// Scaling then inverting must land back on the same sample.
func TestGeometryIndexAtInvertsScale(t *testing.T) {
	g := DefaultGeometry
	values := []float64{10, 40, 20, 50, 30, 60, 25}
	for i, p := range g.Scale(values) {
		got, ok := g.IndexAt(p.X, len(values))
		if !ok || got != i {
			t.Errorf("IndexAt(%v) = %d,%v want %d", p.X, got, ok, i)
		}
	}
}

func TestChartHover(t *testing.T) {
	chart := NewChart([]HistoryPoint{
		{Date: date.New(2024, 3, 13), Value: 1000},
		{Date: date.New(2024, 3, 14), Value: 1200},
		{Date: date.New(2024, 3, 15), Value: 1100},
	})

	if _, ok := chart.Hovered(); ok {
		t.Fatal("nothing hovered initially")
	}

	got, ok := chart.Hover(300)
	if !ok || got.Value != 1200 {
		t.Fatalf("Hover(300) = %+v,%v", got, ok)
	}
	if h, ok := chart.Hovered(); !ok || h.Date.String() != "2024-03-14" {
		t.Errorf("Hovered() = %+v,%v", h, ok)
	}

	// Out-of-band offsets clear the hover.
	if _, ok := chart.Hover(-300); ok {
		t.Error("Hover(-300) should miss")
	}
	if _, ok := chart.Hovered(); ok {
		t.Error("miss must clear the previous hover")
	}

	chart.Hover(560)
	chart.Leave()
	if _, ok := chart.Hovered(); ok {
		t.Error("Leave must clear the hover")
	}
}

func TestChartCurrent(t *testing.T) {
	chart := NewChart([]HistoryPoint{
		{Date: date.New(2024, 3, 14), Value: 1000},
		{Date: date.New(2024, 3, 15), Value: 1337},
	})
	if got := chart.Current(); got != 1337 {
		t.Errorf("Current() = %v, want the latest sample", got)
	}
}
