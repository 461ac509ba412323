package cryptodash

import "math"

// Chart geometry mirrors the drawing region of the source dashboard: a
// fixed-size band with equal padding on every side. All computation is
// plain linear interpolation; no charting library is involved.

// DefaultGeometry is the drawing region the dashboard uses.
var DefaultGeometry = Geometry{Width: 600, Height: 200, Padding: 40}

// Geometry describes the drawing region of the chart.
type Geometry struct {
	Width   float64
	Height  float64
	Padding float64
}

// Point is a position inside the drawing region.
type Point struct {
	X float64
	Y float64
}

// span returns the plottable horizontal extent.
func (g Geometry) span() float64 { return g.Width - 2*g.Padding }

// Scale computes screen positions for the series values. Point i sits at a
// constant horizontal step from point i-1, and higher values sit higher on
// screen (smaller Y). A flat series substitutes a range of 1 so scaling
// never divides by zero; all its points share the same Y.
func (g Geometry) Scale(values []float64) []Point {
	n := len(values)
	if n == 0 {
		return nil
	}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	valueRange := maxV - minV
	if valueRange == 0 {
		valueRange = 1
	}

	points := make([]Point, n)
	for i, v := range values {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		points[i] = Point{
			X: g.Padding + frac*g.span(),
			Y: g.Padding + (maxV-v)/valueRange*(g.Height-2*g.Padding),
		}
	}
	return points
}

// IndexAt inverts the horizontal interpolation: it maps a pixel offset back
// to the nearest of n samples, rounding to the nearest index. It reports
// false when x falls outside the plotted band, which suppresses the tooltip.
func (g Geometry) IndexAt(x float64, n int) (int, bool) {
	if n < 2 {
		if n == 1 {
			return 0, x >= g.Padding && x <= g.Width-g.Padding
		}
		return 0, false
	}
	step := g.span() / float64(n-1)
	i := int(math.Round((x - g.Padding) / step))
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Chart combines a history series with the geometry and tracks which sample
// is hovered. Exactly one sample is hovered at a time, or none.
type Chart struct {
	Geometry Geometry
	Points   []HistoryPoint

	hovered int // index into Points, -1 when nothing is hovered
}

// NewChart returns a chart over the series using the default geometry.
func NewChart(points []HistoryPoint) *Chart {
	return &Chart{Geometry: DefaultGeometry, Points: points, hovered: -1}
}

// Positions returns the screen positions of the series.
func (c *Chart) Positions() []Point {
	values := make([]float64, len(c.Points))
	for i, p := range c.Points {
		values[i] = p.Value
	}
	return c.Geometry.Scale(values)
}

// Hover moves the pointer to horizontal offset x and returns the hovered
// sample. The tooltip content is the exact date and value of that sample,
// never an interpolated value. Out-of-band offsets clear the hover.
func (c *Chart) Hover(x float64) (HistoryPoint, bool) {
	i, ok := c.Geometry.IndexAt(x, len(c.Points))
	if !ok {
		c.hovered = -1
		return HistoryPoint{}, false
	}
	c.hovered = i
	return c.Points[i], true
}

// Leave clears the hover and hides the tooltip.
func (c *Chart) Leave() { c.hovered = -1 }

// Hovered returns the hovered sample, if any.
func (c *Chart) Hovered() (HistoryPoint, bool) {
	if c.hovered < 0 {
		return HistoryPoint{}, false
	}
	return c.Points[c.hovered], true
}

// Current returns the latest sample's value, the headline figure.
func (c *Chart) Current() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[len(c.Points)-1].Value
}
