package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/cryptodash/cryptodash"
)

// Text raster size of the chart. The drawing geometry stays the one the
// chart computes; the raster only downsamples positions to characters.
const (
	chartCols = 72
	chartRows = 16
)

// Chart renders the portfolio value series as a text plot, with the latest
// value as headline and, when a sample is hovered, its exact date and value
// as a tooltip line.
func Chart(c *cryptodash.Chart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Value Over Time\n\n")
	fmt.Fprintf(&b, "Current Total Value: %s\n\n", usd(c.Current()))

	positions := c.Positions()
	if len(positions) > 0 {
		grid := make([][]rune, chartRows)
		for r := range grid {
			grid[r] = []rune(strings.Repeat(" ", chartCols))
		}
		for _, p := range positions {
			col := scaleTo(p.X, c.Geometry.Width, chartCols)
			row := scaleTo(p.Y, c.Geometry.Height, chartRows)
			grid[row][col] = '•'
		}
		if hovered, ok := c.Hovered(); ok {
			// Mark the hovered sample's column top to bottom.
			for i, p := range c.Points {
				if p == hovered {
					col := scaleTo(positions[i].X, c.Geometry.Width, chartCols)
					for r := range grid {
						if grid[r][col] == ' ' {
							grid[r][col] = '·'
						}
					}
				}
			}
		}
		fmt.Fprintln(&b, "```")
		for _, row := range grid {
			fmt.Fprintln(&b, string(row))
		}
		fmt.Fprintln(&b, "```")
	}

	if hovered, ok := c.Hovered(); ok {
		fmt.Fprintf(&b, "\n%s: %s\n", hovered.Date, usd(hovered.Value))
	}
	return b.String()
}

// scaleTo maps a geometry coordinate onto a raster of n cells.
func scaleTo(v, extent float64, n int) int {
	i := int(math.Round(v / extent * float64(n-1)))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}
