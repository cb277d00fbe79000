// Package analytics contains the derived-view use cases.
package analytics

import (
	"fmt"
	"math"
	"strings"
)

// Chart geometry constants. Points are normalized into a fixed coordinate
// box: x spans the full width, y maps a zero amount to the baseline and the
// maximum amount to the top margin (SVG y grows downward).
const (
	chartWidth     = 350.0
	chartBaselineY = 120.0
	chartAmplitude = 100.0
	chartFloorY    = 150.0 // bottom edge used to close the area path
	chartTension   = 0.2
)

// ChartPoint is a normalized chart coordinate.
type ChartPoint struct {
	X float64
	Y float64
}

// ChartPath is the smooth-curve geometry for a trend series: a cubic-Bezier
// line through every data point, the same path closed down to the floor for
// area fills, and the index of the highest bucket.
type ChartPath struct {
	Line     string
	Area     string
	Points   []ChartPoint
	MaxIndex int
}

// BuildChartPath normalizes the trend points into the chart box and emits
// an SVG path smoothed with Catmull-Rom-style control points. The curve
// passes through every data point and is C1-continuous; edge points act as
// their own missing neighbor.
func BuildChartPath(points []TrendPoint) ChartPath {
	if len(points) == 0 {
		return ChartPath{}
	}

	maxAmount := 1.0 // avoid division by zero on an all-zero series
	maxIndex := 0
	amounts := make([]float64, len(points))
	for i, p := range points {
		amounts[i], _ = p.Amount.Float64()
		if amounts[i] > maxAmount {
			maxAmount = amounts[i]
		}
		if amounts[i] > amounts[maxIndex] {
			maxIndex = i
		}
	}

	stepX := chartWidth
	if len(points) > 1 {
		stepX = chartWidth / float64(len(points)-1)
	}

	coords := make([]ChartPoint, len(points))
	for i, amount := range amounts {
		coords[i] = ChartPoint{
			X: float64(i) * stepX,
			Y: chartBaselineY - amount/maxAmount*chartAmplitude,
		}
	}

	var line strings.Builder
	fmt.Fprintf(&line, "M %.2f,%.2f", coords[0].X, coords[0].Y)
	for i := 1; i < len(coords); i++ {
		line.WriteString(" ")
		line.WriteString(bezierCommand(i, coords))
	}

	linePath := line.String()
	areaPath := fmt.Sprintf("%s V%d H0 Z", linePath, int(chartFloorY))

	return ChartPath{
		Line:     linePath,
		Area:     areaPath,
		Points:   coords,
		MaxIndex: maxIndex,
	}
}

// bezierCommand emits the cubic-Bezier segment ending at coords[i], with
// control points derived from the neighboring data points.
func bezierCommand(i int, coords []ChartPoint) string {
	start := controlPoint(coords, i-1, false)
	end := controlPoint(coords, i, true)
	return fmt.Sprintf("C %.2f,%.2f %.2f,%.2f %.2f,%.2f",
		start.X, start.Y, end.X, end.Y, coords[i].X, coords[i].Y)
}

// controlPoint derives the control point for coords[i] from the vector
// between its neighbors, scaled by the tension factor. Out-of-range
// neighbors fall back to the point itself, which anchors the curve ends.
func controlPoint(coords []ChartPoint, i int, reverse bool) ChartPoint {
	current := coords[i]
	previous := current
	if i-1 >= 0 {
		previous = coords[i-1]
	}
	next := current
	if i+1 < len(coords) {
		next = coords[i+1]
	}

	dx := next.X - previous.X
	dy := next.Y - previous.Y
	length := math.Hypot(dx, dy) * chartTension
	angle := math.Atan2(dy, dx)
	if reverse {
		angle += math.Pi
	}

	return ChartPoint{
		X: current.X + math.Cos(angle)*length,
		Y: current.Y + math.Sin(angle)*length,
	}
}
