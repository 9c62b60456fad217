package hull3d

import (
	"fmt"
	"math"
)

// Stats returns a one-line summary of the hull: vertex count (V), edge
// count (E), face count (F), and Euler characteristic (χ).
func (d *DCEL) Stats() string {
	return fmt.Sprintf("V=%d, E=%d, F=%d, χ=%d",
		len(d.Vertices), d.EdgeCount(), len(d.Faces), d.EulerCharacteristic())
}

// GeometryStats provides statistical information about hull geometry.
type GeometryStats struct {
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	MinFaceArea   float64
	MaxFaceArea   float64
	AvgFaceArea   float64
	BoundingBox   struct {
		Min, Max Point
	}
}

// CalculateGeometryStats computes geometric statistics for the hull.
func (d *DCEL) CalculateGeometryStats() *GeometryStats {
	stats := &GeometryStats{}

	if len(d.HalfEdges) == 0 || len(d.Faces) == 0 {
		return stats
	}

	stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength = d.edgeStats()
	stats.MinFaceArea, stats.MaxFaceArea, stats.AvgFaceArea = d.faceStats()
	stats.BoundingBox.Min, stats.BoundingBox.Max = d.boundingBox()

	return stats
}

// edgeStats visits each topological edge once by skipping the half of
// every twin pair with the larger ID.
func (d *DCEL) edgeStats() (float64, float64, float64) {
	minLength := math.Inf(1)
	maxLength := 0.0
	totalLength := 0.0
	count := 0

	for _, he := range d.HalfEdges {
		if he.Twin != nil && he.Twin.ID < he.ID {
			continue
		}
		length := he.To.Position.Sub(he.From.Position).Len()
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
		totalLength += length
		count++
	}

	if count == 0 {
		return 0, 0, 0
	}

	return minLength, maxLength, totalLength / float64(count)
}

func (d *DCEL) faceStats() (float64, float64, float64) {
	minArea := math.Inf(1)
	maxArea := 0.0
	totalArea := 0.0

	for _, f := range d.Faces {
		area := f.Area()
		if area < minArea {
			minArea = area
		}
		if area > maxArea {
			maxArea = area
		}
		totalArea += area
	}

	return minArea, maxArea, totalArea / float64(len(d.Faces))
}

func (d *DCEL) boundingBox() (Point, Point) {
	var minBound, maxBound Point
	first := true

	for _, v := range d.Vertices {
		if first {
			minBound = v.Position
			maxBound = v.Position
			first = false
			continue
		}
		for axis := 0; axis < 3; axis++ {
			minBound[axis] = math.Min(minBound[axis], v.Position[axis])
			maxBound[axis] = math.Max(maxBound[axis], v.Position[axis])
		}
	}

	return minBound, maxBound
}
