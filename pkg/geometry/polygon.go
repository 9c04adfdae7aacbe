package geometry

import (
	"errors"
	"image"
)

// ErrTooFewVertices is returned for polygons with fewer than three vertices.
var ErrTooFewVertices = errors.New("polygon needs at least three vertices")

// Polygon is a closed polygon in pixel coordinates. The last vertex connects
// back to the first.
type Polygon []PointInt

// NewPolygon validates the vertex count.
func NewPolygon(pts []PointInt) (Polygon, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewVertices
	}
	return Polygon(pts), nil
}

// Contains tests whether pixel (x, y) is inside the polygon using ray casting.
func (poly Polygon) Contains(x, y int) bool {
	if len(poly) < 3 {
		return false
	}
	px, py := float64(x), float64(y)
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		pi, pj := poly[i].ToFloat(), poly[(i+1)%n].ToFloat()
		if ((pi.Y > py) != (pj.Y > py)) &&
			(px < (pj.X-pi.X)*(py-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the smallest rectangle containing every vertex. Max is
// exclusive, so the rightmost and bottom vertices are inside.
func (poly Polygon) Bounds() image.Rectangle {
	if len(poly) == 0 {
		return image.Rectangle{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// ImagePoints converts the vertices to image.Point values.
func (poly Polygon) ImagePoints() []image.Point {
	out := make([]image.Point, len(poly))
	for i, p := range poly {
		out[i] = p.ToImage()
	}
	return out
}
