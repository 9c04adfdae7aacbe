// Package geometry provides the point, rectangle and polygon types used to
// describe regions of interest.
package geometry

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// ToImage converts to an image.Point.
func (p PointInt) ToImage() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToImage converts to an image.Rectangle.
func (r RectInt) ToImage() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the rectangle has no area.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ParseRect parses "x,y,w,h".
func ParseRect(s string) (RectInt, error) {
	v, err := parseInts(s, ",")
	if err != nil {
		return RectInt{}, fmt.Errorf("rect %q: %w", s, err)
	}
	if len(v) != 4 {
		return RectInt{}, fmt.Errorf("rect %q: want x,y,w,h", s)
	}
	r := RectInt{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if r.Empty() {
		return RectInt{}, fmt.Errorf("rect %q: width and height must be positive", s)
	}
	return r, nil
}

// ParsePoints parses "x1,y1;x2,y2;..." into integer points.
func ParsePoints(s string) ([]PointInt, error) {
	var pts []PointInt
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		v, err := parseInts(pair, ",")
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", pair, err)
		}
		if len(v) != 2 {
			return nil, fmt.Errorf("point %q: want x,y", pair)
		}
		pts = append(pts, PointInt{X: v[0], Y: v[1]})
	}
	return pts, nil
}

func parseInts(s, sep string) ([]int, error) {
	fields := strings.Split(s, sep)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
