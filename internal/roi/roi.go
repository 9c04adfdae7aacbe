// Package roi walks a region of a grey image and feeds every neighbour pair
// at a fixed distance into a co-occurrence counter.
package roi

import (
	"errors"
	"fmt"
	"image"

	"glcm-texture/internal/glcm"
	"glcm-texture/pkg/geometry"
)

// MaxLevels is the number of grey levels in an 8-bit image.
const MaxLevels = 256

var (
	ErrInvalidDistance = errors.New("roi: distance must be positive")
	ErrInvalidLevels   = errors.New("roi: levels must be in 1..256")
	ErrEmptyRegion     = errors.New("roi: region does not overlap the image")
)

// Counter receives classified pixel pairs. *glcm.Engine and
// *glcm.Accumulator satisfy it.
type Counter interface {
	CountPair(d glcm.Direction, neighbor, center int) error
}

// Mask selects the pixels a region includes.
type Mask interface {
	Contains(x, y int) bool
}

// Region is a rectangular search area with an optional inclusion mask.
// A nil mask includes every pixel of Bounds.
type Region struct {
	Name   string
	Bounds image.Rectangle
	Mask   Mask
}

// RectRegion returns an unmasked rectangular region.
func RectRegion(name string, r image.Rectangle) Region {
	return Region{Name: name, Bounds: r.Canon()}
}

// PolygonRegion returns a region masked by poly. The search bounds are the
// polygon bounds grown by distance so that centre pixels just outside the
// polygon still pair with neighbours inside it.
func PolygonRegion(name string, poly geometry.Polygon, distance int) Region {
	return Region{Name: name, Bounds: poly.Bounds().Inset(-distance), Mask: poly}
}

// GrayMask includes pixels whose mask value is non-zero.
type GrayMask struct {
	*image.Gray
}

// Contains reports whether (x, y) is inside the mask image and non-zero.
func (m GrayMask) Contains(x, y int) bool {
	if !image.Pt(x, y).In(m.Rect) {
		return false
	}
	return m.GrayAt(x, y).Y != 0
}

type allOf []Mask

// AllOf returns a mask that includes a pixel only if every mask does.
func AllOf(masks ...Mask) Mask {
	return allOf(masks)
}

func (m allOf) Contains(x, y int) bool {
	for _, mask := range m {
		if !mask.Contains(x, y) {
			return false
		}
	}
	return true
}

// Options controls pair generation.
type Options struct {
	Distance int // neighbour distance d
	Levels   int // grey-level count Ng the pixel values are quantized to
}

// DefaultOptions returns distance 1 over the full 8-bit range.
func DefaultOptions() Options {
	return Options{Distance: 1, Levels: MaxLevels}
}

// FeedStats summarises one pass over a region.
type FeedStats struct {
	Pairs    [glcm.NumDirections]int
	Masked   int // neighbour visits rejected by the mask
	Unmasked int // neighbour visits counted
}

type offset struct {
	dRow, dCol int
	dir        glcm.Direction
}

func offsets(d int) [8]offset {
	return [8]offset{
		{0, -d, glcm.Horizontal}, {0, d, glcm.Horizontal},
		{-d, 0, glcm.Vertical}, {d, 0, glcm.Vertical},
		{-d, -d, glcm.LeftDiagonal}, {d, d, glcm.LeftDiagonal},
		{d, -d, glcm.RightDiagonal}, {-d, d, glcm.RightDiagonal},
	}
}

// Classify maps a neighbour offset to its direction. It returns false for
// offsets that are not one of the eight neighbours at distance d.
func Classify(dRow, dCol, d int) (glcm.Direction, bool) {
	if d <= 0 {
		return 0, false
	}
	for _, o := range offsets(d) {
		if o.dRow == dRow && o.dCol == dCol {
			return o.dir, true
		}
	}
	return 0, false
}

// Quantize maps an 8-bit value onto levels grey levels.
func Quantize(v uint8, levels int) int {
	return int(v) * levels / MaxLevels
}

// Feed visits every centre pixel of the region and each of its eight
// neighbours at opts.Distance that lies inside the region bounds. A
// neighbour rejected by the mask is skipped. Accepted pairs are passed to c
// as (neighbor, center) grey levels.
func Feed(c Counter, img *image.Gray, region Region, opts Options) (FeedStats, error) {
	var st FeedStats
	if opts.Distance <= 0 {
		return st, fmt.Errorf("%w: got %d", ErrInvalidDistance, opts.Distance)
	}
	if opts.Levels <= 0 || opts.Levels > MaxLevels {
		return st, fmt.Errorf("%w: got %d", ErrInvalidLevels, opts.Levels)
	}
	bounds := region.Bounds.Intersect(img.Bounds())
	if bounds.Empty() {
		return st, fmt.Errorf("%w: %s %v", ErrEmptyRegion, region.Name, region.Bounds)
	}

	offs := offsets(opts.Distance)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			center := Quantize(img.GrayAt(x, y).Y, opts.Levels)
			for _, o := range offs {
				nx, ny := x+o.dCol, y+o.dRow
				if !image.Pt(nx, ny).In(bounds) {
					continue
				}
				if region.Mask != nil && !region.Mask.Contains(nx, ny) {
					st.Masked++
					continue
				}
				neighbor := Quantize(img.GrayAt(nx, ny).Y, opts.Levels)
				if err := c.CountPair(o.dir, neighbor, center); err != nil {
					return st, fmt.Errorf("count pair at (%d,%d): %w", x, y, err)
				}
				st.Unmasked++
				st.Pairs[o.dir]++
			}
		}
	}
	return st, nil
}
