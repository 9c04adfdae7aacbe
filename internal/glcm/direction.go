// Package glcm computes Haralick texture descriptors from grey-level
// co-occurrence matrices accumulated over the four principal directions.
package glcm

// Direction identifies one of the four co-occurrence offsets.
type Direction int

const (
	Horizontal    Direction = iota // 0 degrees (H)
	Vertical                       // 90 degrees (V)
	LeftDiagonal                   // 135 degrees (LD)
	RightDiagonal                  // 45 degrees (RD)
)

// NumDirections is the number of co-occurrence directions.
const NumDirections = 4

// Directions lists every direction in index order.
var Directions = [NumDirections]Direction{Horizontal, Vertical, LeftDiagonal, RightDiagonal}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	case LeftDiagonal:
		return "LD"
	case RightDiagonal:
		return "RD"
	default:
		return "Unknown"
	}
}

// Angle returns the offset angle in degrees.
func (d Direction) Angle() int {
	switch d {
	case Vertical:
		return 90
	case LeftDiagonal:
		return 135
	case RightDiagonal:
		return 45
	default:
		return 0
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= Horizontal && d <= RightDiagonal
}
