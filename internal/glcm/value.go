package glcm

import (
	"encoding/json"
	"math"
)

// FeatureValue holds one feature evaluated in each direction. A direction
// whose computation failed holds NaN.
type FeatureValue struct {
	v [NumDirections]float64
}

// NewFeatureValue creates a FeatureValue from per-direction values.
func NewFeatureValue(h, v, ld, rd float64) FeatureValue {
	return FeatureValue{v: [NumDirections]float64{h, v, ld, rd}}
}

// At returns the value for a direction.
func (f FeatureValue) At(d Direction) float64 {
	if !d.Valid() {
		return math.NaN()
	}
	return f.v[d]
}

func (f FeatureValue) H() float64  { return f.v[Horizontal] }
func (f FeatureValue) V() float64  { return f.v[Vertical] }
func (f FeatureValue) LD() float64 { return f.v[LeftDiagonal] }
func (f FeatureValue) RD() float64 { return f.v[RightDiagonal] }

// Values returns the four directional values in Directions order.
func (f FeatureValue) Values() [NumDirections]float64 {
	return f.v
}

// Avg returns the unweighted mean of the four directions. It is NaN if any
// direction is NaN.
func (f FeatureValue) Avg() float64 {
	return (f.v[0] + f.v[1] + f.v[2] + f.v[3]) / NumDirections
}

// AvgValid returns the mean over the directions that hold a number, and
// false if none do.
func (f FeatureValue) AvgValid() (float64, bool) {
	var sum float64
	n := 0
	for _, x := range f.v {
		if math.IsNaN(x) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN(), false
	}
	return sum / float64(n), true
}

// MarshalJSON encodes the value as an object keyed by direction. NaN slots
// are encoded as null; "avg" is the mean over the remaining directions.
func (f FeatureValue) MarshalJSON() ([]byte, error) {
	out := make(map[string]*float64, NumDirections+1)
	for _, d := range Directions {
		out[d.String()] = finite(f.v[d])
	}
	avg, _ := f.AvgValid()
	out["avg"] = finite(avg)
	return json.Marshal(out)
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}
