package glcm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevels is returned when the grey-level count is not positive.
	ErrInvalidLevels = errors.New("glcm: grey-level count must be positive")

	// ErrOutOfRange is returned when a grey level or direction is outside the configured range.
	ErrOutOfRange = errors.New("glcm: value out of range")

	// ErrNoData marks a direction for which no pixel pairs were counted (R = 0).
	ErrNoData = errors.New("glcm: no pairs counted for direction")

	// ErrDivideByZero marks a degenerate denominator, e.g. zero standard deviation.
	ErrDivideByZero = errors.New("glcm: division by zero")

	// ErrSpectrum is returned when the eigen-decomposition cannot supply a
	// second eigenvalue.
	ErrSpectrum = errors.New("glcm: eigenvalue spectrum unavailable")

	// ErrUnknownFeature is returned for an unrecognised feature identifier.
	ErrUnknownFeature = errors.New("glcm: unknown feature")

	// ErrNotNormalized is returned by Engine when features are requested
	// before Normalize.
	ErrNotNormalized = errors.New("glcm: statistics not normalized")
)

// FeatureError reports a failure of one feature in one direction. The
// corresponding slot of the FeatureValue holds NaN.
type FeatureError struct {
	Feature   FeatureType
	Direction Direction
	Err       error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s[%s]: %v", e.Feature, e.Direction, e.Err)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}
