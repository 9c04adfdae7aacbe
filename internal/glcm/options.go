package glcm

import (
	"github.com/rs/zerolog"

	"glcm-texture/internal/logging"
)

// DefaultImagTolerance is the magnitude above which a discarded imaginary
// eigenvalue component is logged.
const DefaultImagTolerance = 1e-9

type settings struct {
	logger  zerolog.Logger
	imagTol float64
}

func defaultSettings() settings {
	return settings{
		logger:  zerolog.Nop(),
		imagTol: DefaultImagTolerance,
	}
}

// Option configures an Accumulator or Engine.
type Option func(*settings)

// WithLogger sets the logger used for normalization and eigen diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logging.Component(l, "glcm")
	}
}

// WithImagTolerance sets the threshold for reporting discarded imaginary
// eigenvalue parts.
func WithImagTolerance(tol float64) Option {
	return func(s *settings) {
		if tol >= 0 {
			s.imagTol = tol
		}
	}
}
