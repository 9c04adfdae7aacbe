package glcm

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// correlationMatrix builds Q[i][j] = sum_k P[i][k] P[j][k] / (px[i] py[k]).
// Terms with a zero denominator contribute zero.
func correlationMatrix(dist *Distribution) *mat.Dense {
	ng, _ := dist.p.Dims()
	q := mat.NewDense(ng, ng, nil)
	for i := 0; i < ng; i++ {
		if dist.px[i] == 0 {
			continue
		}
		ri := dist.p.RawRowView(i)
		for j := 0; j < ng; j++ {
			rj := dist.p.RawRowView(j)
			var sum float64
			for k := 0; k < ng; k++ {
				den := dist.px[i] * dist.py[k]
				if den == 0 || ri[k] == 0 || rj[k] == 0 {
					continue
				}
				sum += ri[k] * rj[k] / den
			}
			q.Set(i, j, sum)
		}
	}
	return q
}

func spectrum(dist *Distribution) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(correlationMatrix(dist), mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: factorization did not converge", ErrSpectrum)
	}
	return eig.Values(nil), nil
}

// EigenSpectrum returns the full complex eigenvalue spectrum of the Q matrix
// for direction d.
func (s *Statistics) EigenSpectrum(d Direction) ([]complex128, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: direction %d", ErrOutOfRange, int(d))
	}
	if s.dist[d].Empty() {
		return nil, ErrNoData
	}
	return spectrum(s.dist[d])
}

// MaximalCorrelationCoefficient returns, per direction, the second-largest
// real part of the Q matrix spectrum. Imaginary parts are discarded; any
// larger than the configured tolerance is logged. Equal leading eigenvalues
// are not deduplicated.
func (s *Statistics) MaximalCorrelationCoefficient() (FeatureValue, error) {
	log := s.opts.logger
	return s.perDirection(MaximalCorrelationCoefficient, func(dist *Distribution) (float64, error) {
		values, err := spectrum(dist)
		if err != nil {
			return 0, err
		}
		if len(values) < 2 {
			return 0, fmt.Errorf("%w: need two eigenvalues, have %d", ErrSpectrum, len(values))
		}
		re := make([]float64, len(values))
		var maxImag float64
		for i, v := range values {
			re[i] = real(v)
			maxImag = math.Max(maxImag, math.Abs(imag(v)))
		}
		if maxImag > s.opts.imagTol {
			log.Warn().
				Str("direction", dist.dir.String()).
				Float64("max_imag", maxImag).
				Float64("max_abs", maxAbs(values)).
				Msg("discarded imaginary eigenvalue components")
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(re)))
		return re[1], nil
	})
}

func maxAbs(values []complex128) float64 {
	var m float64
	for _, v := range values {
		m = math.Max(m, cmplx.Abs(v))
	}
	return m
}
