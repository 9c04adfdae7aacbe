package glcm

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// directionFunc evaluates one feature on one non-empty direction.
type directionFunc func(dist *Distribution) (float64, error)

// perDirection applies fn to every direction. Empty directions and failed
// evaluations yield NaN in their slot and a *FeatureError in the joined error.
func (s *Statistics) perDirection(t FeatureType, fn directionFunc) (FeatureValue, error) {
	var out FeatureValue
	var errs []error
	for _, d := range Directions {
		dist := s.dist[d]
		if dist.Empty() {
			out.v[d] = math.NaN()
			errs = append(errs, &FeatureError{Feature: t, Direction: d, Err: ErrNoData})
			continue
		}
		x, err := fn(dist)
		if err != nil {
			out.v[d] = math.NaN()
			errs = append(errs, &FeatureError{Feature: t, Direction: d, Err: err})
			continue
		}
		out.v[d] = x
	}
	return out, errors.Join(errs...)
}

// cellSum returns sum over all cells of w(i, j) * P[i][j].
func cellSum(dist *Distribution, w func(i, j int) float64) float64 {
	var sum float64
	r, _ := dist.p.Dims()
	for i := 0; i < r; i++ {
		for j, p := range dist.p.RawRowView(i) {
			if p == 0 {
				continue
			}
			sum += w(i, j) * p
		}
	}
	return sum
}

func levelIndex(n int) []float64 {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}

// varianceTolerance is the relative size below which a variance is treated
// as zero.
const varianceTolerance = 1e-12

// negligibleVariance reports whether variance is zero up to rounding in the
// moments it was computed from.
func negligibleVariance(variance, mean float64) bool {
	return variance <= varianceTolerance*(1+mean*mean)
}

// glcmMeans returns the row and column means taken over the joint matrix.
func glcmMeans(dist *Distribution) (mi, mj float64) {
	mi = cellSum(dist, func(i, _ int) float64 { return float64(i) })
	mj = cellSum(dist, func(_, j int) float64 { return float64(j) })
	return mi, mj
}

func autoCorrelation(dist *Distribution) float64 {
	return cellSum(dist, func(i, j int) float64 { return float64(i * j) })
}

// Energy computes the angular second moment, sum P[i][j]^2.
func (s *Statistics) Energy() (FeatureValue, error) {
	return s.perDirection(Energy, func(dist *Distribution) (float64, error) {
		return floats.Dot(dist.p.RawMatrix().Data, dist.p.RawMatrix().Data), nil
	})
}

// Contrast computes sum n^2 p_{x-y}(n).
func (s *Statistics) Contrast() (FeatureValue, error) {
	return s.perDirection(Contrast, func(dist *Distribution) (float64, error) {
		var f float64
		for n, p := range dist.pDiff {
			f += float64(n*n) * p
		}
		return f, nil
	})
}

// ContrastDirect computes sum (i-j)^2 P[i][j] over the joint matrix.
func (s *Statistics) ContrastDirect() (FeatureValue, error) {
	return s.perDirection(ContrastDirect, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return float64((i - j) * (i - j)) }), nil
	})
}

// Correlation computes (sum ij P - mux muy) / (sigx sigy) using the moments of
// the marginal distributions.
func (s *Statistics) Correlation() (FeatureValue, error) {
	idx := levelIndex(s.levels)
	return s.perDirection(Correlation, func(dist *Distribution) (float64, error) {
		muX, varX := stat.PopMeanVariance(idx, dist.px)
		muY, varY := stat.PopMeanVariance(idx, dist.py)
		if negligibleVariance(varX, muX) || negligibleVariance(varY, muY) {
			return 0, ErrDivideByZero
		}
		return (autoCorrelation(dist) - muX*muY) / math.Sqrt(varX*varY), nil
	})
}

// CorrelationGLCM computes the correlation with means and deviations taken
// over the joint matrix rows and columns.
func (s *Statistics) CorrelationGLCM() (FeatureValue, error) {
	return s.perDirection(CorrelationGLCM, func(dist *Distribution) (float64, error) {
		mi, mj := glcmMeans(dist)
		vi := cellSum(dist, func(i, _ int) float64 { d := float64(i) - mi; return d * d })
		vj := cellSum(dist, func(_, j int) float64 { d := float64(j) - mj; return d * d })
		if negligibleVariance(vi, mi) || negligibleVariance(vj, mj) {
			return 0, ErrDivideByZero
		}
		return (autoCorrelation(dist) - mi*mj) / math.Sqrt(vi*vj), nil
	})
}

// SumOfSquares computes the variance sum (i - mu_i)^2 P[i][j].
func (s *Statistics) SumOfSquares() (FeatureValue, error) {
	return s.perDirection(SumOfSquares, func(dist *Distribution) (float64, error) {
		mi, _ := glcmMeans(dist)
		return cellSum(dist, func(i, _ int) float64 { d := float64(i) - mi; return d * d }), nil
	})
}

// SumOfSquaresJ computes the column variance sum (j - mu_j)^2 P[i][j].
func (s *Statistics) SumOfSquaresJ() (FeatureValue, error) {
	return s.perDirection(SumOfSquaresJ, func(dist *Distribution) (float64, error) {
		_, mj := glcmMeans(dist)
		return cellSum(dist, func(_, j int) float64 { d := float64(j) - mj; return d * d }), nil
	})
}

// HomogeneityI computes the inverse difference, sum P / (1 + |i-j|).
func (s *Statistics) HomogeneityI() (FeatureValue, error) {
	return s.perDirection(HomogeneityI, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return 1 / (1 + float64(absInt(i-j))) }), nil
	})
}

// HomogeneityII computes the inverse difference moment, sum P / (1 + (i-j)^2).
func (s *Statistics) HomogeneityII() (FeatureValue, error) {
	return s.perDirection(HomogeneityII, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return 1 / (1 + float64((i-j)*(i-j))) }), nil
	})
}

// InverseDifferenceNormalized computes sum P / (1 + |i-j|/Ng).
func (s *Statistics) InverseDifferenceNormalized() (FeatureValue, error) {
	ng := float64(s.levels)
	return s.perDirection(InverseDifferenceNormalized, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return 1 / (1 + float64(absInt(i-j))/ng) }), nil
	})
}

// InverseDifferenceMomentNormalized computes sum P / (1 + (i-j)^2/Ng^2).
func (s *Statistics) InverseDifferenceMomentNormalized() (FeatureValue, error) {
	ng2 := float64(s.levels) * float64(s.levels)
	return s.perDirection(InverseDifferenceMomentNormalized, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return 1 / (1 + float64((i-j)*(i-j))/ng2) }), nil
	})
}

func sumAverage(dist *Distribution) float64 {
	var f float64
	for k, p := range dist.pSum {
		f += float64(k) * p
	}
	return f
}

// SumAverage computes sum k p_{x+y}(k).
func (s *Statistics) SumAverage() (FeatureValue, error) {
	return s.perDirection(SumAverage, func(dist *Distribution) (float64, error) {
		return sumAverage(dist), nil
	})
}

// SumVariance computes sum (k - SumAverage)^2 p_{x+y}(k).
func (s *Statistics) SumVariance() (FeatureValue, error) {
	return s.perDirection(SumVariance, func(dist *Distribution) (float64, error) {
		mu := sumAverage(dist)
		var f float64
		for k, p := range dist.pSum {
			d := float64(k) - mu
			f += d * d * p
		}
		return f, nil
	})
}

// SumEntropy computes -sum p_{x+y} ln p_{x+y}.
func (s *Statistics) SumEntropy() (FeatureValue, error) {
	return s.perDirection(SumEntropy, func(dist *Distribution) (float64, error) {
		return vectorEntropy(dist.pSum), nil
	})
}

// Entropy computes the joint entropy -sum P ln P.
func (s *Statistics) Entropy() (FeatureValue, error) {
	return s.perDirection(Entropy, func(dist *Distribution) (float64, error) {
		return vectorEntropy(dist.p.RawMatrix().Data), nil
	})
}

// DifferenceVariance computes sum k^2 p_{x-y}(k).
func (s *Statistics) DifferenceVariance() (FeatureValue, error) {
	return s.perDirection(DifferenceVariance, func(dist *Distribution) (float64, error) {
		var f float64
		for k, p := range dist.pDiff {
			f += float64(k*k) * p
		}
		return f, nil
	})
}

// DifferenceEntropy computes -sum p_{x-y} ln p_{x-y}.
func (s *Statistics) DifferenceEntropy() (FeatureValue, error) {
	return s.perDirection(DifferenceEntropy, func(dist *Distribution) (float64, error) {
		return vectorEntropy(dist.pDiff), nil
	})
}

// Dissimilarity computes sum |i-j| P[i][j].
func (s *Statistics) Dissimilarity() (FeatureValue, error) {
	return s.perDirection(Dissimilarity, func(dist *Distribution) (float64, error) {
		return cellSum(dist, func(i, j int) float64 { return float64(absInt(i - j)) }), nil
	})
}

// AutoCorrelation computes sum ij P[i][j].
func (s *Statistics) AutoCorrelation() (FeatureValue, error) {
	return s.perDirection(AutoCorrelation, func(dist *Distribution) (float64, error) {
		return autoCorrelation(dist), nil
	})
}

// clusterMoment computes sum (i + j - mux - muy)^n P[i][j].
func clusterMoment(idx []float64, dist *Distribution, n float64) float64 {
	muX := stat.Mean(idx, dist.px)
	muY := stat.Mean(idx, dist.py)
	return cellSum(dist, func(i, j int) float64 {
		return math.Pow(float64(i+j)-muX-muY, n)
	})
}

// ClusterShade computes sum (i + j - mux - muy)^3 P[i][j].
func (s *Statistics) ClusterShade() (FeatureValue, error) {
	idx := levelIndex(s.levels)
	return s.perDirection(ClusterShade, func(dist *Distribution) (float64, error) {
		return clusterMoment(idx, dist, 3), nil
	})
}

// ClusterProminence computes sum (i + j - mux - muy)^4 P[i][j].
func (s *Statistics) ClusterProminence() (FeatureValue, error) {
	idx := levelIndex(s.levels)
	return s.perDirection(ClusterProminence, func(dist *Distribution) (float64, error) {
		return clusterMoment(idx, dist, 4), nil
	})
}

// MaximumProbability returns the largest cell of P.
func (s *Statistics) MaximumProbability() (FeatureValue, error) {
	return s.perDirection(MaximumProbability, func(dist *Distribution) (float64, error) {
		return floats.Max(dist.p.RawMatrix().Data), nil
	})
}

// InformationMeasuresOfCorrelation computes both information measures of
// correlation from the shared entropy quantities.
//
//	IMC1 = (HXY - HXY1) / max(HX, HY)
//	IMC2 = sqrt(1 - exp(-2 (HXY2 - HXY)))
//
// IMC1 reports ErrDivideByZero when both marginals are degenerate
// (HX = HY = 0). The IMC2 exponent is clamped at zero so rounding cannot push
// the radicand negative.
func (s *Statistics) InformationMeasuresOfCorrelation() (imc1, imc2 FeatureValue, err error) {
	imc1, imc2, err1, err2 := s.informationMeasures()
	return imc1, imc2, errors.Join(err1, err2)
}

func (s *Statistics) informationMeasures() (imc1, imc2 FeatureValue, err1, err2 error) {
	imc1, err1 = s.perDirection(InformationMeasureOfCorrelationI, func(dist *Distribution) (float64, error) {
		e := dist.entropy
		denom := math.Max(e.HX, e.HY)
		if denom == 0 {
			return 0, ErrDivideByZero
		}
		return (e.HXY - e.HXY1) / denom, nil
	})
	imc2, err2 = s.perDirection(InformationMeasureOfCorrelationII, func(dist *Distribution) (float64, error) {
		e := dist.entropy
		diff := math.Max(e.HXY2-e.HXY, 0)
		return math.Sqrt(1 - math.Exp(-2*diff)), nil
	})
	return imc1, imc2, err1, err2
}

func vectorEntropy(v []float64) float64 {
	var h float64
	for _, p := range v {
		h -= plogp(p)
	}
	return h
}
