package glcm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distribution is the normalized co-occurrence data for one direction.
type Distribution struct {
	dir     Direction
	total   int
	p       *mat.Dense
	px      []float64
	py      []float64
	pSum    []float64
	pDiff   []float64
	entropy EntropyTerms
}

// Empty reports whether no pairs were counted for this direction.
func (d *Distribution) Empty() bool {
	return d.total == 0
}

// Statistics is the frozen, normalized view of an Accumulator. It is never
// modified after Normalize returns, so features may be computed from it in
// any order.
type Statistics struct {
	levels int
	dist   [NumDirections]*Distribution
	opts   settings
}

// Normalize divides each count matrix by its normalization factor and derives
// the marginal vectors and entropies. It returns a fresh Statistics on every
// call and leaves the counts untouched. Directions with R = 0 are marked
// empty; every feature reports ErrNoData for them.
func (a *Accumulator) Normalize() *Statistics {
	s := &Statistics{levels: a.levels, opts: a.opts}
	ng := a.levels
	for _, d := range Directions {
		dist := &Distribution{
			dir:   d,
			total: a.totals[d],
			px:    make([]float64, ng),
			py:    make([]float64, ng),
			pSum:  make([]float64, 2*ng-1),
			pDiff: make([]float64, ng),
		}
		data := make([]float64, ng*ng)
		if dist.total > 0 {
			r := float64(dist.total)
			for k, c := range a.counts[d] {
				data[k] = float64(c) / r
			}
		} else {
			a.opts.logger.Warn().Str("direction", d.String()).Msg("no pairs counted")
		}
		dist.p = mat.NewDense(ng, ng, data)
		deriveMarginals(dist, ng)
		dist.entropy = computeEntropy(dist, ng)
		s.dist[d] = dist

		a.opts.logger.Debug().
			Str("direction", d.String()).
			Int("pairs", dist.total).
			Float64("mass", floats.Sum(data)).
			Msg("normalized")
	}
	return s
}

// deriveMarginals fills px, py, p_{x+y} and p_{x-y} from the probability matrix.
func deriveMarginals(dist *Distribution, ng int) {
	for i := 0; i < ng; i++ {
		row := dist.p.RawRowView(i)
		for j, p := range row {
			dist.px[i] += p
			dist.py[j] += p
			dist.pSum[i+j] += p
			dist.pDiff[absInt(i-j)] += p
		}
	}
}

// Levels returns the grey-level count Ng.
func (s *Statistics) Levels() int {
	return s.levels
}

// Empty reports whether direction d had no counted pairs.
func (s *Statistics) Empty(d Direction) bool {
	if !d.Valid() {
		return true
	}
	return s.dist[d].Empty()
}

// Total returns the normalization factor R for d.
func (s *Statistics) Total(d Direction) int {
	if !d.Valid() {
		return 0
	}
	return s.dist[d].total
}

// Prob returns a copy of the probability matrix for d, or nil for an
// invalid direction.
func (s *Statistics) Prob(d Direction) *mat.Dense {
	if !d.Valid() {
		return nil
	}
	return mat.DenseCopyOf(s.dist[d].p)
}

// Px returns a copy of the row marginal for d. Px, Py, PSum and PDiff
// return nil for an invalid direction.
func (s *Statistics) Px(d Direction) []float64 {
	if !d.Valid() {
		return nil
	}
	return append([]float64(nil), s.dist[d].px...)
}

// Py returns a copy of the column marginal for d.
func (s *Statistics) Py(d Direction) []float64 {
	if !d.Valid() {
		return nil
	}
	return append([]float64(nil), s.dist[d].py...)
}

// PSum returns a copy of the sum projection p_{x+y} for d, indexed 0..2Ng-2.
func (s *Statistics) PSum(d Direction) []float64 {
	if !d.Valid() {
		return nil
	}
	return append([]float64(nil), s.dist[d].pSum...)
}

// PDiff returns a copy of the difference projection p_{x-y} for d, indexed 0..Ng-1.
func (s *Statistics) PDiff(d Direction) []float64 {
	if !d.Valid() {
		return nil
	}
	return append([]float64(nil), s.dist[d].pDiff...)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
