package glcm

import "fmt"

// Accumulator counts ordered grey-level pairs into one co-occurrence matrix
// per direction. The zero value is not usable; call NewAccumulator.
type Accumulator struct {
	levels int
	counts [NumDirections][]int
	totals [NumDirections]int
	opts   settings
}

// NewAccumulator allocates empty count matrices for the given grey-level count.
func NewAccumulator(levels int, opts ...Option) (*Accumulator, error) {
	if levels <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevels, levels)
	}
	a := &Accumulator{levels: levels, opts: defaultSettings()}
	for _, o := range opts {
		o(&a.opts)
	}
	for d := range a.counts {
		a.counts[d] = make([]int, levels*levels)
	}
	return a, nil
}

// Levels returns the grey-level count Ng.
func (a *Accumulator) Levels() int {
	return a.levels
}

// CountPair increments cell (i, j) of the direction's matrix and its
// normalization factor.
func (a *Accumulator) CountPair(d Direction, i, j int) error {
	if !d.Valid() {
		return fmt.Errorf("%w: direction %d", ErrOutOfRange, int(d))
	}
	if i < 0 || i >= a.levels || j < 0 || j >= a.levels {
		return fmt.Errorf("%w: grey levels (%d, %d) with Ng=%d", ErrOutOfRange, i, j, a.levels)
	}
	a.counts[d][i*a.levels+j]++
	a.totals[d]++
	return nil
}

// Count returns the raw count at (i, j) for a direction.
func (a *Accumulator) Count(d Direction, i, j int) int {
	if !d.Valid() || i < 0 || i >= a.levels || j < 0 || j >= a.levels {
		return 0
	}
	return a.counts[d][i*a.levels+j]
}

// Total returns the normalization factor R for a direction.
func (a *Accumulator) Total(d Direction) int {
	if !d.Valid() {
		return 0
	}
	return a.totals[d]
}

// Reset zeroes every count matrix and normalization factor.
func (a *Accumulator) Reset() {
	for d := range a.counts {
		clear(a.counts[d])
		a.totals[d] = 0
	}
}
