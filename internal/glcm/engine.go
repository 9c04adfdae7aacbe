package glcm

// Engine keeps the count, normalize, calculate sequence for one region at a
// time. It is not safe for concurrent use; analyse independent regions with
// independent engines.
type Engine struct {
	acc   *Accumulator
	stats *Statistics
}

// NewEngine creates an engine with empty counts for the given grey-level count.
func NewEngine(levels int, opts ...Option) (*Engine, error) {
	acc, err := NewAccumulator(levels, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{acc: acc}, nil
}

// Levels returns the grey-level count Ng.
func (e *Engine) Levels() int {
	return e.acc.Levels()
}

// Reset clears all counts and derived statistics before a new region.
func (e *Engine) Reset() {
	e.acc.Reset()
	e.stats = nil
}

// CountPair records one (neighbor, center) grey-level pair. Any previously
// normalized statistics are discarded.
func (e *Engine) CountPair(d Direction, i, j int) error {
	e.stats = nil
	return e.acc.CountPair(d, i, j)
}

// Total returns the pair count for a direction.
func (e *Engine) Total(d Direction) int {
	return e.acc.Total(d)
}

// Normalize freezes the current counts into statistics. Calling it again
// without new counts yields identical probabilities.
func (e *Engine) Normalize() *Statistics {
	e.stats = e.acc.Normalize()
	return e.stats
}

// Statistics returns the last normalized statistics, or nil.
func (e *Engine) Statistics() *Statistics {
	return e.stats
}

// ComputeEntropies returns the entropy quantities of every direction.
func (e *Engine) ComputeEntropies() ([NumDirections]EntropyTerms, error) {
	if e.stats == nil {
		return [NumDirections]EntropyTerms{}, ErrNotNormalized
	}
	return e.stats.ComputeEntropies(), nil
}

// Calculate evaluates the requested features on the normalized statistics.
func (e *Engine) Calculate(requested FeatureSet) (Results, error) {
	if e.stats == nil {
		return nil, ErrNotNormalized
	}
	return e.stats.Calculate(requested)
}

// MaximalCorrelationCoefficient evaluates the eigenvalue-based feature.
func (e *Engine) MaximalCorrelationCoefficient() (FeatureValue, error) {
	if e.stats == nil {
		return FeatureValue{}, ErrNotNormalized
	}
	return e.stats.MaximalCorrelationCoefficient()
}
