package glcm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"glcm-texture/internal/glcm"
)

func TestNormalize_DiagonalScenario(t *testing.T) {
	t.Parallel()

	stats := accumulate(t, diagonal, glcm.Horizontal).Normalize()

	require.False(t, stats.Empty(glcm.Horizontal))
	assert.Equal(t, 4, stats.Total(glcm.Horizontal))

	want := mat.NewDense(2, 2, []float64{0.5, 0, 0, 0.5})
	assert.True(t, mat.EqualApprox(want, stats.Prob(glcm.Horizontal), eps))
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, stats.Px(glcm.Horizontal), eps)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, stats.Py(glcm.Horizontal), eps)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, stats.PSum(glcm.Horizontal), eps)
	assert.InDeltaSlice(t, []float64{1, 0}, stats.PDiff(glcm.Horizontal), eps)

	for _, d := range []glcm.Direction{glcm.Vertical, glcm.LeftDiagonal, glcm.RightDiagonal} {
		assert.True(t, stats.Empty(d), "direction %s", d)
	}
}

func TestNormalize_MassConservation(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		stats := statsAll(t, randomCounts(seed, 8, 20))
		for _, d := range glcm.Directions {
			p := stats.Prob(d)
			assert.InDelta(t, 1.0, mat.Sum(p), eps, "P mass seed=%d dir=%s", seed, d)
			assert.InDelta(t, 1.0, floats.Sum(stats.Px(d)), eps, "px")
			assert.InDelta(t, 1.0, floats.Sum(stats.Py(d)), eps, "py")
			assert.InDelta(t, 1.0, floats.Sum(stats.PSum(d)), eps, "p_sum")
			assert.InDelta(t, 1.0, floats.Sum(stats.PDiff(d)), eps, "p_diff")
			assert.Len(t, stats.PSum(d), 2*8-1)
			assert.Len(t, stats.PDiff(d), 8)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	acc := accumulate(t, randomCounts(42, 6, 9), glcm.Directions[:]...)
	first := acc.Normalize()
	second := acc.Normalize()

	require.NotSame(t, first, second)
	for _, d := range glcm.Directions {
		assert.True(t, mat.Equal(first.Prob(d), second.Prob(d)), "direction %s", d)
		assert.Equal(t, first.Px(d), second.Px(d))
		assert.Equal(t, first.PSum(d), second.PSum(d))
		assert.Equal(t, first.Entropies(d), second.Entropies(d))
	}
}

func TestNormalize_FrozenAgainstLaterCounts(t *testing.T) {
	t.Parallel()

	acc := accumulate(t, diagonal, glcm.Horizontal)
	stats := acc.Normalize()
	require.NoError(t, acc.CountPair(glcm.Horizontal, 0, 1))

	assert.Equal(t, 4, stats.Total(glcm.Horizontal))
	assert.InDelta(t, 0.0, stats.Prob(glcm.Horizontal).At(0, 1), eps)
}

func TestProb_ReturnsCopy(t *testing.T) {
	t.Parallel()

	stats := statsAll(t, uniform)
	p := stats.Prob(glcm.Vertical)
	p.Set(0, 0, 99)
	px := stats.Px(glcm.Vertical)
	px[0] = 99

	assert.InDelta(t, 0.25, stats.Prob(glcm.Vertical).At(0, 0), eps)
	assert.InDelta(t, 0.5, stats.Px(glcm.Vertical)[0], eps)
}

func TestNormalize_EmptyDirectionHasNoNaN(t *testing.T) {
	t.Parallel()

	stats := accumulate(t, diagonal, glcm.Horizontal).Normalize()
	p := stats.Prob(glcm.Vertical)
	r, c := p.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.False(t, math.IsNaN(p.At(i, j)))
		}
	}
	assert.Equal(t, glcm.EntropyTerms{}, stats.Entropies(glcm.Vertical))
}

func TestStatistics_InvalidDirection(t *testing.T) {
	t.Parallel()

	stats := statsAll(t, diagonal)
	for _, d := range []glcm.Direction{-1, glcm.NumDirections} {
		assert.Nil(t, stats.Prob(d))
		assert.Nil(t, stats.Px(d))
		assert.Nil(t, stats.Py(d))
		assert.Nil(t, stats.PSum(d))
		assert.Nil(t, stats.PDiff(d))
		assert.True(t, stats.Empty(d))
		assert.Zero(t, stats.Total(d))
	}
}
