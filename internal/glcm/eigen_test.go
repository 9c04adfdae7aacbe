package glcm_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glcm-texture/internal/glcm"
)

func TestEigenSpectrum_Uniform(t *testing.T) {
	t.Parallel()

	values, err := statsAll(t, uniform).EigenSpectrum(glcm.Horizontal)
	require.NoError(t, err)
	require.Len(t, values, 2)

	re := []float64{real(values[0]), real(values[1])}
	sort.Float64s(re)
	assert.InDelta(t, 0.0, re[0], eps)
	assert.InDelta(t, 1.0, re[1], eps)
	for _, v := range values {
		assert.InDelta(t, 0.0, imag(v), eps)
	}
}

func TestEigenSpectrum_LeadingEigenvalueIsOne(t *testing.T) {
	t.Parallel()

	stats := statsAll(t, randomCounts(17, 5, 20))
	for _, d := range glcm.Directions {
		values, err := stats.EigenSpectrum(d)
		require.NoError(t, err)
		var maxAbs float64
		for _, v := range values {
			if a := cmplx.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		assert.InDelta(t, 1.0, maxAbs, 1e-8, "Q is row-stochastic")
	}
}

func TestEigenSpectrum_Errors(t *testing.T) {
	t.Parallel()

	stats := accumulate(t, uniform, glcm.Horizontal).Normalize()
	_, err := stats.EigenSpectrum(glcm.Vertical)
	require.ErrorIs(t, err, glcm.ErrNoData)

	_, err = stats.EigenSpectrum(glcm.Direction(-1))
	require.ErrorIs(t, err, glcm.ErrOutOfRange)
}

func TestMaximalCorrelationCoefficient_Range(t *testing.T) {
	t.Parallel()

	mcc, err := statsAll(t, randomCounts(23, 6, 15)).MaximalCorrelationCoefficient()
	require.NoError(t, err)
	for _, d := range glcm.Directions {
		assert.LessOrEqual(t, mcc.At(d), 1.0+1e-9)
		assert.GreaterOrEqual(t, mcc.At(d), -1.0-1e-9)
	}
}

func TestMaximalCorrelationCoefficient_SingleLevel(t *testing.T) {
	t.Parallel()

	mcc, err := statsAll(t, [][]int{{3}}).MaximalCorrelationCoefficient()
	require.ErrorIs(t, err, glcm.ErrSpectrum)
	for _, d := range glcm.Directions {
		assert.True(t, math.IsNaN(mcc.At(d)))
	}
}
