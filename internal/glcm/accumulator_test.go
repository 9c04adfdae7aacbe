package glcm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glcm-texture/internal/glcm"
)

func TestNewAccumulator_InvalidLevels(t *testing.T) {
	t.Parallel()

	for _, ng := range []int{0, -1, -256} {
		acc, err := glcm.NewAccumulator(ng)
		require.ErrorIs(t, err, glcm.ErrInvalidLevels)
		require.Nil(t, acc)
	}
}

func TestCountPair(t *testing.T) {
	t.Parallel()

	acc, err := glcm.NewAccumulator(4)
	require.NoError(t, err)

	require.NoError(t, acc.CountPair(glcm.Horizontal, 1, 2))
	require.NoError(t, acc.CountPair(glcm.Horizontal, 1, 2))
	require.NoError(t, acc.CountPair(glcm.RightDiagonal, 3, 0))

	assert.Equal(t, 2, acc.Count(glcm.Horizontal, 1, 2))
	assert.Equal(t, 0, acc.Count(glcm.Horizontal, 2, 1), "pairs are ordered")
	assert.Equal(t, 2, acc.Total(glcm.Horizontal))
	assert.Equal(t, 0, acc.Total(glcm.Vertical))
	assert.Equal(t, 1, acc.Total(glcm.RightDiagonal))
	assert.Equal(t, 4, acc.Levels())
}

func TestCountPair_OutOfRange(t *testing.T) {
	t.Parallel()

	acc, err := glcm.NewAccumulator(4)
	require.NoError(t, err)

	cases := []struct {
		name string
		dir  glcm.Direction
		i, j int
	}{
		{"negative i", glcm.Horizontal, -1, 0},
		{"i too large", glcm.Vertical, 4, 0},
		{"j too large", glcm.LeftDiagonal, 0, 4},
		{"bad direction", glcm.Direction(7), 0, 0},
	}
	for _, tc := range cases {
		require.ErrorIs(t, acc.CountPair(tc.dir, tc.i, tc.j), glcm.ErrOutOfRange, tc.name)
	}
	for _, d := range glcm.Directions {
		assert.Zero(t, acc.Total(d), "rejected pairs must not be counted")
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	acc := accumulate(t, diagonal, glcm.Directions[:]...)
	acc.Reset()

	for _, d := range glcm.Directions {
		assert.Zero(t, acc.Total(d))
		assert.Zero(t, acc.Count(d, 0, 0))
		assert.Zero(t, acc.Count(d, 1, 1))
	}

	stats := acc.Normalize()
	for _, d := range glcm.Directions {
		assert.True(t, stats.Empty(d))
	}
}
