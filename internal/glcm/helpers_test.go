package glcm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"glcm-texture/internal/glcm"
)

const eps = 1e-9

// accumulate fills the listed directions with the given raw count matrix.
func accumulate(t *testing.T, counts [][]int, dirs ...glcm.Direction) *glcm.Accumulator {
	t.Helper()
	acc, err := glcm.NewAccumulator(len(counts))
	require.NoError(t, err)
	for _, d := range dirs {
		for i, row := range counts {
			for j, c := range row {
				for n := 0; n < c; n++ {
					require.NoError(t, acc.CountPair(d, i, j))
				}
			}
		}
	}
	return acc
}

// statsAll normalizes the same counts in every direction.
func statsAll(t *testing.T, counts [][]int) *glcm.Statistics {
	t.Helper()
	return accumulate(t, counts, glcm.Directions[:]...).Normalize()
}

func randomCounts(seed int64, ng, maxCount int) [][]int {
	r := rand.New(rand.NewSource(seed))
	counts := make([][]int, ng)
	for i := range counts {
		counts[i] = make([]int, ng)
		for j := range counts[i] {
			counts[i][j] = 1 + r.Intn(maxCount)
		}
	}
	return counts
}

func requireAllDirections(t *testing.T, want float64, got glcm.FeatureValue, msg string) {
	t.Helper()
	for _, d := range glcm.Directions {
		require.InDelta(t, want, got.At(d), eps, "%s [%s]", msg, d)
	}
}

var (
	diagonal = [][]int{{2, 0}, {0, 2}}
	uniform  = [][]int{{1, 1}, {1, 1}}
	oneHot   = [][]int{{0, 0, 0}, {0, 5, 0}, {0, 0, 0}}
)
