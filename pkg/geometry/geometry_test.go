package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRect(t *testing.T) {
	r, err := ParseRect("10, 20,30,40")
	require.NoError(t, err)
	assert.Equal(t, RectInt{X: 10, Y: 20, Width: 30, Height: 40}, r)
	assert.Equal(t, image.Rect(10, 20, 40, 60), r.ToImage())

	for _, bad := range []string{"1,2,3", "a,b,c,d", "0,0,0,5", "0,0,5,-1"} {
		_, err := ParseRect(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePoints(t *testing.T) {
	pts, err := ParsePoints("0,0; 10,0;10,10;")
	require.NoError(t, err)
	assert.Equal(t, []PointInt{{0, 0}, {10, 0}, {10, 10}}, pts)

	_, err = ParsePoints("0,0;1")
	assert.Error(t, err)
}

func TestPolygonContains(t *testing.T) {
	square, err := NewPolygon([]PointInt{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	require.NoError(t, err)

	assert.True(t, square.Contains(5, 5))
	assert.True(t, square.Contains(1, 9))
	assert.False(t, square.Contains(11, 5))
	assert.False(t, square.Contains(-1, 5))
	assert.Equal(t, image.Rect(0, 0, 11, 11), square.Bounds())

	triangle, err := NewPolygon([]PointInt{{0, 0}, {10, 0}, {0, 10}})
	require.NoError(t, err)
	assert.True(t, triangle.Contains(2, 2))
	assert.False(t, triangle.Contains(8, 8))
}

func TestNewPolygon_TooFewVertices(t *testing.T) {
	_, err := NewPolygon([]PointInt{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrTooFewVertices)
}
