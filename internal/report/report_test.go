package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glcm-texture/internal/glcm"
)

func sampleEntries() []Entry {
	nan := math.NaN()
	return []Entry{
		{
			Region: "patch",
			Bounds: image.Rect(1, 2, 5, 8),
			Pairs:  [glcm.NumDirections]int{24, 20, 15, 15},
			Results: glcm.Results{
				glcm.Contrast: glcm.NewFeatureValue(1, 2, 3, 4),
				glcm.Energy:   glcm.NewFeatureValue(0.5, 0.5, 0.5, 0.5),
			},
		},
		{
			Region: "strip",
			Bounds: image.Rect(0, 0, 3, 1),
			Pairs:  [glcm.NumDirections]int{4, 0, 0, 0},
			Results: glcm.Results{
				glcm.Contrast: glcm.NewFeatureValue(1, nan, nan, nan),
				glcm.Energy:   glcm.NewFeatureValue(0.25, nan, nan, nan),
			},
			Err: errors.Join(
				&glcm.FeatureError{Feature: glcm.Contrast, Direction: glcm.Vertical, Err: glcm.ErrNoData},
				&glcm.FeatureError{Feature: glcm.Energy, Direction: glcm.Vertical, Err: glcm.ErrNoData},
			),
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleEntries()))
	out := buf.String()

	assert.Contains(t, out, "Region patch (1,2)-(5,8)")
	assert.Contains(t, out, "Pairs: H=24 V=20 LD=15 RD=15")
	assert.Regexp(t, `energy\s+0\.5\s+0\.5\s+0\.5\s+0\.5\s+0\.5`, out)
	assert.Regexp(t, `contrast\s+1\s+n/a\s+n/a\s+n/a\s+1\n`, out)
	assert.Contains(t, out, "warning: contrast[V]: glcm: no pairs counted for direction")
	assert.Contains(t, out, "Total: 2 regions")

	// energy is declared before contrast
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("energy")), bytes.Index(buf.Bytes(), []byte("contrast")))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, []string{"region", "x", "y", "width", "height", "pairs_H", "pairs_V", "pairs_LD", "pairs_RD"}, header[:9])
	assert.Equal(t, []string{"energy_H", "energy_V", "energy_LD", "energy_RD", "energy_avg"}, header[9:14])
	assert.Equal(t, "contrast_avg", header[len(header)-1])

	patch := records[1]
	assert.Equal(t, []string{"patch", "1", "2", "4", "6", "24", "20", "15", "15"}, patch[:9])
	assert.Equal(t, "2.5", patch[len(patch)-1])

	strip := records[2]
	col := func(name string) string {
		for i, h := range header {
			if h == name {
				return strip[i]
			}
		}
		t.Fatalf("no column %s", name)
		return ""
	}
	assert.Equal(t, "1", col("contrast_H"))
	assert.Empty(t, col("contrast_V"))
	assert.Equal(t, "0.25", col("energy_avg"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleEntries()))

	var decoded []struct {
		Region   string                         `json:"region"`
		Bounds   map[string]int                 `json:"bounds"`
		Pairs    map[string]int                 `json:"pairs"`
		Features map[string]map[string]*float64 `json:"features"`
		Errors   []string                       `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "patch", decoded[0].Region)
	assert.Equal(t, map[string]int{"x": 1, "y": 2, "width": 4, "height": 6}, decoded[0].Bounds)
	assert.Equal(t, 20, decoded[0].Pairs["V"])
	require.NotNil(t, decoded[0].Features["contrast"]["RD"])
	assert.InDelta(t, 4.0, *decoded[0].Features["contrast"]["RD"], 1e-12)
	assert.Empty(t, decoded[0].Errors)

	assert.Nil(t, decoded[1].Features["energy"]["V"])
	require.NotNil(t, decoded[1].Features["energy"]["avg"])
	assert.InDelta(t, 0.25, *decoded[1].Features["energy"]["avg"], 1e-12, "same average as the CSV energy_avg column")
	assert.Len(t, decoded[1].Errors, 2)
}

func TestErrorLines(t *testing.T) {
	assert.Nil(t, errorLines(nil))
	assert.Equal(t, []string{"boom"}, errorLines(errors.New("boom")))

	nested := errors.Join(errors.New("a"), errors.Join(errors.New("b"), errors.New("c")))
	assert.Equal(t, []string{"a", "b", "c"}, errorLines(nested))
}
