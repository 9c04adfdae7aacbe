// Package report formats texture analysis results as a console table, CSV or
// JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"glcm-texture/internal/glcm"
	"glcm-texture/pkg/geometry"
)

// Entry is the analysis result of one region.
type Entry struct {
	Region  string
	Bounds  image.Rectangle
	Pairs   [glcm.NumDirections]int
	Results glcm.Results
	Err     error // per-direction failures returned by Calculate
}

// WriteTable prints one block per region with a row per feature.
func WriteTable(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Region %s %v\n", e.Region, e.Bounds)
		fmt.Fprintf(w, "Pairs: H=%d V=%d LD=%d RD=%d\n",
			e.Pairs[glcm.Horizontal], e.Pairs[glcm.Vertical], e.Pairs[glcm.LeftDiagonal], e.Pairs[glcm.RightDiagonal])
		fmt.Fprintf(w, "%-38s %14s %14s %14s %14s %14s\n", "Feature", "H", "V", "LD", "RD", "Avg")
		fmt.Fprintln(w, strings.Repeat("-", 38+5*15))

		for _, ft := range sortedFeatures(e.Results) {
			v := e.Results[ft]
			avg, _ := v.AvgValid()
			fmt.Fprintf(w, "%-38s %14s %14s %14s %14s %14s\n", ft,
				tableValue(v.H()), tableValue(v.V()), tableValue(v.LD()), tableValue(v.RD()), tableValue(avg))
		}
		for _, line := range errorLines(e.Err) {
			fmt.Fprintf(w, "warning: %s\n", line)
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d regions\n", len(entries))
	return err
}

func tableValue(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

// WriteCSV writes one row per region. Columns are region, the bounds, the
// pair count per direction, then <feature>_<dir> and <feature>_avg for every
// feature present in any entry. NaN values are left empty.
func WriteCSV(w io.Writer, entries []Entry) error {
	features := featureColumns(entries)

	header := []string{"region", "x", "y", "width", "height"}
	for _, d := range glcm.Directions {
		header = append(header, "pairs_"+d.String())
	}
	for _, ft := range features {
		for _, d := range glcm.Directions {
			header = append(header, ft.String()+"_"+d.String())
		}
		header = append(header, ft.String()+"_avg")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.Region,
			strconv.Itoa(e.Bounds.Min.X), strconv.Itoa(e.Bounds.Min.Y),
			strconv.Itoa(e.Bounds.Dx()), strconv.Itoa(e.Bounds.Dy()),
		}
		for _, d := range glcm.Directions {
			row = append(row, strconv.Itoa(e.Pairs[d]))
		}
		for _, ft := range features {
			v, ok := e.Results[ft]
			if !ok {
				row = append(row, make([]string, glcm.NumDirections+1)...)
				continue
			}
			for _, d := range glcm.Directions {
				row = append(row, csvValue(v.At(d)))
			}
			avg, _ := v.AvgValid()
			row = append(row, csvValue(avg))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvValue(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

type jsonEntry struct {
	Region   string           `json:"region"`
	Bounds   geometry.RectInt `json:"bounds"`
	Pairs    map[string]int   `json:"pairs"`
	Features glcm.Results     `json:"features"`
	Errors   []string         `json:"errors,omitempty"`
}

// WriteJSON writes the entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		pairs := make(map[string]int, glcm.NumDirections)
		for _, d := range glcm.Directions {
			pairs[d.String()] = e.Pairs[d]
		}
		out[i] = jsonEntry{
			Region: e.Region,
			Bounds: geometry.RectInt{
				X: e.Bounds.Min.X, Y: e.Bounds.Min.Y,
				Width: e.Bounds.Dx(), Height: e.Bounds.Dy(),
			},
			Pairs:    pairs,
			Features: e.Results,
			Errors:   errorLines(e.Err),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func sortedFeatures(r glcm.Results) []glcm.FeatureType {
	out := make([]glcm.FeatureType, 0, len(r))
	for ft := range r {
		out = append(out, ft)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func featureColumns(entries []Entry) []glcm.FeatureType {
	union := glcm.Results{}
	for _, e := range entries {
		for ft, v := range e.Results {
			union[ft] = v
		}
	}
	return sortedFeatures(union)
}

// errorLines flattens a joined error into one message per failure.
func errorLines(err error) []string {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range j.Unwrap() {
			lines = append(lines, errorLines(e)...)
		}
		return lines
	}
	return []string{err.Error()}
}
