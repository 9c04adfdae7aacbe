// Package analysis runs the feed, normalize and calculate sequence over the
// regions of one image.
package analysis

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/rs/zerolog"

	"glcm-texture/internal/config"
	"glcm-texture/internal/glcm"
	"glcm-texture/internal/logging"
	"glcm-texture/internal/report"
	"glcm-texture/internal/roi"
)

// Analyzer evaluates the configured features on image regions.
type Analyzer struct {
	opts     roi.Options
	features glcm.FeatureSet
	imagTol  float64
	log      zerolog.Logger
}

// New validates the settings and prepares an Analyzer.
func New(s *config.Settings, log zerolog.Logger) (*Analyzer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	features, err := s.FeatureSet()
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		opts:     s.FeedOptions(),
		features: features,
		imagTol:  s.ImagTolerance,
		log:      logging.Component(log, "analysis"),
	}, nil
}

// Region analyses one region with a fresh engine. Per-direction feature
// failures are carried in the entry's Err; the returned error is reserved for
// failures that leave no result at all.
func (a *Analyzer) Region(img *image.Gray, region roi.Region) (report.Entry, error) {
	entry := report.Entry{Region: region.Name, Bounds: region.Bounds.Intersect(img.Bounds())}

	engine, err := glcm.NewEngine(a.opts.Levels,
		glcm.WithLogger(a.log.With().Str("region", region.Name).Logger()),
		glcm.WithImagTolerance(a.imagTol))
	if err != nil {
		return entry, err
	}

	st, err := roi.Feed(engine, img, region, a.opts)
	if err != nil {
		return entry, fmt.Errorf("region %s: %w", region.Name, err)
	}
	entry.Pairs = st.Pairs
	a.log.Debug().
		Str("region", region.Name).
		Int("counted", st.Unmasked).
		Int("masked", st.Masked).
		Msg("region fed")

	engine.Normalize()
	res, err := engine.Calculate(a.features)
	if res == nil {
		return entry, fmt.Errorf("region %s: %w", region.Name, err)
	}
	entry.Results = res
	entry.Err = err
	if err != nil {
		a.log.Warn().Str("region", region.Name).Err(err).Msg("some directions produced no value")
	}
	return entry, nil
}

// Regions analyses every region in parallel. Entries keep the input order.
// Regions that fail entirely are reported in the joined error and left out.
func (a *Analyzer) Regions(img *image.Gray, regions []roi.Region) ([]report.Entry, error) {
	entries := make([]report.Entry, len(regions))
	errs := make([]error, len(regions))

	var wg sync.WaitGroup
	for i, r := range regions {
		wg.Add(1)
		go func(idx int, region roi.Region) {
			defer wg.Done()
			entries[idx], errs[idx] = a.Region(img, region)
		}(i, r)
	}
	wg.Wait()

	out := entries[:0]
	for i, e := range entries {
		if errs[i] == nil {
			out = append(out, e)
		}
	}
	a.log.Info().Int("regions", len(regions)).Int("analysed", len(out)).Msg("analysis complete")
	return out, errors.Join(errs...)
}
