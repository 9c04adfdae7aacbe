// Package config provides analysis settings and their JSON persistence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"glcm-texture/internal/glcm"
	"glcm-texture/internal/logging"
	"glcm-texture/internal/roi"
	"glcm-texture/pkg/geometry"
)

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

var (
	ErrInvalidRegion = errors.New("config: invalid region")
	ErrNoRegions     = errors.New("config: no regions")
)

// Settings describes one texture analysis run.
type Settings struct {
	Version int `json:"version"`

	// Image path (relative to the settings file)
	ImagePath string `json:"image,omitempty"`

	Levels        int      `json:"levels"`
	Distance      int      `json:"distance"`
	Features      []string `json:"features,omitempty"`
	ImagTolerance float64  `json:"imag_tolerance,omitempty"`
	UseOpenCV     bool     `json:"opencv"`
	LogLevel      string   `json:"log_level,omitempty"`

	Regions []RegionDef `json:"regions,omitempty"`
}

// RegionDef is a rectangle or a polygon, optionally restricted by a mask
// image. Exactly one of Rect and Polygon must be set.
type RegionDef struct {
	Name    string              `json:"name"`
	Rect    *geometry.RectInt   `json:"rect,omitempty"`
	Polygon []geometry.PointInt `json:"polygon,omitempty"`

	// Mask image path (relative to the settings file); non-black pixels are included
	MaskPath string `json:"mask,omitempty"`
}

// Default returns settings for a full 8-bit analysis of every feature at
// distance 1.
func Default() *Settings {
	return &Settings{
		Version:       CurrentVersion,
		Levels:        roi.MaxLevels,
		Distance:      1,
		ImagTolerance: glcm.DefaultImagTolerance,
		LogLevel:      "info",
	}
}

// Load reads settings from a JSON file. Missing numeric fields take their
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to a file.
func (s *Settings) Save(path string) error {
	s.Version = CurrentVersion

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges, feature names and region shapes.
func (s *Settings) Validate() error {
	if s.Levels <= 0 || s.Levels > roi.MaxLevels {
		return fmt.Errorf("%w: got %d", roi.ErrInvalidLevels, s.Levels)
	}
	if s.Distance <= 0 {
		return fmt.Errorf("%w: got %d", roi.ErrInvalidDistance, s.Distance)
	}
	if s.ImagTolerance < 0 {
		return fmt.Errorf("imag_tolerance must not be negative: %g", s.ImagTolerance)
	}
	if _, err := s.FeatureSet(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	for i, r := range s.Regions {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("region %d: %w", i, err)
		}
	}
	return nil
}

// FeatureSet returns the requested features; an empty list means all of them.
func (s *Settings) FeatureSet() (glcm.FeatureSet, error) {
	if len(s.Features) == 0 {
		return glcm.NewFeatureSet(glcm.AllFeatures()...), nil
	}
	return glcm.ParseFeatureSet(s.Features)
}

// FeedOptions returns the pixel-pair options for these settings.
func (s *Settings) FeedOptions() roi.Options {
	return roi.Options{Distance: s.Distance, Levels: s.Levels}
}

// ResolvePath resolves a path stored relative to the settings file.
func ResolvePath(settingsPath, p string) string {
	if p == "" || filepath.IsAbs(p) || settingsPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(settingsPath), p)
}

// SetImage stores imagePath relative to the settings file when possible.
func (s *Settings) SetImage(settingsPath, imagePath string) {
	rel, err := filepath.Rel(filepath.Dir(settingsPath), imagePath)
	if err != nil {
		s.ImagePath = imagePath
		return
	}
	s.ImagePath = rel
}

// Validate checks that the region has exactly one shape.
func (r RegionDef) Validate() error {
	switch {
	case r.Rect != nil && len(r.Polygon) > 0:
		return fmt.Errorf("%w: %q has both rect and polygon", ErrInvalidRegion, r.Name)
	case r.Rect != nil:
		if r.Rect.Empty() {
			return fmt.Errorf("%w: %q has an empty rect", ErrInvalidRegion, r.Name)
		}
	case len(r.Polygon) > 0:
		if _, err := geometry.NewPolygon(r.Polygon); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidRegion, r.Name, err)
		}
	default:
		return fmt.Errorf("%w: %q has no shape", ErrInvalidRegion, r.Name)
	}
	return nil
}

// Region converts the definition into a feed region. Polygon regions are masked by
// ray casting; a mask image, if any, is attached by the caller.
func (r RegionDef) Region(distance int) (roi.Region, error) {
	if err := r.Validate(); err != nil {
		return roi.Region{}, err
	}
	if r.Rect != nil {
		return roi.RectRegion(r.Name, r.Rect.ToImage()), nil
	}
	poly, _ := geometry.NewPolygon(r.Polygon)
	return roi.PolygonRegion(r.Name, poly, distance), nil
}
