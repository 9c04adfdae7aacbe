package glcm

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureType identifies a texture feature.
type FeatureType int

const (
	Energy FeatureType = iota
	Contrast
	ContrastDirect
	Correlation
	CorrelationGLCM
	SumOfSquares
	SumOfSquaresJ
	HomogeneityI
	HomogeneityII
	InverseDifferenceNormalized
	InverseDifferenceMomentNormalized
	SumAverage
	SumVariance
	SumEntropy
	Entropy
	DifferenceVariance
	DifferenceEntropy
	Dissimilarity
	AutoCorrelation
	ClusterShade
	ClusterProminence
	MaximumProbability
	InformationMeasureOfCorrelationI
	InformationMeasureOfCorrelationII
	MaximalCorrelationCoefficient

	numFeatureTypes
)

var featureNames = [numFeatureTypes]string{
	Energy:                            "energy",
	Contrast:                          "contrast",
	ContrastDirect:                    "contrast_direct",
	Correlation:                       "correlation",
	CorrelationGLCM:                   "correlation_glcm",
	SumOfSquares:                      "sum_of_squares",
	SumOfSquaresJ:                     "sum_of_squares_j",
	HomogeneityI:                      "homogeneity_1",
	HomogeneityII:                     "homogeneity_2",
	InverseDifferenceNormalized:       "inverse_difference_normalized",
	InverseDifferenceMomentNormalized: "inverse_difference_moment_normalized",
	SumAverage:                        "sum_average",
	SumVariance:                       "sum_variance",
	SumEntropy:                        "sum_entropy",
	Entropy:                           "entropy",
	DifferenceVariance:                "difference_variance",
	DifferenceEntropy:                 "difference_entropy",
	Dissimilarity:                     "dissimilarity",
	AutoCorrelation:                   "auto_correlation",
	ClusterShade:                      "cluster_shade",
	ClusterProminence:                 "cluster_prominence",
	MaximumProbability:                "maximum_probability",
	InformationMeasureOfCorrelationI:  "information_measure_of_correlation_1",
	InformationMeasureOfCorrelationII: "information_measure_of_correlation_2",
	MaximalCorrelationCoefficient:     "maximal_correlation_coefficient",
}

func (t FeatureType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FeatureType(%d)", int(t))
	}
	return featureNames[t]
}

// Valid reports whether t is a known feature.
func (t FeatureType) Valid() bool {
	return t >= 0 && t < numFeatureTypes
}

// ParseFeatureType maps a feature name (case-insensitive, '-' or '_'
// separated) to its FeatureType.
func ParseFeatureType(name string) (FeatureType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range featureNames {
		if n == key {
			return FeatureType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// MarshalText encodes the feature by name so it can key JSON objects.
func (t FeatureType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFeature, int(t))
	}
	return []byte(featureNames[t]), nil
}

func (t *FeatureType) UnmarshalText(b []byte) error {
	v, err := ParseFeatureType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AllFeatures returns every feature type in declaration order.
func AllFeatures() []FeatureType {
	out := make([]FeatureType, numFeatureTypes)
	for i := range out {
		out[i] = FeatureType(i)
	}
	return out
}

// FeatureSet is a set of requested features.
type FeatureSet map[FeatureType]struct{}

// NewFeatureSet builds a set from the given types.
func NewFeatureSet(types ...FeatureType) FeatureSet {
	s := make(FeatureSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// ParseFeatureSet builds a set from feature names.
func ParseFeatureSet(names []string) (FeatureSet, error) {
	s := make(FeatureSet, len(names))
	for _, n := range names {
		t, err := ParseFeatureType(n)
		if err != nil {
			return nil, err
		}
		s[t] = struct{}{}
	}
	return s, nil
}

// Has reports whether t is in the set.
func (s FeatureSet) Has(t FeatureType) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the members in declaration order.
func (s FeatureSet) Sorted() []FeatureType {
	out := make([]FeatureType, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
