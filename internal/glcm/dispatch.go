package glcm

import (
	"errors"
	"fmt"
)

// Results maps each requested feature to its value.
type Results map[FeatureType]FeatureValue

// libraryFunc computes a single feature from normalized statistics.
type libraryFunc func(s *Statistics) (FeatureValue, error)

var library = map[FeatureType]libraryFunc{
	Energy:                            (*Statistics).Energy,
	Contrast:                          (*Statistics).Contrast,
	ContrastDirect:                    (*Statistics).ContrastDirect,
	Correlation:                       (*Statistics).Correlation,
	CorrelationGLCM:                   (*Statistics).CorrelationGLCM,
	SumOfSquares:                      (*Statistics).SumOfSquares,
	SumOfSquaresJ:                     (*Statistics).SumOfSquaresJ,
	HomogeneityI:                      (*Statistics).HomogeneityI,
	HomogeneityII:                     (*Statistics).HomogeneityII,
	InverseDifferenceNormalized:       (*Statistics).InverseDifferenceNormalized,
	InverseDifferenceMomentNormalized: (*Statistics).InverseDifferenceMomentNormalized,
	SumAverage:                        (*Statistics).SumAverage,
	SumVariance:                       (*Statistics).SumVariance,
	SumEntropy:                        (*Statistics).SumEntropy,
	Entropy:                           (*Statistics).Entropy,
	DifferenceVariance:                (*Statistics).DifferenceVariance,
	DifferenceEntropy:                 (*Statistics).DifferenceEntropy,
	Dissimilarity:                     (*Statistics).Dissimilarity,
	AutoCorrelation:                   (*Statistics).AutoCorrelation,
	ClusterShade:                      (*Statistics).ClusterShade,
	ClusterProminence:                 (*Statistics).ClusterProminence,
	MaximumProbability:                (*Statistics).MaximumProbability,
	MaximalCorrelationCoefficient:     (*Statistics).MaximalCorrelationCoefficient,
}

// Calculate evaluates every requested feature. Unknown identifiers fail the
// whole request with ErrUnknownFeature and a nil mapping. Otherwise the
// mapping holds one entry per requested feature; per-direction failures
// (ErrNoData, ErrDivideByZero, ErrSpectrum) are returned joined alongside it
// and their slots hold NaN.
func (s *Statistics) Calculate(requested FeatureSet) (Results, error) {
	for t := range requested {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, t)
		}
	}

	out := make(Results, len(requested))
	var errs []error
	for _, t := range requested.Sorted() {
		switch t {
		case InformationMeasureOfCorrelationI, InformationMeasureOfCorrelationII:
			if _, done := out[t]; done {
				continue
			}
			imc1, imc2, err1, err2 := s.informationMeasures()
			if requested.Has(InformationMeasureOfCorrelationI) {
				out[InformationMeasureOfCorrelationI] = imc1
				errs = append(errs, err1)
			}
			if requested.Has(InformationMeasureOfCorrelationII) {
				out[InformationMeasureOfCorrelationII] = imc2
				errs = append(errs, err2)
			}
		default:
			v, err := library[t](s)
			out[t] = v
			if err != nil {
				errs = append(errs, err)
			}
		}
	}
	return out, errors.Join(errs...)
}
