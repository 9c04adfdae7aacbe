package glcm

import "math"

// EntropyTerms holds the entropy quantities used by the information measures of
// correlation. All logarithms are natural.
type EntropyTerms struct {
	HX   float64 // entropy of px
	HY   float64 // entropy of py
	HXY  float64 // joint entropy of P
	HXY1 float64 // -sum P(i,j) ln(px(i) py(j))
	HXY2 float64 // -sum px(i) py(j) ln(px(i) py(j))
}

// Entropies returns the entropy quantities computed for direction d.
func (s *Statistics) Entropies(d Direction) EntropyTerms {
	if !d.Valid() {
		return EntropyTerms{}
	}
	return s.dist[d].entropy
}

// ComputeEntropies recomputes the entropy quantities of every direction from
// the normalized distributions.
func (s *Statistics) ComputeEntropies() [NumDirections]EntropyTerms {
	var out [NumDirections]EntropyTerms
	for _, d := range Directions {
		out[d] = computeEntropy(s.dist[d], s.levels)
	}
	return out
}

func computeEntropy(dist *Distribution, ng int) EntropyTerms {
	var e EntropyTerms
	for i := 0; i < ng; i++ {
		e.HX -= plogp(dist.px[i])
		e.HY -= plogp(dist.py[i])
	}
	for i := 0; i < ng; i++ {
		row := dist.p.RawRowView(i)
		for j, p := range row {
			e.HXY -= plogp(p)
			q := dist.px[i] * dist.py[j]
			if q > 0 {
				e.HXY1 -= p * math.Log(q)
				e.HXY2 -= q * math.Log(q)
			}
		}
	}
	return e
}

// plogp returns p ln p, treating non-positive p as contributing zero.
func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log(p)
}
