package linkage

import "math"

// updateRule rewrites the distance from the freshly merged cluster A∪B to a
// surviving cluster C, given the three pre-merge distances and the cluster
// sizes. All five criteria share this Lance–Williams-style signature, which
// keeps the engine generic over the criterion.
type updateRule func(dAC, dBC, dAB float64, sA, sB, sC int) float64

// rules resolves a Method to its update rule. Centroid and Ward follow the
// Lance–Williams recurrences on *squared* distances (the form that is exact
// for Euclidean input); the working distances stay unsquared, so both rules
// square on entry and take the root on exit.
func rules(m Method) (updateRule, bool) {
	switch m {
	case Complete:
		return completeRule, true
	case Average:
		return averageRule, true
	case Weighted:
		return weightedRule, true
	case Centroid:
		return centroidRule, true
	case Ward:
		return wardRule, true
	default:
		return nil, false
	}
}

// completeRule: d(A∪B, C) = max(d(A,C), d(B,C)).
func completeRule(dAC, dBC, _ float64, _, _, _ int) float64 {
	return math.Max(dAC, dBC)
}

// averageRule (UPGMA): size-weighted mean of the two child distances.
func averageRule(dAC, dBC, _ float64, sA, sB, _ int) float64 {
	return (float64(sA)*dAC + float64(sB)*dBC) / float64(sA+sB)
}

// weightedRule (WPGMA): plain mean, ignoring cluster sizes.
func weightedRule(dAC, dBC, _ float64, _, _, _ int) float64 {
	return (dAC + dBC) / 2
}

// centroidRule: squared-distance recurrence
//
//	d² = (|A|·dAC² + |B|·dBC²)/(|A|+|B|) − |A|·|B|·dAB²/(|A|+|B|)²
//
// Rounding can push d² a hair below zero for degenerate inputs; clamp.
func centroidRule(dAC, dBC, dAB float64, sA, sB, _ int) float64 {
	a, b := float64(sA), float64(sB)
	ab := a + b
	d2 := (a*dAC*dAC+b*dBC*dBC)/ab - a*b*dAB*dAB/(ab*ab)
	if d2 < 0 {
		d2 = 0
	}
	return math.Sqrt(d2)
}

// wardRule: squared-distance recurrence
//
//	d² = ((|A|+|C|)·dAC² + (|B|+|C|)·dBC² − |C|·dAB²) / (|A|+|B|+|C|)
func wardRule(dAC, dBC, dAB float64, sA, sB, sC int) float64 {
	a, b, c := float64(sA), float64(sB), float64(sC)
	d2 := ((a+c)*dAC*dAC + (b+c)*dBC*dBC - c*dAB*dAB) / (a + b + c)
	if d2 < 0 {
		d2 = 0
	}
	return math.Sqrt(d2)
}
