package zones

// Point is a single position on a curve.
type Point struct {
	Index int
	Value float64
}

// CurveAnalysis summarizes how a demand curve relates to a supply curve.
type CurveAnalysis struct {
	Opportunities []int
	Equilibria    []Point
}

// HasEquilibrium reports whether demand met supply exactly anywhere.
func (c CurveAnalysis) HasEquilibrium() bool { return len(c.Equilibria) > 0 }

// Opportunities returns, in ascending order, every index where demand is
// strictly greater than supply.
func Opportunities(demand, supply []float64) ([]int, error) {
	if err := ValidateCurves(demand, supply); err != nil {
		return nil, err
	}

	idx := []int{}
	for i := range demand {
		if demand[i] > supply[i] {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// Equilibrium returns every index where demand exactly equals supply.
// Curves that cross between two samples have no equilibrium.
func Equilibrium(demand, supply []float64) ([]Point, error) {
	if err := ValidateCurves(demand, supply); err != nil {
		return nil, err
	}

	pts := []Point{}
	for i := range demand {
		if demand[i] == supply[i] {
			pts = append(pts, Point{Index: i, Value: demand[i]})
		}
	}
	return pts, nil
}

// Analyze runs Opportunities and Equilibrium over the same curves.
func Analyze(demand, supply []float64) (CurveAnalysis, error) {
	opp, err := Opportunities(demand, supply)
	if err != nil {
		return CurveAnalysis{}, err
	}
	eq, err := Equilibrium(demand, supply)
	if err != nil {
		return CurveAnalysis{}, err
	}
	return CurveAnalysis{Opportunities: opp, Equilibria: eq}, nil
}
