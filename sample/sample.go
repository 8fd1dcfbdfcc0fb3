// Package sample provides the built-in demand/supply data sets.
package sample

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultPoints is the size of the default linear scenario.
const DefaultPoints = 100

// Scenario is a price series with demand and supply curves of the same length.
type Scenario struct {
	Price  []float64
	Demand []float64
	Supply []float64
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Linear builds n prices spread over [0, 100] with demand = 100 - price
// and supply = price.
func Linear(n int) Scenario {
	return LinearRange(0, 100, n)
}

// LinearRange is Linear over [lo, hi], with demand mirrored as hi + lo - price.
func LinearRange(lo, hi float64, n int) Scenario {
	price := Linspace(lo, hi, n)

	demand := make([]float64, len(price))
	floats.AddConst(hi+lo, demand)
	floats.Sub(demand, price)

	supply := make([]float64, len(price))
	copy(supply, price)

	return Scenario{Price: price, Demand: demand, Supply: supply}
}

// ExampleCurves returns the fixed ten point demand and supply curves.
func ExampleCurves() (demand, supply []float64) {
	demand = []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}
	supply = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	return demand, supply
}
