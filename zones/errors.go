package zones

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when series are empty or their lengths differ.
var ErrInvalidInput = errors.New("invalid input")

func checkLengths(names []string, series ...[]float64) error {
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	n := len(series[0])
	for i, s := range series[1:] {
		if len(s) != n {
			return fmt.Errorf("%w: %s has %d values, %s has %d",
				ErrInvalidInput, names[i+1], len(s), names[0], n)
		}
	}
	return nil
}

// Validate reports whether price, demand and supply can be compared
// position by position.
func Validate(price, demand, supply []float64) error {
	return checkLengths([]string{"price", "demand", "supply"}, price, demand, supply)
}

// ValidateCurves is Validate for a demand/supply pair.
func ValidateCurves(demand, supply []float64) error {
	return checkLengths([]string{"demand", "supply"}, demand, supply)
}
