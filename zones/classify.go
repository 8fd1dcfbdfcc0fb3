// Package zones classifies prices against demand and supply curves and
// selects a trade entry from the result.
package zones

// Masks holds the per-index zone flags for a price series.
//
//	Demand[i] = price[i] <= demand[i]
//	Supply[i] = price[i] >= supply[i]
type Masks struct {
	Demand []bool
	Supply []bool
}

// Classify builds the demand and supply zone masks. The three series must
// be non-empty and of equal length.
func Classify(price, demand, supply []float64) (Masks, error) {
	if err := Validate(price, demand, supply); err != nil {
		return Masks{}, err
	}

	m := Masks{
		Demand: make([]bool, len(price)),
		Supply: make([]bool, len(price)),
	}
	for i, p := range price {
		m.Demand[i] = p <= demand[i]
		m.Supply[i] = p >= supply[i]
	}
	return m, nil
}

// Len returns the number of classified prices.
func (m Masks) Len() int { return len(m.Demand) }

// FirstDemand returns the first index inside the demand zone.
func (m Masks) FirstDemand() (int, bool) { return firstTrue(m.Demand) }

// FirstSupply returns the first index inside the supply zone.
func (m Masks) FirstSupply() (int, bool) { return firstTrue(m.Supply) }

// Count returns the number of indices in each zone.
func (m Masks) Count() (demand, supply int) {
	for i := range m.Demand {
		if m.Demand[i] {
			demand++
		}
		if m.Supply[i] {
			supply++
		}
	}
	return demand, supply
}

func firstTrue(bs []bool) (int, bool) {
	for i, b := range bs {
		if b {
			return i, true
		}
	}
	return -1, false
}
