package zones

import "fmt"

// Zone names the zone an entry price was taken from.
type Zone int

const (
	NoZone Zone = iota
	DemandZone
	SupplyZone
)

func (z Zone) String() string {
	switch z {
	case DemandZone:
		return "demand"
	case SupplyZone:
		return "supply"
	default:
		return "none"
	}
}

// Signal is the trade direction implied by an entry: Buy from the demand
// zone, Sell from the supply zone.
type Signal int

const (
	Hold Signal = iota
	Buy
	Sell
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// Entry is the price chosen to enter a trade.
type Entry struct {
	Index  int
	Price  float64
	Zone   Zone
	Signal Signal
}

func (e Entry) String() string {
	return fmt.Sprintf("%s zone entry at %f (index %d, %s)", e.Zone, e.Price, e.Index, e.Signal)
}

// FindEntry picks the entry price for a trade.
//
// The first price in the demand zone wins. The supply zone is only
// consulted when no price is in the demand zone. ok is false when neither
// zone holds any price.
func FindEntry(price, demand, supply []float64) (e Entry, ok bool, err error) {
	m, err := Classify(price, demand, supply)
	if err != nil {
		return Entry{}, false, err
	}
	return EntryFromMasks(price, m)
}

// EntryFromMasks selects the entry from masks already built by Classify.
func EntryFromMasks(price []float64, m Masks) (Entry, bool, error) {
	if len(price) != m.Len() || len(m.Supply) != m.Len() {
		return Entry{}, false, fmt.Errorf("%w: price has %d values, masks have %d/%d",
			ErrInvalidInput, len(price), len(m.Demand), len(m.Supply))
	}

	if i, ok := m.FirstDemand(); ok {
		return Entry{Index: i, Price: price[i], Zone: DemandZone, Signal: Buy}, true, nil
	}
	if i, ok := m.FirstSupply(); ok {
		return Entry{Index: i, Price: price[i], Zone: SupplyZone, Signal: Sell}, true, nil
	}
	return Entry{}, false, nil
}
