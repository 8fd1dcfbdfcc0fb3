package zones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEntry(t *testing.T) {
	tests := []struct {
		name      string
		price     []float64
		demand    []float64
		supply    []float64
		wantOK    bool
		wantPrice float64
		wantIndex int
		wantZone  Zone
		wantSig   Signal
	}{
		{
			name:      "first demand index wins",
			price:     []float64{10, 20, 30},
			demand:    []float64{5, 25, 35},
			supply:    []float64{0, 0, 0},
			wantOK:    true,
			wantPrice: 20,
			wantIndex: 1,
			wantZone:  DemandZone,
			wantSig:   Buy,
		},
		{
			name:      "demand ignores earlier supply signal",
			price:     []float64{10, 20, 30},
			demand:    []float64{0, 0, 30},
			supply:    []float64{5, 5, 5},
			wantOK:    true,
			wantPrice: 30,
			wantIndex: 2,
			wantZone:  DemandZone,
			wantSig:   Buy,
		},
		{
			name:      "supply when no demand",
			price:     []float64{10, 20, 30},
			demand:    []float64{0, 0, 0},
			supply:    []float64{50, 15, 25},
			wantOK:    true,
			wantPrice: 20,
			wantIndex: 1,
			wantZone:  SupplyZone,
			wantSig:   Sell,
		},
		{
			name:   "no entry",
			price:  []float64{10, 20},
			demand: []float64{0, 0},
			supply: []float64{100, 100},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok, err := FindEntry(tt.price, tt.demand, tt.supply)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, Entry{}, e)
				return
			}
			assert.Equal(t, tt.wantPrice, e.Price)
			assert.Equal(t, tt.wantIndex, e.Index)
			assert.Equal(t, tt.wantZone, e.Zone)
			assert.Equal(t, tt.wantSig, e.Signal)
		})
	}
}

func TestFindEntryInvalidInput(t *testing.T) {
	_, ok, err := FindEntry([]float64{1, 2}, []float64{1}, []float64{1, 2})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, ok, err = FindEntry(nil, nil, nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntryFromMasksMismatch(t *testing.T) {
	_, _, err := EntryFromMasks([]float64{1}, Masks{Demand: []bool{true, false}, Supply: []bool{true, false}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntryString(t *testing.T) {
	e := Entry{Index: 1, Price: 20, Zone: DemandZone, Signal: Buy}
	assert.Equal(t, "demand zone entry at 20.000000 (index 1, BUY)", e.String())
	assert.Equal(t, "none", NoZone.String())
	assert.Equal(t, "HOLD", Hold.String())
	assert.Equal(t, "SELL", Sell.String())
	assert.Equal(t, "supply", SupplyZone.String())
}
