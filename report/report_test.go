package report

import (
	"bytes"
	"testing"

	"github.com/rustyeddy/zones/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEntryAndCurves(t *testing.T) {
	var buf bytes.Buffer
	r := Report{
		Entry: &EntryResult{Entry: zones.Entry{Index: 0, Price: 0, Zone: zones.DemandZone, Signal: zones.Buy}, OK: true},
		Curves: &zones.CurveAnalysis{
			Opportunities: []int{0, 1, 2, 3, 4},
			Equilibria:    []zones.Point{},
		},
	}
	require.NoError(t, r.Write(&buf))

	want := "0\n" +
		"Potential trading opportunities at indices: [0 1 2 3 4]\n" +
		"No equilibrium price found.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteNoEntry(t *testing.T) {
	var buf bytes.Buffer
	r := Report{Entry: &EntryResult{}}
	require.NoError(t, r.Write(&buf))
	assert.Equal(t, "none\n", buf.String())
}

func TestEntryLineVerbose(t *testing.T) {
	e := zones.Entry{Index: 2, Price: 30.5, Zone: zones.SupplyZone, Signal: zones.Sell}
	assert.Equal(t, "30.5", EntryLine(e, true, false))
	assert.Equal(t, "supply zone entry at 30.500000 (index 2, SELL)", EntryLine(e, true, true))
	assert.Equal(t, None, EntryLine(e, false, true))
}

func TestEquilibriumLines(t *testing.T) {
	lines := EquilibriumLines([]zones.Point{{Index: 4, Value: 55}, {Index: 7, Value: 12.25}})
	assert.Equal(t, []string{
		"Equilibrium price: 55 (index 4)",
		"Equilibrium price: 12.25 (index 7)",
	}, lines)
}

func TestOpportunitiesLineEmpty(t *testing.T) {
	assert.Equal(t, "Potential trading opportunities at indices: []", OpportunitiesLine(nil))
}
