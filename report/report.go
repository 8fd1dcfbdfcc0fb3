// Package report formats zone analysis results as text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rustyeddy/zones/zones"
)

// None is printed in place of an entry price when no zone was hit.
const None = "none"

// Report collects the results printed by the CLI. A nil field is skipped.
type Report struct {
	Entry   *EntryResult
	Curves  *zones.CurveAnalysis
	Verbose bool
}

// EntryResult wraps the outcome of zones.FindEntry.
type EntryResult struct {
	Entry zones.Entry
	OK    bool
}

// Write prints the report to w, one line per result.
func (r Report) Write(w io.Writer) error {
	if r.Entry != nil {
		if _, err := fmt.Fprintln(w, EntryLine(r.Entry.Entry, r.Entry.OK, r.Verbose)); err != nil {
			return err
		}
	}
	if r.Curves != nil {
		if _, err := fmt.Fprintln(w, OpportunitiesLine(r.Curves.Opportunities)); err != nil {
			return err
		}
		for _, line := range EquilibriumLines(r.Curves.Equilibria) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// EntryLine renders the entry price, or None.
func EntryLine(e zones.Entry, ok, verbose bool) string {
	if !ok {
		return None
	}
	if verbose {
		return e.String()
	}
	return Float(e.Price)
}

// OpportunitiesLine lists the indices where demand exceeds supply.
func OpportunitiesLine(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return "Potential trading opportunities at indices: [" + strings.Join(parts, " ") + "]"
}

// EquilibriumLines returns one line per equilibrium point, or a single
// line saying none was found.
func EquilibriumLines(pts []zones.Point) []string {
	if len(pts) == 0 {
		return []string{"No equilibrium price found."}
	}
	lines := make([]string, len(pts))
	for i, p := range pts {
		lines[i] = fmt.Sprintf("Equilibrium price: %s (index %d)", Float(p.Value), p.Index)
	}
	return lines
}

// Float formats a price with the fewest digits that round-trip.
func Float(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
