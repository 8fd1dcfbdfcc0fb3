// Package journal records analysis runs to CSV or SQLite.
package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/zones/config"
	"github.com/rustyeddy/zones/pkg/id"
	"github.com/rustyeddy/zones/zones"
)

// RunRecord is one CLI analysis.
type RunRecord struct {
	RunID   string
	Time    time.Time
	Command string
	Source  string
	Points  int

	HasEntry   bool
	EntryIndex int
	EntryPrice float64
	Zone       string
	Signal     string

	Opportunities []int
	Equilibria    int
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}

// NewRun starts a record with a fresh run ID.
func NewRun(command, source string) RunRecord {
	now := time.Now().UTC()
	return RunRecord{
		RunID:      id.NewAt(now),
		Time:       now,
		Command:    command,
		Source:     source,
		EntryIndex: -1,
		Zone:       zones.NoZone.String(),
		Signal:     zones.Hold.String(),
	}
}

func (r *RunRecord) SetEntry(e zones.Entry, ok bool) {
	r.HasEntry = ok
	if !ok {
		r.EntryIndex = -1
		r.EntryPrice = 0
		r.Zone = zones.NoZone.String()
		r.Signal = zones.Hold.String()
		return
	}
	r.EntryIndex = e.Index
	r.EntryPrice = e.Price
	r.Zone = e.Zone.String()
	r.Signal = e.Signal.String()
}

func (r *RunRecord) SetCurves(a zones.CurveAnalysis) {
	r.Opportunities = a.Opportunities
	r.Equilibria = len(a.Equilibria)
}

// Open returns the journal selected by cfg. It returns nil, nil when
// journaling is off.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "csv":
		j, err := NewCSV(cfg.RunsFile)
		if err != nil {
			return nil, fmt.Errorf("open csv journal: %w", err)
		}
		return j, nil
	case "sqlite":
		j, err := NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite journal: %w", err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	xs := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse index %q: %w", f, err)
		}
		xs[i] = x
	}
	return xs, nil
}
