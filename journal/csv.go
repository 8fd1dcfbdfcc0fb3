package journal

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"time"
)

var header = []string{
	"run_id", "time", "command", "source", "points", "has_entry",
	"entry_index", "entry_price", "zone", "signal", "opportunities", "equilibria",
}

// CSVJournal appends runs to a CSV file. The header is written when the
// file is new or empty.
type CSVJournal struct {
	runs *csv.Writer
	f    *os.File
}

// NewCSV opens path for appending, creating it if needed.
func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{runs: w, f: f}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Time.Format(time.RFC3339),
		r.Command,
		r.Source,
		strconv.Itoa(r.Points),
		strconv.FormatBool(r.HasEntry),
		strconv.Itoa(r.EntryIndex),
		f(r.EntryPrice),
		r.Zone,
		r.Signal,
		joinInts(r.Opportunities),
		strconv.Itoa(r.Equilibria),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	return errors.Join(j.runs.Error(), j.f.Close())
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
