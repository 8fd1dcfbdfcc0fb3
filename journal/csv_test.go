package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, header, rows[0])
}

func TestCSVJournalRecordRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = j.RecordRun(RunRecord{
		RunID:         "01HKZ0000000000000000000AA",
		Time:          ts,
		Command:       "entry",
		Source:        "series.csv",
		Points:        3,
		HasEntry:      true,
		EntryIndex:    1,
		EntryPrice:    20,
		Zone:          "demand",
		Signal:        "BUY",
		Opportunities: []int{0, 2},
		Equilibria:    0,
	})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	want := []string{
		"01HKZ0000000000000000000AA",
		ts.Format(time.RFC3339),
		"entry",
		"series.csv",
		"3",
		"true",
		"1",
		"20.000000",
		"demand",
		"BUY",
		"0 2",
		"0",
	}
	assert.Equal(t, want, rows[1])
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.csv")
	for i := 0; i < 2; i++ {
		j, err := NewCSV(path)
		require.NoError(t, err)
		require.NoError(t, j.RecordRun(NewRun("demo", "linear(100)")))
		require.NoError(t, j.Close())
	}

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
}
