package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, time, command, source, points, has_entry, entry_index, entry_price, zone, signal, opportunities, equilibria)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Time, r.Command, r.Source, r.Points, r.HasEntry, r.EntryIndex,
		r.EntryPrice, r.Zone, r.Signal, joinInts(r.Opportunities), r.Equilibria,
	)
	return err
}

const selectRun = `
	SELECT run_id, time, command, source, points, has_entry, entry_index, entry_price, zone, signal, opportunities, equilibria
	FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var (
		r   RunRecord
		opp string
	)
	err := s.Scan(&r.RunID, &r.Time, &r.Command, &r.Source, &r.Points, &r.HasEntry,
		&r.EntryIndex, &r.EntryPrice, &r.Zone, &r.Signal, &opp, &r.Equilibria)
	if err != nil {
		return RunRecord{}, err
	}
	if r.Opportunities, err = splitInts(opp); err != nil {
		return RunRecord{}, err
	}
	return r, nil
}

// GetRun loads a single run by ID.
func (j *SQLiteJournal) GetRun(ctx context.Context, runID string) (RunRecord, error) {
	row := j.db.QueryRowContext(ctx, selectRun+` WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return r, err
}

// ListRuns returns the most recent runs first. A limit <= 0 returns all.
func (j *SQLiteJournal) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.QueryContext(ctx, selectRun+` ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
