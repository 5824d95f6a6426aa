package store

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordRun appends a finished stopwatch or countdown run to the log.
func (s *Store) RecordRun(kind RunKind, startedAt time.Time, d time.Duration, completed bool) (*Run, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (kind, started_at, duration_ms, completed) VALUES (?, ?, ?, ?)`,
		string(kind), startedAt.UTC().Format(time.RFC3339), d.Milliseconds(), completed,
	)
	if err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetRun(id)
}

func (s *Store) GetRun(id int64) (*Run, error) {
	r := &Run{}
	var kind, startedAt, createdAt string

	err := s.db.QueryRow(
		`SELECT id, kind, started_at, duration_ms, completed, created_at FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &kind, &startedAt, &r.DurationMS, &r.Completed, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get run %d: %w", id, err)
	}
	r.Kind = RunKind(kind)
	r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return r, nil
}

func (s *Store) ListRuns(f RunFilter) ([]Run, error) {
	query := `SELECT id, kind, started_at, duration_ms, completed, created_at FROM runs WHERE 1=1`
	var args []any

	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(f.Kind))
	}
	if f.From != nil {
		query += ` AND started_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND started_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY started_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var kind, startedAt, createdAt string
		if err := rows.Scan(&r.ID, &kind, &startedAt, &r.DurationMS, &r.Completed, &createdAt); err != nil {
			return nil, err
		}
		r.Kind = RunKind(kind)
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *Store) GetDailySummary(from, to time.Time) ([]DailySummary, error) {
	rows, err := s.db.Query(`
		SELECT date(started_at) AS day, kind, COALESCE(SUM(duration_ms), 0), COUNT(*)
		FROM runs
		WHERE started_at >= ? AND started_at < ?
		GROUP BY day, kind
		ORDER BY day, kind`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var ds DailySummary
		var kind string
		if err := rows.Scan(&ds.Date, &kind, &ds.TotalMS, &ds.Count); err != nil {
			return nil, err
		}
		ds.Kind = RunKind(kind)
		summaries = append(summaries, ds)
	}
	return summaries, rows.Err()
}

// CountCompleted returns how many countdowns rang out in [from, to).
func (s *Store) CountCompleted(from, to time.Time) (int, error) {
	var n sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM runs
		 WHERE kind = 'countdown' AND completed = 1 AND started_at >= ? AND started_at < ?`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count completed: %w", err)
	}
	return int(n.Int64), nil
}
