package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ibstat/cli/internal/domain"
)

// RecordLoad stores every row of reports under a new load id.
func (s *Store) RecordLoad(source string, reports []domain.ReportRows) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"INSERT INTO loads (id, source, loaded_at) VALUES (?, ?, ?)",
		id, source, s.now().UTC().Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("insert load: %w", err)
	}

	rowStmt, err := tx.Prepare("INSERT INTO report_rows (load_id, token, row_index) VALUES (?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("prepare rows: %w", err)
	}
	defer rowStmt.Close()

	cellStmt, err := tx.Prepare(
		"INSERT INTO report_cells (load_id, token, row_index, column_name, value) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("prepare cells: %w", err)
	}
	defer cellStmt.Close()

	for _, rep := range reports {
		for i, row := range rep.Rows() {
			if _, err := rowStmt.Exec(id, rep.Token(), i); err != nil {
				return "", fmt.Errorf("insert %s row %d: %w", rep.Token(), i, err)
			}
			for col, val := range row {
				if _, err := cellStmt.Exec(id, rep.Token(), i, col, val); err != nil {
					return "", fmt.Errorf("insert %s row %d: %w", rep.Token(), i, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Loads returns the load history, oldest first.
func (s *Store) Loads() ([]domain.LoadRecord, error) {
	rows, err := s.db.Query(`
		SELECT
			l.id,
			l.source,
			l.loaded_at,
			COUNT(DISTINCT r.token),
			COUNT(r.token)
		FROM loads l
		LEFT JOIN report_rows r ON r.load_id = l.id
		GROUP BY l.seq
		ORDER BY l.seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LoadRecord
	for rows.Next() {
		var (
			rec domain.LoadRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.Source, &ts, &rec.ReportCount, &rec.RowCount); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, err
		}
		rec.LoadedAt = t
		out = append(out, rec)
	}
	return out, rows.Err()
}

// latestLoad returns the id of the most recent load, or "" when none.
func (s *Store) latestLoad() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT COALESCE((SELECT id FROM loads ORDER BY seq DESC LIMIT 1), '')").Scan(&id)
	return id, err
}
