package store

import (
	"fmt"

	"github.com/ibstat/cli/internal/domain"
)

// Find returns the rows of report token whose column equals value, ignoring
// case, in row order. An empty loadID searches the latest load.
func (s *Store) Find(loadID, token, column, value string) ([]domain.StoredRow, error) {
	if loadID == "" {
		latest, err := s.latestLoad()
		if err != nil {
			return nil, fmt.Errorf("latest load: %w", err)
		}
		if latest == "" {
			return nil, nil
		}
		loadID = latest
	}

	rows, err := s.db.Query(`
		SELECT c.row_index, c.column_name, c.value
		FROM report_cells c
		WHERE c.load_id = ? AND c.token = ? AND c.row_index IN (
			SELECT m.row_index
			FROM report_cells m
			WHERE m.load_id = ? AND m.token = ? AND m.column_name = ?
			  AND m.value = ? COLLATE NOCASE
		)
		ORDER BY c.row_index ASC
	`, loadID, token, loadID, token, column, value)
	if err != nil {
		return nil, fmt.Errorf("find rows: %w", err)
	}
	defer rows.Close()

	var out []domain.StoredRow
	for rows.Next() {
		var (
			index    int
			col, val string
		)
		if err := rows.Scan(&index, &col, &val); err != nil {
			return nil, err
		}
		if n := len(out); n == 0 || out[n-1].Index != index {
			out = append(out, domain.StoredRow{Token: token, Index: index, Values: map[string]string{}})
		}
		out[len(out)-1].Values[col] = val
	}
	return out, rows.Err()
}
