package sqlite

import (
	"time"

	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

// LogActivity anexa una entrada de auditoría.
func (s *Store) LogActivity(username, action, details string) error {
	_, err := s.db.Exec(
		`INSERT INTO activity_log (timestamp, username, action, details) VALUES (?, ?, ?, ?)`,
		toMillis(time.Now()), username, action, details,
	)
	if err != nil {
		return s.persistErr("insert activity", err)
	}
	return nil
}

// ListActivity devuelve el registro del más reciente al más antiguo; username
// vacío no filtra.
func (s *Store) ListActivity(username string) ([]entity.ActivityLogEntry, error) {
	query := `SELECT id, timestamp, username, action, details FROM activity_log`
	args := []any{}
	if username != "" {
		query += ` WHERE username = ?`
		args = append(args, username)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.persistErr("list activity", err)
	}
	defer rows.Close()

	entries := []entity.ActivityLogEntry{}
	for rows.Next() {
		var (
			e  entity.ActivityLogEntry
			ms int64
		)
		if err := rows.Scan(&e.ID, &ms, &e.Username, &e.Action, &e.Details); err != nil {
			return nil, s.persistErr("scan activity", err)
		}
		e.Timestamp = fromMillis(ms)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
