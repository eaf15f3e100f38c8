package entity

import "time"

// ActivityLogEntry entrada del registro de auditoría. Append-only; los
// servicios la escriben como efecto lateral de operaciones mutantes.
type ActivityLogEntry struct {
	ID        int64
	Timestamp time.Time
	Username  string
	Action    string
	Details   string
}
