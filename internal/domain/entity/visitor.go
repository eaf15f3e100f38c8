package entity

import "time"

// Visitor representa una visita registrada en recepción.
type Visitor struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	Email     string
	Company   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
