package entity

import "time"

// Roles disponibles para los usuarios del sistema.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta de acceso al back-office.
// PasswordHash es un digest SHA-256 determinista; la verificación se delega
// al almacenamiento comparando digests, nunca texto plano.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	LastLogin    *time.Time // nil si nunca inició sesión
}
