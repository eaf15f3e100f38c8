package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

// EnsureAdminUser crea el usuario admin si no existe. Idempotente: un archivo
// ya inicializado no se toca.
func (s *Store) EnsureAdminUser(username, passwordHash string) error {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&exists)
	if err != nil {
		return s.persistErr("ensure admin", err)
	}
	if exists > 0 {
		return nil
	}
	_, err = s.db.Exec(
		`INSERT INTO users (username, password_hash, role, created_at) VALUES (?, ?, ?, ?)`,
		username, passwordHash, entity.RoleAdmin, toMillis(time.Now()),
	)
	if err != nil {
		return s.persistErr("insert admin", err)
	}
	s.log.Info().Str("username", username).Msg("usuario admin sembrado")
	return nil
}

// AuthenticateUser compara username + digest. Nunca ve texto plano.
func (s *Store) AuthenticateUser(username, passwordHash string) (bool, error) {
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM users WHERE username = ? AND password_hash = ?`,
		username, passwordHash,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, s.persistErr("authenticate user", err)
	}
	return true, nil
}

// GetUserRole devuelve el rol; "user" si el usuario no existe.
func (s *Store) GetUserRole(username string) (string, error) {
	var role string
	err := s.db.QueryRow(`SELECT role FROM users WHERE username = ?`, username).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.RoleUser, nil
	}
	if err != nil {
		return entity.RoleUser, s.persistErr("get user role", err)
	}
	return role, nil
}

// UpdateLastLogin registra el instante del último inicio de sesión.
func (s *Store) UpdateLastLogin(username string) error {
	res, err := s.db.Exec(
		`UPDATE users SET last_login = ? WHERE username = ?`,
		toMillis(time.Now()), username,
	)
	if err != nil {
		return s.persistErr("update last login", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: usuario %q", domain.ErrNotFound, username)
	}
	return nil
}
