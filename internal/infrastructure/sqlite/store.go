// Package sqlite implementa el contrato de almacenamiento sobre un archivo
// SQLite local (driver puro Go, sin cgo). Es el backend embebido del
// back-office: un proceso, un escritor.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

var _ storage.Adapter = (*Store)(nil)

// Store adaptador de persistencia embebido. Mantiene un único *sql.DB;
// database/sql adquiere y libera una conexión por llamada, así que no se
// filtran handles entre las muchas operaciones cortas del back-office.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// Options parámetros de apertura del almacenamiento.
type Options struct {
	// AdminUsername/AdminPassword credencial sembrada si la tabla de usuarios
	// está vacía. AdminPassword llega ya como digest SHA-256 hex.
	AdminUsername     string
	AdminPasswordHash string
}

// Open abre (o crea) el archivo, aplica el esquema con migración aditiva y
// siembra el usuario admin si no hay usuarios.
func Open(path string, opts Options, log *logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: ruta del archivo de datos vacía", domain.ErrValidation)
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if opts.AdminUsername != "" {
		if err := s.EnsureAdminUser(opts.AdminUsername, opts.AdminPasswordHash); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed admin: %w", err)
		}
	}
	return s, nil
}

// Close cierra el handle del archivo.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// toMillis/fromMillis convención de timestamps: milisegundos Unix en UTC.
func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// isUniqueViolation detecta violaciones de clave única o primaria del driver.
func isUniqueViolation(err error) bool {
	var serr *msqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// joinSets une las cláusulas SET de un parche parcial.
func joinSets(sets []string) string {
	return strings.Join(sets, ", ")
}

// persistErr envuelve fallos del motor como ErrPersistence, dejando rastro en
// el log. Las violaciones de unicidad se traducen a ErrDuplicate.
func (s *Store) persistErr(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, op)
	}
	s.log.Error().Err(err).Str("op", op).Msg("fallo de almacenamiento")
	return fmt.Errorf("%w: %s: %v", domain.ErrPersistence, op, err)
}
