package sqlite

import (
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const visitorColumns = `id, name, address, phone, email, company, notes, created_at, updated_at`

func (s *Store) scanVisitors(query string, args ...any) ([]entity.Visitor, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.persistErr("query visitors", err)
	}
	defer rows.Close()

	visitors := []entity.Visitor{}
	for rows.Next() {
		var (
			v                entity.Visitor
			createdMs, updMs int64
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Phone, &v.Email,
			&v.Company, &v.Notes, &createdMs, &updMs); err != nil {
			return nil, s.persistErr("scan visitor", err)
		}
		v.CreatedAt = fromMillis(createdMs)
		v.UpdatedAt = fromMillis(updMs)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// AddVisitor inserta una visita y devuelve su ID.
func (s *Store) AddVisitor(v entity.Visitor) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO visitors (name, address, phone, email, company, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.Address, v.Phone, v.Email, v.Company, v.Notes, now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert visitor", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("visitor id", err)
	}
	return id, nil
}

// ListVisitors devuelve las visitas ordenadas por nombre.
func (s *Store) ListVisitors() ([]entity.Visitor, error) {
	return s.scanVisitors(`SELECT ` + visitorColumns + ` FROM visitors ORDER BY name`)
}

// UpdateVisitor escribe únicamente los campos presentes del parche.
func (s *Store) UpdateVisitor(id int64, patch dto.VisitorPatch) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_at", toMillis(time.Now()))
	args = append(args, id)

	res, err := s.db.Exec("UPDATE visitors SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return s.persistErr("update visitor", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: visita %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteVisitor elimina una visita.
func (s *Store) DeleteVisitor(id int64) error {
	res, err := s.db.Exec(`DELETE FROM visitors WHERE id = ?`, id)
	if err != nil {
		return s.persistErr("delete visitor", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: visita %d", domain.ErrNotFound, id)
	}
	return nil
}

// SearchVisitors busca por nombre, email o teléfono.
func (s *Store) SearchVisitors(query string) ([]entity.Visitor, error) {
	q := "%" + query + "%"
	return s.scanVisitors(
		`SELECT `+visitorColumns+` FROM visitors
		 WHERE name LIKE ? OR email LIKE ? OR phone LIKE ? ORDER BY name`, q, q, q)
}
