package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const leadColumns = `id, name, contact_name, contact_email, contact_phone, company, stage,
	value, source, assigned_to, status, notes, tags, score, created_at, updated_at`

// Las etiquetas se guardan como arreglo JSON en una columna TEXT.
func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeTags(raw string) []string {
	tags := []string{}
	if raw == "" {
		return tags
	}
	_ = json.Unmarshal([]byte(raw), &tags)
	return tags
}

func scanLead(row interface{ Scan(...any) error }) (entity.Lead, error) {
	var (
		l                entity.Lead
		rawTags          string
		createdMs, updMs int64
	)
	err := row.Scan(&l.ID, &l.Name, &l.ContactName, &l.ContactEmail, &l.ContactPhone,
		&l.Company, &l.Stage, &l.Value, &l.Source, &l.AssignedTo, &l.Status,
		&l.Notes, &rawTags, &l.Score, &createdMs, &updMs)
	if err != nil {
		return entity.Lead{}, err
	}
	l.Tags = decodeTags(rawTags)
	l.CreatedAt = fromMillis(createdMs)
	l.UpdatedAt = fromMillis(updMs)
	return l, nil
}

// CreateLead inserta un lead y devuelve su ID.
func (s *Store) CreateLead(lead entity.Lead) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO leads (name, contact_name, contact_email, contact_phone, company,
		 stage, value, source, assigned_to, status, notes, tags, score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.Name, lead.ContactName, lead.ContactEmail, lead.ContactPhone,
		lead.Company, lead.Stage, lead.Value, lead.Source, lead.AssignedTo,
		lead.Status, lead.Notes, encodeTags(lead.Tags), lead.Score, now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert lead", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("lead id", err)
	}
	return id, nil
}

// GetLead devuelve un lead por ID.
func (s *Store) GetLead(id int64) (entity.Lead, error) {
	row := s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Lead{}, fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return entity.Lead{}, s.persistErr("get lead", err)
	}
	return l, nil
}

// UpdateLead escribe únicamente los campos presentes del parche.
func (s *Store) UpdateLead(id int64, patch dto.LeadPatch) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.ContactName != nil {
		add("contact_name", *patch.ContactName)
	}
	if patch.ContactEmail != nil {
		add("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		add("contact_phone", *patch.ContactPhone)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.Stage != nil {
		add("stage", *patch.Stage)
	}
	if patch.Value != nil {
		add("value", *patch.Value)
	}
	if patch.Source != nil {
		add("source", *patch.Source)
	}
	if patch.AssignedTo != nil {
		add("assigned_to", *patch.AssignedTo)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Tags != nil {
		add("tags", encodeTags(*patch.Tags))
	}
	if patch.Score != nil {
		add("score", *patch.Score)
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_at", toMillis(time.Now()))
	args = append(args, id)

	res, err := s.db.Exec("UPDATE leads SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return s.persistErr("update lead", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteLead elimina un lead.
func (s *Store) DeleteLead(id int64) error {
	res, err := s.db.Exec(`DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return s.persistErr("delete lead", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	return nil
}

// ListLeads filtra por etapa y estado; cadenas vacías no filtran.
func (s *Store) ListLeads(stage, status string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	conds := []string{}
	args := []any{}
	if stage != "" {
		conds = append(conds, "stage = ?")
		args = append(args, stage)
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.persistErr("list leads", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, s.persistErr("scan lead", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
