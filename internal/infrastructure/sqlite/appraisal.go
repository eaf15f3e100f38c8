package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const appraisalColumns = `id, employee_id, period_start, period_end, status, self_text,
	self_rating, manager_text, manager_rating, final_rating, created_by, created_at, updated_at`

func scanAppraisal(row interface{ Scan(...any) error }) (entity.AppraisalCycle, error) {
	var (
		c                entity.AppraisalCycle
		createdMs, updMs int64
	)
	err := row.Scan(&c.ID, &c.EmployeeID, &c.PeriodStart, &c.PeriodEnd, &c.Status,
		&c.SelfText, &c.SelfRating, &c.ManagerText, &c.ManagerRating,
		&c.FinalRating, &c.CreatedBy, &createdMs, &updMs)
	if err != nil {
		return entity.AppraisalCycle{}, err
	}
	c.CreatedAt = fromMillis(createdMs)
	c.UpdatedAt = fromMillis(updMs)
	return c, nil
}

// CreateAppraisalCycle inserta un ciclo y devuelve su ID.
func (s *Store) CreateAppraisalCycle(cycle entity.AppraisalCycle) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO appraisal_cycles (employee_id, period_start, period_end, status,
		 self_text, self_rating, manager_text, manager_rating, final_rating, created_by,
		 created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cycle.EmployeeID, cycle.PeriodStart, cycle.PeriodEnd, cycle.Status,
		cycle.SelfText, cycle.SelfRating, cycle.ManagerText, cycle.ManagerRating,
		cycle.FinalRating, cycle.CreatedBy, now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert appraisal cycle", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("appraisal cycle id", err)
	}
	return id, nil
}

// ListAppraisalCycles devuelve los ciclos, más reciente primero.
func (s *Store) ListAppraisalCycles() ([]entity.AppraisalCycle, error) {
	rows, err := s.db.Query(`SELECT ` + appraisalColumns + ` FROM appraisal_cycles ORDER BY id DESC`)
	if err != nil {
		return nil, s.persistErr("list appraisal cycles", err)
	}
	defer rows.Close()

	cycles := []entity.AppraisalCycle{}
	for rows.Next() {
		c, err := scanAppraisal(rows)
		if err != nil {
			return nil, s.persistErr("scan appraisal cycle", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// GetAppraisalCycle devuelve un ciclo por ID.
func (s *Store) GetAppraisalCycle(id int64) (entity.AppraisalCycle, error) {
	row := s.db.QueryRow(`SELECT `+appraisalColumns+` FROM appraisal_cycles WHERE id = ?`, id)
	c, err := scanAppraisal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.AppraisalCycle{}, fmt.Errorf("%w: ciclo %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return entity.AppraisalCycle{}, s.persistErr("get appraisal cycle", err)
	}
	return c, nil
}

// UpdateAppraisalCycle escribe únicamente los campos presentes del parche.
func (s *Store) UpdateAppraisalCycle(id int64, patch dto.AppraisalPatch) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.SelfText != nil {
		add("self_text", *patch.SelfText)
	}
	if patch.SelfRating != nil {
		add("self_rating", *patch.SelfRating)
	}
	if patch.ManagerText != nil {
		add("manager_text", *patch.ManagerText)
	}
	if patch.ManagerRating != nil {
		add("manager_rating", *patch.ManagerRating)
	}
	if patch.FinalRating != nil {
		add("final_rating", *patch.FinalRating)
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_at", toMillis(time.Now()))
	args = append(args, id)

	res, err := s.db.Exec("UPDATE appraisal_cycles SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return s.persistErr("update appraisal cycle", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: ciclo %d", domain.ErrNotFound, id)
	}
	return nil
}

// CreateFeedbackRequest inserta una solicitud de feedback 360.
func (s *Store) CreateFeedbackRequest(req entity.FeedbackRequest) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO feedback_requests (appraisal_id, requester, target_employee_id,
		 message, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.AppraisalID, req.Requester, req.TargetEmployeeID, req.Message,
		req.Status, now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert feedback request", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("feedback request id", err)
	}
	return id, nil
}

// ListFeedbackRequests devuelve las solicitudes, más reciente primero.
func (s *Store) ListFeedbackRequests() ([]entity.FeedbackRequest, error) {
	rows, err := s.db.Query(
		`SELECT id, appraisal_id, requester, target_employee_id, message, status,
		 created_at, updated_at FROM feedback_requests ORDER BY id DESC`)
	if err != nil {
		return nil, s.persistErr("list feedback requests", err)
	}
	defer rows.Close()

	reqs := []entity.FeedbackRequest{}
	for rows.Next() {
		var (
			r                entity.FeedbackRequest
			createdMs, updMs int64
		)
		if err := rows.Scan(&r.ID, &r.AppraisalID, &r.Requester, &r.TargetEmployeeID,
			&r.Message, &r.Status, &createdMs, &updMs); err != nil {
			return nil, s.persistErr("scan feedback request", err)
		}
		r.CreatedAt = fromMillis(createdMs)
		r.UpdatedAt = fromMillis(updMs)
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// UpdateFeedbackRequest escribe únicamente los campos presentes del parche.
func (s *Store) UpdateFeedbackRequest(id int64, patch dto.FeedbackRequestPatch) error {
	sets := []string{}
	args := []any{}
	if patch.Message != nil {
		sets = append(sets, "message = ?")
		args = append(args, *patch.Message)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, toMillis(time.Now()), id)

	res, err := s.db.Exec("UPDATE feedback_requests SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return s.persistErr("update feedback request", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, id)
	}
	return nil
}

// AddFeedbackEntry anexa un aporte de feedback 360.
func (s *Store) AddFeedbackEntry(fb entity.FeedbackEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO feedback_entries (appraisal_id, from_employee_id, to_employee_id,
		 rating, feedback_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fb.AppraisalID, fb.FromEmployeeID, fb.ToEmployeeID, fb.Rating,
		fb.FeedbackText, toMillis(time.Now()),
	)
	if err != nil {
		return s.persistErr("insert feedback entry", err)
	}
	return nil
}

// ListFeedbackEntries devuelve los aportes, más reciente primero.
func (s *Store) ListFeedbackEntries() ([]entity.FeedbackEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, appraisal_id, from_employee_id, to_employee_id, rating,
		 feedback_text, created_at FROM feedback_entries ORDER BY id DESC`)
	if err != nil {
		return nil, s.persistErr("list feedback entries", err)
	}
	defer rows.Close()

	entries := []entity.FeedbackEntry{}
	for rows.Next() {
		var (
			e  entity.FeedbackEntry
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.AppraisalID, &e.FromEmployeeID, &e.ToEmployeeID,
			&e.Rating, &e.FeedbackText, &ms); err != nil {
			return nil, s.persistErr("scan feedback entry", err)
		}
		e.CreatedAt = fromMillis(ms)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
