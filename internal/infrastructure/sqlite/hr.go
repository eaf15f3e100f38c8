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

const employeeColumns = `id, emp_number, name, joining_date, designation, manager, team,
	email, phone, emergency_contact, photo_path, notes, is_active, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (entity.Employee, error) {
	var (
		emp              entity.Employee
		active           int
		createdMs, updMs int64
	)
	err := row.Scan(&emp.ID, &emp.EmpNumber, &emp.Name, &emp.JoiningDate,
		&emp.Designation, &emp.Manager, &emp.Team, &emp.Email, &emp.Phone,
		&emp.EmergencyContact, &emp.PhotoPath, &emp.Notes, &active,
		&createdMs, &updMs)
	if err != nil {
		return entity.Employee{}, err
	}
	emp.IsActive = active != 0
	emp.CreatedAt = fromMillis(createdMs)
	emp.UpdatedAt = fromMillis(updMs)
	return emp, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddEmployee inserta un empleado y devuelve su ID. ErrDuplicate si el
// número de empleado ya existe.
func (s *Store) AddEmployee(emp entity.Employee) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO employees (emp_number, name, joining_date, designation, manager, team,
		 email, phone, emergency_contact, photo_path, notes, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.EmpNumber, emp.Name, emp.JoiningDate, emp.Designation, emp.Manager,
		emp.Team, emp.Email, emp.Phone, emp.EmergencyContact, emp.PhotoPath,
		emp.Notes, boolToInt(emp.IsActive), now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert employee", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("employee id", err)
	}
	return id, nil
}

// ListEmployees devuelve todos los empleados ordenados por ID.
func (s *Store) ListEmployees() ([]entity.Employee, error) {
	rows, err := s.db.Query(`SELECT ` + employeeColumns + ` FROM employees ORDER BY id`)
	if err != nil {
		return nil, s.persistErr("list employees", err)
	}
	defer rows.Close()

	emps := []entity.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, s.persistErr("scan employee", err)
		}
		emps = append(emps, emp)
	}
	return emps, rows.Err()
}

// GetEmployee devuelve un empleado por ID.
func (s *Store) GetEmployee(id int64) (entity.Employee, error) {
	row := s.db.QueryRow(`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return entity.Employee{}, s.persistErr("get employee", err)
	}
	return emp, nil
}

// UpdateEmployee escribe únicamente los campos presentes del parche.
func (s *Store) UpdateEmployee(id int64, patch dto.EmployeePatch) error {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.JoiningDate != nil {
		add("joining_date", *patch.JoiningDate)
	}
	if patch.Designation != nil {
		add("designation", *patch.Designation)
	}
	if patch.Manager != nil {
		add("manager", *patch.Manager)
	}
	if patch.Team != nil {
		add("team", *patch.Team)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.EmergencyContact != nil {
		add("emergency_contact", *patch.EmergencyContact)
	}
	if patch.PhotoPath != nil {
		add("photo_path", *patch.PhotoPath)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.IsActive != nil {
		add("is_active", boolToInt(*patch.IsActive))
	}
	if len(sets) == 0 {
		return nil
	}
	add("updated_at", toMillis(time.Now()))
	args = append(args, id)

	res, err := s.db.Exec("UPDATE employees SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return s.persistErr("update employee", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteEmployee elimina físicamente un empleado.
func (s *Store) DeleteEmployee(id int64) error {
	res, err := s.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return s.persistErr("delete employee", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return nil
}

// AddReview anexa una reseña de desempeño.
func (s *Store) AddReview(review entity.EmployeeReview) error {
	_, err := s.db.Exec(
		`INSERT INTO employee_reviews (employee_id, review_date, rating, comments, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		review.EmployeeID, review.ReviewDate, review.Rating, review.Comments,
		toMillis(time.Now()),
	)
	if err != nil {
		return s.persistErr("insert review", err)
	}
	return nil
}

// ListReviewsByEmployee reseñas de un empleado, más reciente primero.
func (s *Store) ListReviewsByEmployee(employeeID int64) ([]entity.EmployeeReview, error) {
	rows, err := s.db.Query(
		`SELECT id, employee_id, review_date, rating, comments, created_at
		 FROM employee_reviews WHERE employee_id = ? ORDER BY id DESC`, employeeID)
	if err != nil {
		return nil, s.persistErr("list reviews", err)
	}
	defer rows.Close()

	reviews := []entity.EmployeeReview{}
	for rows.Next() {
		var (
			r  entity.EmployeeReview
			ms int64
		)
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.ReviewDate, &r.Rating, &r.Comments, &ms); err != nil {
			return nil, s.persistErr("scan review", err)
		}
		r.CreatedAt = fromMillis(ms)
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// AddGoal anexa un objetivo.
func (s *Store) AddGoal(goal entity.EmployeeGoal) error {
	_, err := s.db.Exec(
		`INSERT INTO goals (employee_id, goal, status, due_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		goal.EmployeeID, goal.Goal, goal.Status, goal.DueDate, goal.Notes,
		toMillis(time.Now()),
	)
	if err != nil {
		return s.persistErr("insert goal", err)
	}
	return nil
}

// ListGoalsByEmployee objetivos de un empleado, en orden de creación.
func (s *Store) ListGoalsByEmployee(employeeID int64) ([]entity.EmployeeGoal, error) {
	rows, err := s.db.Query(
		`SELECT id, employee_id, goal, status, due_date, notes, created_at
		 FROM goals WHERE employee_id = ? ORDER BY id`, employeeID)
	if err != nil {
		return nil, s.persistErr("list goals", err)
	}
	defer rows.Close()

	goals := []entity.EmployeeGoal{}
	for rows.Next() {
		var (
			g  entity.EmployeeGoal
			ms int64
		)
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.Goal, &g.Status, &g.DueDate, &g.Notes, &ms); err != nil {
			return nil, s.persistErr("scan goal", err)
		}
		g.CreatedAt = fromMillis(ms)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
