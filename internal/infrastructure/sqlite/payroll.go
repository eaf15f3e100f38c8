package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const payrollColumns = `id, employee_id, period_start, period_end, base_salary, allowances,
	deductions, overtime_hours, overtime_rate, gross_pay, net_pay, status, paid_date,
	created_at, updated_at`

func scanPayroll(row interface{ Scan(...any) error }) (entity.PayrollRecord, error) {
	var (
		rec              entity.PayrollRecord
		createdMs, updMs int64
	)
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.BaseSalary, &rec.Allowances, &rec.Deductions, &rec.OvertimeHours,
		&rec.OvertimeRate, &rec.GrossPay, &rec.NetPay, &rec.Status, &rec.PaidDate,
		&createdMs, &updMs)
	if err != nil {
		return entity.PayrollRecord{}, err
	}
	rec.CreatedAt = fromMillis(createdMs)
	rec.UpdatedAt = fromMillis(updMs)
	return rec, nil
}

// AddPayroll inserta la nómina con gross/net ya derivados por el servicio.
func (s *Store) AddPayroll(rec entity.PayrollRecord) (int64, error) {
	now := toMillis(time.Now())
	res, err := s.db.Exec(
		`INSERT INTO payrolls (employee_id, period_start, period_end, base_salary, allowances,
		 deductions, overtime_hours, overtime_rate, gross_pay, net_pay, status, paid_date,
		 created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.BaseSalary,
		rec.Allowances, rec.Deductions, rec.OvertimeHours, rec.OvertimeRate,
		rec.GrossPay, rec.NetPay, rec.Status, rec.PaidDate, now, now,
	)
	if err != nil {
		return 0, s.persistErr("insert payroll", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.persistErr("payroll id", err)
	}
	return id, nil
}

func (s *Store) scanPayrolls(query string, args ...any) ([]entity.PayrollRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.persistErr("query payrolls", err)
	}
	defer rows.Close()

	recs := []entity.PayrollRecord{}
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, s.persistErr("scan payroll", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ListPayrolls devuelve todas las nóminas ordenadas por ID.
func (s *Store) ListPayrolls() ([]entity.PayrollRecord, error) {
	return s.scanPayrolls(`SELECT ` + payrollColumns + ` FROM payrolls ORDER BY id`)
}

// ListPayrollsByEmployee nóminas de un empleado.
func (s *Store) ListPayrollsByEmployee(employeeID int64) ([]entity.PayrollRecord, error) {
	return s.scanPayrolls(
		`SELECT `+payrollColumns+` FROM payrolls WHERE employee_id = ? ORDER BY id`, employeeID)
}

// GetPayroll devuelve una nómina por ID.
func (s *Store) GetPayroll(id int64) (entity.PayrollRecord, error) {
	row := s.db.QueryRow(`SELECT `+payrollColumns+` FROM payrolls WHERE id = ?`, id)
	rec, err := scanPayroll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.PayrollRecord{}, fmt.Errorf("%w: nómina %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return entity.PayrollRecord{}, s.persistErr("get payroll", err)
	}
	return rec, nil
}

// UpdatePayroll sobrescribe el registro completo. El servicio ya fusionó el
// parche sobre el registro vigente y derivó gross/net.
func (s *Store) UpdatePayroll(rec entity.PayrollRecord) error {
	res, err := s.db.Exec(
		`UPDATE payrolls SET employee_id = ?, period_start = ?, period_end = ?,
		 base_salary = ?, allowances = ?, deductions = ?, overtime_hours = ?,
		 overtime_rate = ?, gross_pay = ?, net_pay = ?, status = ?, paid_date = ?,
		 updated_at = ? WHERE id = ?`,
		rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.BaseSalary,
		rec.Allowances, rec.Deductions, rec.OvertimeHours, rec.OvertimeRate,
		rec.GrossPay, rec.NetPay, rec.Status, rec.PaidDate,
		toMillis(time.Now()), rec.ID,
	)
	if err != nil {
		return s.persistErr("update payroll", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: nómina %d", domain.ErrNotFound, rec.ID)
	}
	return nil
}

// DeletePayroll elimina una nómina.
func (s *Store) DeletePayroll(id int64) error {
	res, err := s.db.Exec(`DELETE FROM payrolls WHERE id = ?`, id)
	if err != nil {
		return s.persistErr("delete payroll", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: nómina %d", domain.ErrNotFound, id)
	}
	return nil
}
