package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// PayrollUseCase orquesta la nómina. Los montos derivados nunca se aceptan
// del caller: gross y net se recalculan en cada alta y en cada parche que
// toque un componente, partiendo siempre del registro vigente.
type PayrollUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewPayrollUseCase construye el caso de uso de nómina.
func NewPayrollUseCase(store storage.Adapter, log *logger.Logger) *PayrollUseCase {
	return &PayrollUseCase{store: store, log: log}
}

// CalculateGross deriva el bruto: base + allowances + horas×tarifa.
func CalculateGross(base, allowances, overtimeHours, overtimeRate decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Add(overtimeHours.Mul(overtimeRate))
}

// CalculateNet deriva el neto: gross − deductions.
func CalculateNet(gross, deductions decimal.Decimal) decimal.Decimal {
	return gross.Sub(deductions)
}

// AddPayroll deriva gross/net de los componentes y persiste el registro.
func (uc *PayrollUseCase) AddPayroll(rec entity.PayrollRecord) (int64, error) {
	if rec.EmployeeID == 0 {
		return 0, fmt.Errorf("%w: el empleado es obligatorio", domain.ErrValidation)
	}
	if rec.BaseSalary.IsNegative() || rec.Allowances.IsNegative() || rec.Deductions.IsNegative() ||
		rec.OvertimeHours.IsNegative() || rec.OvertimeRate.IsNegative() {
		return 0, fmt.Errorf("%w: los componentes de la nómina no pueden ser negativos", domain.ErrValidation)
	}
	if rec.Status == "" {
		rec.Status = entity.PayrollStatusDraft
	}
	rec.GrossPay = CalculateGross(rec.BaseSalary, rec.Allowances, rec.OvertimeHours, rec.OvertimeRate)
	rec.NetPay = CalculateNet(rec.GrossPay, rec.Deductions)

	id, err := uc.store.AddPayroll(rec)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("payroll_id", id).Int64("employee_id", rec.EmployeeID).Msg("nómina agregada")
	return id, nil
}

// ListPayrolls devuelve todas las nóminas.
func (uc *PayrollUseCase) ListPayrolls() ([]entity.PayrollRecord, error) {
	return uc.store.ListPayrolls()
}

// PayrollsByEmployee devuelve las nóminas de un empleado.
func (uc *PayrollUseCase) PayrollsByEmployee(employeeID int64) ([]entity.PayrollRecord, error) {
	return uc.store.ListPayrollsByEmployee(employeeID)
}

// UpdatePayroll aplica un parche sobre la nómina. Lee primero el registro
// vigente y fusiona: los componentes no suministrados conservan su valor
// actual en el recálculo, jamás se degradan a cero.
func (uc *PayrollUseCase) UpdatePayroll(id int64, patch dto.PayrollPatch) error {
	rec, err := uc.store.GetPayroll(id)
	if err != nil {
		return err
	}

	if patch.PeriodStart != nil {
		rec.PeriodStart = *patch.PeriodStart
	}
	if patch.PeriodEnd != nil {
		rec.PeriodEnd = *patch.PeriodEnd
	}
	if patch.BaseSalary != nil {
		rec.BaseSalary = *patch.BaseSalary
	}
	if patch.Allowances != nil {
		rec.Allowances = *patch.Allowances
	}
	if patch.Deductions != nil {
		rec.Deductions = *patch.Deductions
	}
	if patch.OvertimeHours != nil {
		rec.OvertimeHours = *patch.OvertimeHours
	}
	if patch.OvertimeRate != nil {
		rec.OvertimeRate = *patch.OvertimeRate
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.PaidDate != nil {
		rec.PaidDate = *patch.PaidDate
	}

	if rec.BaseSalary.IsNegative() || rec.Allowances.IsNegative() || rec.Deductions.IsNegative() ||
		rec.OvertimeHours.IsNegative() || rec.OvertimeRate.IsNegative() {
		return fmt.Errorf("%w: los componentes de la nómina no pueden ser negativos", domain.ErrValidation)
	}

	// Recalcular siempre: el registro fusionado ya trae los componentes
	// vigentes, así que el recálculo es correcto aunque el parche solo
	// traiga un subconjunto.
	rec.GrossPay = CalculateGross(rec.BaseSalary, rec.Allowances, rec.OvertimeHours, rec.OvertimeRate)
	rec.NetPay = CalculateNet(rec.GrossPay, rec.Deductions)

	return uc.store.UpdatePayroll(rec)
}

// DeletePayroll elimina una nómina.
func (uc *PayrollUseCase) DeletePayroll(id int64) error {
	return uc.store.DeletePayroll(id)
}
