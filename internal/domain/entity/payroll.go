package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados habituales de una nómina. El campo Status admite valores definidos
// por el caller; estos son los del flujo estándar.
const (
	PayrollStatusDraft     = "Draft"
	PayrollStatusFinalized = "Finalized"
	PayrollStatusPaid      = "Paid"
)

// PayrollRecord representa la nómina de un empleado para un período.
// GrossPay y NetPay son derivados: gross = base + allowances + horas×tarifa;
// net = gross − deductions. El servicio los recalcula siempre que cambie
// cualquier componente; nunca se persisten valores suministrados a mano.
type PayrollRecord struct {
	ID            int64
	EmployeeID    int64
	PeriodStart   string // formato 2006-01-02
	PeriodEnd     string
	BaseSalary    decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal
	GrossPay      decimal.Decimal
	NetPay        decimal.Decimal
	Status        string
	PaidDate      string // vacío si no se ha pagado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
