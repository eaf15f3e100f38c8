// Package dto define los objetos de transferencia de la capa de aplicación:
// parches de actualización parcial y resultados de analítica.
//
// Los parches usan campos puntero presente-o-ausente: un campo nil se deja
// intacto en el registro; un puntero a valor cero sí escribe ese cero. Esto
// elimina la ambigüedad de los kwargs con default cero.
package dto

import "github.com/shopspring/decimal"

// InventoryPatch actualización parcial de un artículo de inventario.
type InventoryPatch struct {
	Quantity    *int
	Threshold   *int
	CostPrice   *decimal.Decimal
	SalePrice   *decimal.Decimal
	Description *string
	ImagePath   *string
}

// IsEmpty indica si el parche no trae ningún campo.
func (p InventoryPatch) IsEmpty() bool {
	return p.Quantity == nil && p.Threshold == nil && p.CostPrice == nil &&
		p.SalePrice == nil && p.Description == nil && p.ImagePath == nil
}

// EmployeePatch actualización parcial de un empleado.
type EmployeePatch struct {
	Name             *string
	JoiningDate      *string
	Designation      *string
	Manager          *string
	Team             *string
	Email            *string
	Phone            *string
	EmergencyContact *string
	PhotoPath        *string
	Notes            *string
	IsActive         *bool
}

// PayrollPatch actualización parcial de una nómina. GrossPay y NetPay no son
// parcheables: el servicio siempre los deriva de los componentes.
type PayrollPatch struct {
	PeriodStart   *string
	PeriodEnd     *string
	BaseSalary    *decimal.Decimal
	Allowances    *decimal.Decimal
	Deductions    *decimal.Decimal
	OvertimeHours *decimal.Decimal
	OvertimeRate  *decimal.Decimal
	Status        *string
	PaidDate      *string
}

// TouchesCompensation indica si el parche modifica algún componente que
// obligue a recalcular gross/net.
func (p PayrollPatch) TouchesCompensation() bool {
	return p.BaseSalary != nil || p.Allowances != nil || p.Deductions != nil ||
		p.OvertimeHours != nil || p.OvertimeRate != nil
}

// AppraisalPatch actualización parcial de un ciclo de evaluación. El servicio
// de workflow lo construye; el almacenamiento solo escribe lo presente.
type AppraisalPatch struct {
	Status        *string
	SelfText      *string
	SelfRating    *float64
	ManagerText   *string
	ManagerRating *float64
	FinalRating   *float64
}

// FeedbackRequestPatch actualización parcial de una solicitud de feedback.
type FeedbackRequestPatch struct {
	Message *string
	Status  *string
}

// VisitorPatch actualización parcial de una visita.
type VisitorPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Company *string
	Notes   *string
}

// LeadPatch actualización parcial de un lead CRM.
type LeadPatch struct {
	Name         *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	Company      *string
	Stage        *string
	Value        *decimal.Decimal
	Source       *string
	AssignedTo   *string
	Status       *string
	Notes        *string
	Tags         *[]string
	Score        *float64
}
