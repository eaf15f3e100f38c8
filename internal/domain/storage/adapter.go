// Package storage define el puerto de persistencia que consumen todos los
// casos de uso (DIP). Es un contrato puro: ninguna firma asume un backend
// concreto, solo semántica de filas equivalente.
//
// Convenciones del contrato:
//   - Las mutaciones devuelven error tipado del dominio (ErrDuplicate,
//     ErrNotFound, ErrPersistence) en lugar de booleanos.
//   - Las lecturas de colección devuelven slice vacío cuando no hay filas.
//   - Las lecturas de fila única devuelven domain.ErrNotFound si no existe.
package storage

import (
	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

// UserStore operaciones de usuarios y autenticación.
type UserStore interface {
	// EnsureAdminUser crea el usuario administrador si no existe. Idempotente.
	EnsureAdminUser(username, passwordHash string) error
	// AuthenticateUser compara username + digest contra la tabla de usuarios.
	AuthenticateUser(username, passwordHash string) (bool, error)
	GetUserRole(username string) (string, error)
	UpdateLastLogin(username string) error
}

// InventoryStore operaciones de inventario.
type InventoryStore interface {
	ListInventory() ([]entity.InventoryItem, error)
	GetInventoryItem(name string) (entity.InventoryItem, error)
	AddInventoryItem(item entity.InventoryItem) error
	// UpdateInventoryItem escribe únicamente los campos presentes del parche.
	UpdateInventoryItem(name string, patch dto.InventoryPatch) error
	DeleteInventoryItem(name string) error
	// SearchInventory busca por nombre o descripción (LIKE, case-insensitive).
	SearchInventory(query string) ([]entity.InventoryItem, error)
	// DecrementInventory descuenta stock de manera condicionada: ErrConflict
	// si la cantidad disponible no alcanza, ErrNotFound si el artículo no
	// existe. Es la vía de decremento para callers que registran la venta por
	// separado; el checkout usa CheckoutSale.
	DecrementInventory(name string, qty int) error
}

// SalesStore operaciones de ventas. Los registros son append-only.
type SalesStore interface {
	RecordSale(sale entity.SaleRecord) error
	// CheckoutSale decrementa el stock del artículo y registra la venta en una
	// misma transacción. Devuelve ErrConflict si el stock es insuficiente y
	// ErrNotFound si el artículo no existe; en ambos casos no muta nada.
	CheckoutSale(sale entity.SaleRecord) error
	ListSales() ([]entity.SaleRecord, error)
	// SalesByDay ventas de un día concreto (formato 2006-01-02).
	SalesByDay(day string) ([]entity.SaleRecord, error)
	// SalesBetween ventas en el rango inclusivo [start, end].
	SalesBetween(start, end string) ([]entity.SaleRecord, error)
	SalesSummaryByItem(start, end string) ([]entity.SalesSummaryRow, error)
	SalesTrendByDay(start, end string) ([]entity.SalesTrendRow, error)
}

// EmployeeStore operaciones de RR.HH.
type EmployeeStore interface {
	AddEmployee(emp entity.Employee) (int64, error)
	ListEmployees() ([]entity.Employee, error)
	GetEmployee(id int64) (entity.Employee, error)
	UpdateEmployee(id int64, patch dto.EmployeePatch) error
	DeleteEmployee(id int64) error
	AddReview(review entity.EmployeeReview) error
	ListReviewsByEmployee(employeeID int64) ([]entity.EmployeeReview, error)
	AddGoal(goal entity.EmployeeGoal) error
	ListGoalsByEmployee(employeeID int64) ([]entity.EmployeeGoal, error)
}

// PayrollStore operaciones de nómina.
type PayrollStore interface {
	AddPayroll(rec entity.PayrollRecord) (int64, error)
	ListPayrolls() ([]entity.PayrollRecord, error)
	ListPayrollsByEmployee(employeeID int64) ([]entity.PayrollRecord, error)
	GetPayroll(id int64) (entity.PayrollRecord, error)
	// UpdatePayroll sobrescribe el registro completo. El servicio lee el
	// registro vigente, fusiona el parche y deriva gross/net antes de llamar;
	// así ningún componente no suministrado se degrada a cero.
	UpdatePayroll(rec entity.PayrollRecord) error
	DeletePayroll(id int64) error
}

// AppraisalStore operaciones del workflow de evaluación y feedback 360.
type AppraisalStore interface {
	CreateAppraisalCycle(cycle entity.AppraisalCycle) (int64, error)
	ListAppraisalCycles() ([]entity.AppraisalCycle, error)
	GetAppraisalCycle(id int64) (entity.AppraisalCycle, error)
	UpdateAppraisalCycle(id int64, patch dto.AppraisalPatch) error
	CreateFeedbackRequest(req entity.FeedbackRequest) (int64, error)
	ListFeedbackRequests() ([]entity.FeedbackRequest, error)
	UpdateFeedbackRequest(id int64, patch dto.FeedbackRequestPatch) error
	AddFeedbackEntry(fb entity.FeedbackEntry) error
	ListFeedbackEntries() ([]entity.FeedbackEntry, error)
}

// VisitorStore operaciones de visitas.
type VisitorStore interface {
	AddVisitor(v entity.Visitor) (int64, error)
	ListVisitors() ([]entity.Visitor, error)
	UpdateVisitor(id int64, patch dto.VisitorPatch) error
	DeleteVisitor(id int64) error
	// SearchVisitors busca por nombre, email o teléfono.
	SearchVisitors(query string) ([]entity.Visitor, error)
}

// SettingsStore entidades de configuración singleton. Guardar reemplaza el
// registro anterior dentro de una transacción (nunca queda la tabla vacía
// por un fallo a mitad del reemplazo).
type SettingsStore interface {
	SaveEmailConfig(cfg entity.EmailConfig) error
	GetEmailConfig() (entity.EmailConfig, error)
	SaveCompanyInfo(info entity.CompanyInfo) error
	GetCompanyInfo() (entity.CompanyInfo, error)
}

// ActivityStore registro de auditoría append-only.
type ActivityStore interface {
	LogActivity(username, action, details string) error
	// ListActivity devuelve el registro ordenado del más reciente al más
	// antiguo; username vacío no filtra.
	ListActivity(username string) ([]entity.ActivityLogEntry, error)
}

// LeadStore operaciones del módulo CRM de leads.
type LeadStore interface {
	CreateLead(lead entity.Lead) (int64, error)
	GetLead(id int64) (entity.Lead, error)
	UpdateLead(id int64, patch dto.LeadPatch) error
	DeleteLead(id int64) error
	// ListLeads filtra por etapa y estado; cadenas vacías no filtran.
	ListLeads(stage, status string) ([]entity.Lead, error)
}

// Adapter es el contrato completo de persistencia. Una implementación debe
// poder sustituirse por otra (archivo embebido, red, memoria) sin tocar a
// los casos de uso.
type Adapter interface {
	UserStore
	InventoryStore
	SalesStore
	EmployeeStore
	PayrollStore
	AppraisalStore
	VisitorStore
	SettingsStore
	ActivityStore
	LeadStore

	Close() error
}
