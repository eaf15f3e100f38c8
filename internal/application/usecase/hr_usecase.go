package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// HRUseCase orquesta el área de RR.HH.: empleados, reseñas puntuales y
// objetivos. La baja normal es lógica (IsActive=false); la eliminación física
// queda disponible para limpiezas.
type HRUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewHRUseCase construye el caso de uso de RR.HH.
func NewHRUseCase(store storage.Adapter, log *logger.Logger) *HRUseCase {
	return &HRUseCase{store: store, log: log}
}

// AddEmployee da de alta un empleado. Número de empleado y nombre son
// obligatorios; el número es único.
func (uc *HRUseCase) AddEmployee(emp entity.Employee) (int64, error) {
	if strings.TrimSpace(emp.EmpNumber) == "" || strings.TrimSpace(emp.Name) == "" {
		return 0, fmt.Errorf("%w: número de empleado y nombre son obligatorios", domain.ErrValidation)
	}
	id, err := uc.store.AddEmployee(emp)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("employee_id", id).Str("emp_number", emp.EmpNumber).Msg("empleado agregado")
	return id, nil
}

// ListEmployees devuelve todos los empleados en orden estable.
func (uc *HRUseCase) ListEmployees() ([]entity.Employee, error) {
	return uc.store.ListEmployees()
}

// GetEmployee devuelve un empleado por id.
func (uc *HRUseCase) GetEmployee(id int64) (entity.Employee, error) {
	return uc.store.GetEmployee(id)
}

// UpdateEmployee aplica un parche parcial sobre el empleado.
func (uc *HRUseCase) UpdateEmployee(id int64, patch dto.EmployeePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrValidation)
	}
	return uc.store.UpdateEmployee(id, patch)
}

// DeactivateEmployee baja lógica: conserva el registro con IsActive=false.
func (uc *HRUseCase) DeactivateEmployee(id int64) error {
	inactive := false
	return uc.store.UpdateEmployee(id, dto.EmployeePatch{IsActive: &inactive})
}

// DeleteEmployee eliminación física del registro.
func (uc *HRUseCase) DeleteEmployee(id int64) error {
	return uc.store.DeleteEmployee(id)
}

// AddReview registra una reseña puntual de desempeño.
func (uc *HRUseCase) AddReview(review entity.EmployeeReview) error {
	if review.EmployeeID == 0 || review.ReviewDate == "" || review.Rating == "" {
		return fmt.Errorf("%w: empleado, fecha y calificación son obligatorios", domain.ErrValidation)
	}
	return uc.store.AddReview(review)
}

// ReviewsByEmployee devuelve las reseñas de un empleado, más recientes primero.
func (uc *HRUseCase) ReviewsByEmployee(employeeID int64) ([]entity.EmployeeReview, error) {
	return uc.store.ListReviewsByEmployee(employeeID)
}

// AddGoal registra un objetivo de empleado.
func (uc *HRUseCase) AddGoal(goal entity.EmployeeGoal) error {
	if goal.EmployeeID == 0 || strings.TrimSpace(goal.Goal) == "" {
		return fmt.Errorf("%w: empleado y objetivo son obligatorios", domain.ErrValidation)
	}
	if goal.Status == "" {
		goal.Status = entity.GoalStatusNotStarted
	}
	return uc.store.AddGoal(goal)
}

// GoalsByEmployee devuelve los objetivos de un empleado ordenados por fecha
// límite.
func (uc *HRUseCase) GoalsByEmployee(employeeID int64) ([]entity.EmployeeGoal, error) {
	return uc.store.ListGoalsByEmployee(employeeID)
}

// IDCardExpiry calcula el vencimiento del carné (fecha de ingreso + años de
// vigencia). Devuelve cadena vacía si la fecha no parsea.
func IDCardExpiry(joiningDate string, validityYears int) string {
	t, err := time.Parse(dayLayout, joiningDate)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 365*validityYears).Format(dayLayout)
}

// IsIDExpired indica si el carné ya venció. Fechas no parseables cuentan como
// no vencidas.
func IsIDExpired(expiryDate string) bool {
	t, err := time.Parse(dayLayout, expiryDate)
	if err != nil {
		return false
	}
	return time.Now().After(t)
}
