package entity

import "time"

// Employee representa un empleado del área de RR.HH.
// El flujo normal usa baja lógica (IsActive=false); la eliminación física
// también está expuesta para limpiezas administrativas.
type Employee struct {
	ID               int64
	EmpNumber        string // único
	Name             string
	JoiningDate      string // formato 2006-01-02
	Designation      string
	Manager          string
	Team             string
	Email            string
	Phone            string
	EmergencyContact string
	PhotoPath        string
	Notes            string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EmployeeReview reseña puntual de desempeño (independiente del ciclo de
// evaluación formal). Append-only.
type EmployeeReview struct {
	ID         int64
	EmployeeID int64
	ReviewDate string // formato 2006-01-02
	Rating     string
	Comments   string
	CreatedAt  time.Time
}

// Estados de un objetivo de empleado.
const (
	GoalStatusNotStarted = "Not Started"
	GoalStatusInProgress = "In Progress"
	GoalStatusDone       = "Done"
)

// EmployeeGoal objetivo asignado a un empleado.
type EmployeeGoal struct {
	ID         int64
	EmployeeID int64
	Goal       string
	Status     string // ver constantes GoalStatus*
	DueDate    string // formato 2006-01-02
	Notes      string
	CreatedAt  time.Time
}
