package entity

import "time"

// Estados del ciclo de evaluación. La máquina avanza en un solo sentido:
// Draft → Self Submitted → Manager Reviewed → Finalized. Finalized es
// terminal; un ciclo finalizado no se reabre.
const (
	AppraisalStatusDraft           = "Draft"
	AppraisalStatusSelfSubmitted   = "Self Submitted"
	AppraisalStatusManagerReviewed = "Manager Reviewed"
	AppraisalStatusFinalized       = "Finalized"
)

// AppraisalCycle representa una instancia periódica de evaluación de un
// empleado que avanza por la secuencia fija de estados.
type AppraisalCycle struct {
	ID            int64
	EmployeeID    int64
	PeriodStart   string // formato 2006-01-02
	PeriodEnd     string
	Status        string // ver constantes AppraisalStatus*
	SelfText      string
	SelfRating    float64
	ManagerText   string
	ManagerRating float64
	FinalRating   float64
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Estados de una solicitud de feedback 360.
const (
	FeedbackStatusRequested = "Requested"
	FeedbackStatusCompleted = "Completed"
	FeedbackStatusDeclined  = "Declined"
)

// FeedbackRequest solicitud de feedback 360 asociada a un ciclo. Puede existir
// contra cualquier estado del ciclo; no la condiciona la máquina de estados.
type FeedbackRequest struct {
	ID               int64
	AppraisalID      int64
	Requester        string
	TargetEmployeeID int64
	Message          string
	Status           string // ver constantes FeedbackStatus*
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FeedbackEntry aporte de feedback 360. Append-only, sin estado propio.
type FeedbackEntry struct {
	ID             int64
	AppraisalID    int64
	FromEmployeeID int64
	ToEmployeeID   int64
	Rating         float64
	FeedbackText   string
	CreatedAt      time.Time
}
