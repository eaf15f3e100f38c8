package usecase

import (
	"fmt"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// nextStatus transición permitida desde cada estado del ciclo. Finalized no
// aparece: es terminal y no se reabre.
var nextStatus = map[string]string{
	entity.AppraisalStatusDraft:           entity.AppraisalStatusSelfSubmitted,
	entity.AppraisalStatusSelfSubmitted:   entity.AppraisalStatusManagerReviewed,
	entity.AppraisalStatusManagerReviewed: entity.AppraisalStatusFinalized,
}

// AppraisalUseCase orquesta el ciclo de evaluación (máquina de estados de
// avance único) y el flujo lateral de feedback 360, que no depende del estado
// del ciclo.
type AppraisalUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewAppraisalUseCase construye el caso de uso de evaluaciones.
func NewAppraisalUseCase(store storage.Adapter, log *logger.Logger) *AppraisalUseCase {
	return &AppraisalUseCase{store: store, log: log}
}

// CreateAppraisal abre un ciclo nuevo en estado Draft.
func (uc *AppraisalUseCase) CreateAppraisal(employeeID int64, periodStart, periodEnd, createdBy string) (int64, error) {
	if employeeID == 0 {
		return 0, fmt.Errorf("%w: el empleado es obligatorio", domain.ErrValidation)
	}
	id, err := uc.store.CreateAppraisalCycle(entity.AppraisalCycle{
		EmployeeID:  employeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      entity.AppraisalStatusDraft,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("appraisal_id", id).Int64("employee_id", employeeID).Msg("ciclo de evaluación creado")
	return id, nil
}

// ListAppraisals devuelve todos los ciclos, más recientes primero.
func (uc *AppraisalUseCase) ListAppraisals() ([]entity.AppraisalCycle, error) {
	return uc.store.ListAppraisalCycles()
}

// GetAppraisal devuelve un ciclo por id.
func (uc *AppraisalUseCase) GetAppraisal(id int64) (entity.AppraisalCycle, error) {
	return uc.store.GetAppraisalCycle(id)
}

// advance valida que el ciclo esté exactamente en el estado previo a target
// y devuelve el ciclo vigente. ErrConflict ante transiciones fuera de orden.
func (uc *AppraisalUseCase) advance(id int64, target string) (entity.AppraisalCycle, error) {
	cycle, err := uc.store.GetAppraisalCycle(id)
	if err != nil {
		return entity.AppraisalCycle{}, err
	}
	if nextStatus[cycle.Status] != target {
		return entity.AppraisalCycle{}, fmt.Errorf("%w: transición %q → %q no permitida",
			domain.ErrConflict, cycle.Status, target)
	}
	return cycle, nil
}

// SubmitSelfAppraisal registra la autoevaluación y avanza Draft → Self
// Submitted.
func (uc *AppraisalUseCase) SubmitSelfAppraisal(id int64, text string, rating float64) error {
	if _, err := uc.advance(id, entity.AppraisalStatusSelfSubmitted); err != nil {
		return err
	}
	status := entity.AppraisalStatusSelfSubmitted
	return uc.store.UpdateAppraisalCycle(id, dto.AppraisalPatch{
		SelfText:   &text,
		SelfRating: &rating,
		Status:     &status,
	})
}

// SubmitManagerReview registra la revisión del manager y avanza Self
// Submitted → Manager Reviewed.
func (uc *AppraisalUseCase) SubmitManagerReview(id int64, text string, rating float64) error {
	if _, err := uc.advance(id, entity.AppraisalStatusManagerReviewed); err != nil {
		return err
	}
	status := entity.AppraisalStatusManagerReviewed
	return uc.store.UpdateAppraisalCycle(id, dto.AppraisalPatch{
		ManagerText:   &text,
		ManagerRating: &rating,
		Status:        &status,
	})
}

// FinalizeAppraisal fija la calificación final y avanza Manager Reviewed →
// Finalized. Estado terminal.
func (uc *AppraisalUseCase) FinalizeAppraisal(id int64, finalRating float64) error {
	if _, err := uc.advance(id, entity.AppraisalStatusFinalized); err != nil {
		return err
	}
	status := entity.AppraisalStatusFinalized
	if err := uc.store.UpdateAppraisalCycle(id, dto.AppraisalPatch{
		FinalRating: &finalRating,
		Status:      &status,
	}); err != nil {
		return err
	}
	uc.log.Info().Int64("appraisal_id", id).Float64("final_rating", finalRating).Msg("ciclo finalizado")
	return nil
}

// ── Feedback 360 ─────────────────────────────────────────────────────────────

// CreateFeedbackRequest abre una solicitud de feedback contra cualquier estado
// del ciclo.
func (uc *AppraisalUseCase) CreateFeedbackRequest(appraisalID int64, requester string, targetEmployeeID int64, message string) (int64, error) {
	if targetEmployeeID == 0 {
		return 0, fmt.Errorf("%w: el empleado objetivo es obligatorio", domain.ErrValidation)
	}
	return uc.store.CreateFeedbackRequest(entity.FeedbackRequest{
		AppraisalID:      appraisalID,
		Requester:        requester,
		TargetEmployeeID: targetEmployeeID,
		Message:          message,
		Status:           entity.FeedbackStatusRequested,
	})
}

// ListFeedbackRequests devuelve todas las solicitudes, más recientes primero.
func (uc *AppraisalUseCase) ListFeedbackRequests() ([]entity.FeedbackRequest, error) {
	return uc.store.ListFeedbackRequests()
}

// UpdateFeedbackRequestStatus cambia el estado de una solicitud.
func (uc *AppraisalUseCase) UpdateFeedbackRequestStatus(id int64, status string) error {
	if status == "" {
		return fmt.Errorf("%w: el estado es obligatorio", domain.ErrValidation)
	}
	return uc.store.UpdateFeedbackRequest(id, dto.FeedbackRequestPatch{Status: &status})
}

// AddFeedbackEntry anexa un aporte de feedback. Append-only.
func (uc *AppraisalUseCase) AddFeedbackEntry(fb entity.FeedbackEntry) error {
	if fb.ToEmployeeID == 0 {
		return fmt.Errorf("%w: el empleado destinatario es obligatorio", domain.ErrValidation)
	}
	return uc.store.AddFeedbackEntry(fb)
}

// ListFeedbackEntries devuelve todos los aportes de feedback.
func (uc *AppraisalUseCase) ListFeedbackEntries() ([]entity.FeedbackEntry, error) {
	return uc.store.ListFeedbackEntries()
}
