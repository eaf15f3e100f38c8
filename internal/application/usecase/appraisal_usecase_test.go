package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/usecase"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/memory"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

func newAppraisal(t *testing.T) (*usecase.AppraisalUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return usecase.NewAppraisalUseCase(store, logger.Nop()), store
}

func TestCreateAppraisal_AbreEnDraft(t *testing.T) {
	uc, _ := newAppraisal(t)

	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)

	cycle, err := uc.GetAppraisal(id)
	require.NoError(t, err)
	assert.Equal(t, entity.AppraisalStatusDraft, cycle.Status)
	assert.Equal(t, "admin", cycle.CreatedBy)
}

func TestCreateAppraisal_EmpleadoObligatorio(t *testing.T) {
	uc, _ := newAppraisal(t)
	_, err := uc.CreateAppraisal(0, "2026-01-01", "2026-06-30", "admin")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkflow_SecuenciaCompleta(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)

	require.NoError(t, uc.SubmitSelfAppraisal(id, "mi autoevaluación", 4.0))
	cycle, _ := uc.GetAppraisal(id)
	assert.Equal(t, entity.AppraisalStatusSelfSubmitted, cycle.Status)
	assert.Equal(t, 4.0, cycle.SelfRating)

	require.NoError(t, uc.SubmitManagerReview(id, "revisión del manager", 4.5))
	cycle, _ = uc.GetAppraisal(id)
	assert.Equal(t, entity.AppraisalStatusManagerReviewed, cycle.Status)
	assert.Equal(t, 4.5, cycle.ManagerRating)

	require.NoError(t, uc.FinalizeAppraisal(id, 4.2))
	cycle, _ = uc.GetAppraisal(id)
	assert.Equal(t, entity.AppraisalStatusFinalized, cycle.Status)
	assert.Equal(t, 4.2, cycle.FinalRating)
}

func TestWorkflow_RevisionSinAutoevaluacion_Rechazada(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)

	err = uc.SubmitManagerReview(id, "saltando la autoevaluación", 4.0)
	assert.ErrorIs(t, err, domain.ErrConflict, "no se puede revisar un ciclo en Draft")

	cycle, _ := uc.GetAppraisal(id)
	assert.Equal(t, entity.AppraisalStatusDraft, cycle.Status, "el estado no debe cambiar")
	assert.Empty(t, cycle.ManagerText, "la revisión rechazada no debe persistir texto")
}

func TestWorkflow_FinalizarDesdeDraft_Rechazado(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)

	err = uc.FinalizeAppraisal(id, 5.0)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWorkflow_FinalizadoEsTerminal(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)
	require.NoError(t, uc.SubmitSelfAppraisal(id, "auto", 4.0))
	require.NoError(t, uc.SubmitManagerReview(id, "rev", 4.0))
	require.NoError(t, uc.FinalizeAppraisal(id, 4.0))

	assert.ErrorIs(t, uc.SubmitSelfAppraisal(id, "otra vez", 5.0), domain.ErrConflict,
		"un ciclo finalizado no se reabre")
	assert.ErrorIs(t, uc.FinalizeAppraisal(id, 5.0), domain.ErrConflict,
		"finalizar dos veces no está permitido")
}

func TestWorkflow_AutoevaluacionDuplicada_Rechazada(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)
	require.NoError(t, uc.SubmitSelfAppraisal(id, "primera", 3.0))

	err = uc.SubmitSelfAppraisal(id, "segunda", 5.0)
	assert.ErrorIs(t, err, domain.ErrConflict)

	cycle, _ := uc.GetAppraisal(id)
	assert.Equal(t, "primera", cycle.SelfText, "la primera autoevaluación debe conservarse")
}

func TestWorkflow_CicloInexistente(t *testing.T) {
	uc, _ := newAppraisal(t)
	assert.ErrorIs(t, uc.SubmitSelfAppraisal(999, "x", 1.0), domain.ErrNotFound)
}

// El feedback 360 corre al margen de la máquina de estados del ciclo.
func TestFeedback_IndependienteDelEstadoDelCiclo(t *testing.T) {
	uc, _ := newAppraisal(t)
	id, err := uc.CreateAppraisal(1, "2026-01-01", "2026-06-30", "admin")
	require.NoError(t, err)

	reqID, err := uc.CreateFeedbackRequest(id, "admin", 2, "por favor danos tu feedback")
	require.NoError(t, err)

	reqs, err := uc.ListFeedbackRequests()
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, entity.FeedbackStatusRequested, reqs[0].Status)

	require.NoError(t, uc.UpdateFeedbackRequestStatus(reqID, entity.FeedbackStatusCompleted))
	require.NoError(t, uc.AddFeedbackEntry(entity.FeedbackEntry{
		AppraisalID:    id,
		FromEmployeeID: 2,
		ToEmployeeID:   1,
		Rating:         4.0,
		FeedbackText:   "gran compañero",
	}))

	entries, err := uc.ListFeedbackEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFeedback_DestinatarioObligatorio(t *testing.T) {
	uc, _ := newAppraisal(t)
	_, err := uc.CreateFeedbackRequest(1, "admin", 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.AddFeedbackEntry(entity.FeedbackEntry{FromEmployeeID: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
