package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
)

// LeadUseCase orquesta el módulo CRM de leads y oportunidades.
type LeadUseCase struct {
	store storage.Adapter
}

// NewLeadUseCase construye el caso de uso de leads.
func NewLeadUseCase(store storage.Adapter) *LeadUseCase {
	return &LeadUseCase{store: store}
}

// CreateLead da de alta un lead. El nombre es obligatorio; etapa y estado
// toman los valores iniciales si vienen vacíos.
func (uc *LeadUseCase) CreateLead(lead entity.Lead) (int64, error) {
	if strings.TrimSpace(lead.Name) == "" {
		return 0, fmt.Errorf("%w: el nombre del lead es obligatorio", domain.ErrValidation)
	}
	if lead.Value.IsNegative() {
		return 0, fmt.Errorf("%w: el valor no puede ser negativo", domain.ErrValidation)
	}
	if lead.Stage == "" {
		lead.Stage = entity.LeadStageNew
	}
	if lead.Status == "" {
		lead.Status = "active"
	}
	return uc.store.CreateLead(lead)
}

// GetLead devuelve un lead por id.
func (uc *LeadUseCase) GetLead(id int64) (entity.Lead, error) {
	return uc.store.GetLead(id)
}

// UpdateLead aplica un parche parcial sobre el lead.
func (uc *LeadUseCase) UpdateLead(id int64, patch dto.LeadPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrValidation)
	}
	if patch.Value != nil && patch.Value.IsNegative() {
		return fmt.Errorf("%w: el valor no puede ser negativo", domain.ErrValidation)
	}
	return uc.store.UpdateLead(id, patch)
}

// MoveStage cambia la etapa del embudo de un lead.
func (uc *LeadUseCase) MoveStage(id int64, stage string) error {
	if stage == "" {
		return fmt.Errorf("%w: la etapa es obligatoria", domain.ErrValidation)
	}
	return uc.store.UpdateLead(id, dto.LeadPatch{Stage: &stage})
}

// DeleteLead elimina un lead.
func (uc *LeadUseCase) DeleteLead(id int64) error {
	return uc.store.DeleteLead(id)
}

// ListLeads filtra por etapa y estado; cadenas vacías no filtran.
func (uc *LeadUseCase) ListLeads(stage, status string) ([]entity.Lead, error) {
	return uc.store.ListLeads(stage, status)
}
