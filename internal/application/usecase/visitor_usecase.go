package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// VisitorUseCase orquesta el registro de visitas de recepción.
type VisitorUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewVisitorUseCase construye el caso de uso de visitas.
func NewVisitorUseCase(store storage.Adapter, log *logger.Logger) *VisitorUseCase {
	return &VisitorUseCase{store: store, log: log}
}

// AddVisitor registra una visita. El nombre es obligatorio.
func (uc *VisitorUseCase) AddVisitor(v entity.Visitor) (int64, error) {
	if strings.TrimSpace(v.Name) == "" {
		return 0, fmt.Errorf("%w: el nombre del visitante es obligatorio", domain.ErrValidation)
	}
	return uc.store.AddVisitor(v)
}

// ListVisitors devuelve todas las visitas ordenadas por nombre.
func (uc *VisitorUseCase) ListVisitors() ([]entity.Visitor, error) {
	return uc.store.ListVisitors()
}

// UpdateVisitor aplica un parche parcial sobre la visita.
func (uc *VisitorUseCase) UpdateVisitor(id int64, patch dto.VisitorPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrValidation)
	}
	return uc.store.UpdateVisitor(id, patch)
}

// DeleteVisitor elimina una visita.
func (uc *VisitorUseCase) DeleteVisitor(id int64) error {
	return uc.store.DeleteVisitor(id)
}

// Search busca visitas por nombre, email o teléfono.
func (uc *VisitorUseCase) Search(query string) ([]entity.Visitor, error) {
	return uc.store.SearchVisitors(query)
}

// VisitorCount devuelve el total de visitas registradas.
func (uc *VisitorUseCase) VisitorCount() (int, error) {
	visitors, err := uc.store.ListVisitors()
	if err != nil {
		return 0, err
	}
	return len(visitors), nil
}
