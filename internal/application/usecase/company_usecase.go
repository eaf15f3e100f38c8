package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
)

// CompanyUseCase gestiona los datos de la organización (entidad singleton).
type CompanyUseCase struct {
	store storage.Adapter
}

// NewCompanyUseCase construye el caso de uso de empresa.
func NewCompanyUseCase(store storage.Adapter) *CompanyUseCase {
	return &CompanyUseCase{store: store}
}

// SaveInfo reemplaza los datos de la empresa. El nombre es obligatorio.
func (uc *CompanyUseCase) SaveInfo(info entity.CompanyInfo) error {
	if strings.TrimSpace(info.CompanyName) == "" {
		return fmt.Errorf("%w: el nombre de la empresa es obligatorio", domain.ErrValidation)
	}
	return uc.store.SaveCompanyInfo(info)
}

// GetInfo devuelve los datos vigentes de la empresa. ErrNotFound si no hay.
func (uc *CompanyUseCase) GetInfo() (entity.CompanyInfo, error) {
	return uc.store.GetCompanyInfo()
}

// ActivityUseCase expone el registro de auditoría a los consumidores externos.
type ActivityUseCase struct {
	store storage.Adapter
}

// NewActivityUseCase construye el caso de uso de actividad.
func NewActivityUseCase(store storage.Adapter) *ActivityUseCase {
	return &ActivityUseCase{store: store}
}

// Log anexa una entrada de auditoría.
func (uc *ActivityUseCase) Log(username, action, details string) error {
	if username == "" || action == "" {
		return fmt.Errorf("%w: usuario y acción son obligatorios", domain.ErrValidation)
	}
	return uc.store.LogActivity(username, action, details)
}

// List devuelve el registro, opcionalmente filtrado por usuario (vacío = todo).
func (uc *ActivityUseCase) List(username string) ([]entity.ActivityLogEntry, error) {
	return uc.store.ListActivity(username)
}
