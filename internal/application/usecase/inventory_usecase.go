// Package usecase contiene los orquestadores sin estado de cada familia de
// entidades: validación, cómputo derivado y coordinación entre entidades.
// Dependen únicamente del contrato storage.Adapter, nunca del backend.
package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// InventoryUseCase orquesta el inventario: altas validadas, parches parciales,
// bajo stock y valoración a costo de adquisición.
type InventoryUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(store storage.Adapter, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{store: store, log: log}
}

// ListItems devuelve todos los artículos ordenados por nombre.
func (uc *InventoryUseCase) ListItems() ([]entity.InventoryItem, error) {
	return uc.store.ListInventory()
}

// GetItem devuelve un artículo por nombre. ErrNotFound si no existe.
func (uc *InventoryUseCase) GetItem(name string) (entity.InventoryItem, error) {
	return uc.store.GetInventoryItem(name)
}

// AddItem da de alta un artículo. Rechaza nombre vacío y cantidades o
// precios negativos.
func (uc *InventoryUseCase) AddItem(item entity.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: el nombre del artículo es obligatorio", domain.ErrValidation)
	}
	if item.Quantity < 0 || item.Threshold < 0 {
		return fmt.Errorf("%w: cantidad y umbral no pueden ser negativos", domain.ErrValidation)
	}
	if item.CostPrice.IsNegative() || item.SalePrice.IsNegative() {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrValidation)
	}
	if err := uc.store.AddInventoryItem(item); err != nil {
		return err
	}
	uc.log.Info().Str("item", item.Name).Int("qty", item.Quantity).Msg("artículo agregado")
	return nil
}

// UpdateItem aplica un parche parcial: solo se escriben los campos presentes;
// los ausentes conservan su valor previo.
func (uc *InventoryUseCase) UpdateItem(name string, patch dto.InventoryPatch) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre del artículo es obligatorio", domain.ErrValidation)
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrValidation)
	}
	if patch.Threshold != nil && *patch.Threshold < 0 {
		return fmt.Errorf("%w: el umbral no puede ser negativo", domain.ErrValidation)
	}
	if patch.CostPrice != nil && patch.CostPrice.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrValidation)
	}
	if patch.SalePrice != nil && patch.SalePrice.IsNegative() {
		return fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrValidation)
	}
	if patch.IsEmpty() {
		return nil
	}
	return uc.store.UpdateInventoryItem(name, patch)
}

// DeleteItem elimina un artículo por nombre.
func (uc *InventoryUseCase) DeleteItem(name string) error {
	return uc.store.DeleteInventoryItem(name)
}

// Search busca artículos por nombre o descripción.
func (uc *InventoryUseCase) Search(query string) ([]entity.InventoryItem, error) {
	return uc.store.SearchInventory(query)
}

// LowStockItems devuelve los artículos con cantidad estrictamente por debajo
// de su umbral. Cantidad igual al umbral NO es bajo stock.
func (uc *InventoryUseCase) LowStockItems() ([]entity.InventoryItem, error) {
	items, err := uc.store.ListInventory()
	if err != nil {
		return nil, err
	}
	low := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// InventoryValue devuelve Σ(cantidad × costo) sobre todo el inventario.
// Valora a costo de adquisición, no a precio de venta. Inventario vacío → 0.
func (uc *InventoryUseCase) InventoryValue() (decimal.Decimal, error) {
	items, err := uc.store.ListInventory()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total, nil
}

// ItemCount devuelve el número total de artículos del inventario.
func (uc *InventoryUseCase) ItemCount() (int, error) {
	items, err := uc.store.ListInventory()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
