package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario.
// El nombre es único; la cantidad solo se decrementa a través del checkout
// del punto de venta. El valor del inventario se calcula a costo de
// adquisición (CostPrice), no a precio de venta.
type InventoryItem struct {
	ID          int64
	Name        string // único
	Quantity    int
	Threshold   int // bajo stock cuando Quantity < Threshold (estricto)
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	Description string
	ImagePath   string // referencia opcional a imagen
	UpdatedAt   time.Time
}

// IsLowStock indica si el artículo está por debajo de su umbral de reposición.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity < i.Threshold
}
