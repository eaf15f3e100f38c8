package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa una venta registrada en el punto de venta.
// Es append-only: nunca se actualiza ni se elimina desde los servicios.
// Referencia al artículo por nombre (no por id) para conservar el historial
// aunque el artículo se elimine del inventario.
type SaleRecord struct {
	ID          int64
	ReceiptID   string // UUID asignado al registrar la venta
	SaleDate    time.Time
	ItemName    string
	Quantity    int
	SalePrice   decimal.Decimal // precio unitario al momento de la venta
	TotalAmount decimal.Decimal // Quantity × SalePrice
	Username    string          // usuario que registró la venta
}

// SalesSummaryRow agregado de ventas por artículo en un rango de fechas.
type SalesSummaryRow struct {
	ItemName    string
	TotalQty    int
	TotalAmount decimal.Decimal
}

// SalesTrendRow total de ventas de un día dentro de un rango.
type SalesTrendRow struct {
	Day         string // formato 2006-01-02
	TotalAmount decimal.Decimal
}
