package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

const dayLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// POSUseCase orquesta el punto de venta. Checkout es la vía que decrementa
// stock; RecordSale solo anexa el registro, para callers que orquestan el
// decremento por su cuenta.
type POSUseCase struct {
	store storage.Adapter
	log   *logger.Logger
}

// NewPOSUseCase construye el caso de uso de punto de venta.
func NewPOSUseCase(store storage.Adapter, log *logger.Logger) *POSUseCase {
	return &POSUseCase{store: store, log: log}
}

func (uc *POSUseCase) buildSale(itemName string, qty int, price decimal.Decimal, username string) (entity.SaleRecord, error) {
	if itemName == "" || username == "" {
		return entity.SaleRecord{}, fmt.Errorf("%w: artículo y usuario son obligatorios", domain.ErrValidation)
	}
	if qty <= 0 {
		return entity.SaleRecord{}, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrValidation)
	}
	if price.IsNegative() {
		return entity.SaleRecord{}, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidation)
	}
	return entity.SaleRecord{
		ReceiptID:   uuid.New().String(),
		SaleDate:    time.Now(),
		ItemName:    itemName,
		Quantity:    qty,
		SalePrice:   price,
		TotalAmount: price.Mul(decimal.NewFromInt(int64(qty))),
		Username:    username,
	}, nil
}

// RecordSale anexa una venta sin tocar el stock: total = cantidad × precio.
// El registro es append-only; un reintento duplicaría la fila.
func (uc *POSUseCase) RecordSale(itemName string, qty int, price decimal.Decimal, username string) (entity.SaleRecord, error) {
	sale, err := uc.buildSale(itemName, qty, price, username)
	if err != nil {
		return entity.SaleRecord{}, err
	}
	if err := uc.store.RecordSale(sale); err != nil {
		return entity.SaleRecord{}, err
	}
	uc.log.Info().Str("receipt", sale.ReceiptID).Str("item", itemName).Int("qty", qty).Msg("venta registrada")
	return sale, nil
}

// Checkout decrementa el stock y registra la venta en una sola transacción.
// ErrConflict si el stock es insuficiente; en ese caso no muta nada.
func (uc *POSUseCase) Checkout(itemName string, qty int, price decimal.Decimal, username string) (entity.SaleRecord, error) {
	sale, err := uc.buildSale(itemName, qty, price, username)
	if err != nil {
		return entity.SaleRecord{}, err
	}
	if err := uc.store.CheckoutSale(sale); err != nil {
		return entity.SaleRecord{}, err
	}
	if err := uc.store.LogActivity(username, "sale", fmt.Sprintf("%s x%d", itemName, qty)); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar actividad de venta")
	}
	uc.log.Info().Str("receipt", sale.ReceiptID).Str("item", itemName).Int("qty", qty).Msg("checkout completado")
	return sale, nil
}

// TodaySales devuelve las ventas del día actual.
func (uc *POSUseCase) TodaySales() ([]entity.SaleRecord, error) {
	return uc.store.SalesByDay(time.Now().Format(dayLayout))
}

// TodayTotal devuelve el importe total vendido hoy. Sin ventas → 0.
func (uc *POSUseCase) TodayTotal() (decimal.Decimal, error) {
	sales, err := uc.TodaySales()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

// ListSales devuelve el historial completo de ventas.
func (uc *POSUseCase) ListSales() ([]entity.SaleRecord, error) {
	return uc.store.ListSales()
}

// CalculateTotal suma cantidad × precio de venta sobre una lista de artículos.
func CalculateTotal(items []entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.SalePrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ApplyDiscount aplica un descuento porcentual al total. El porcentaje debe
// estar en [0, 100]. Sin redondeo: la precisión se conserva hasta formatear.
func ApplyDiscount(total decimal.Decimal, pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: el descuento debe estar entre 0 y 100", domain.ErrValidation)
	}
	return total.Mul(hundred.Sub(pct)).Div(hundred), nil
}

// ApplyTax aplica un impuesto porcentual al total. El porcentaje no puede ser
// negativo.
func ApplyTax(total decimal.Decimal, pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: el impuesto no puede ser negativo", domain.ErrValidation)
	}
	return total.Mul(hundred.Add(pct)).Div(hundred), nil
}
