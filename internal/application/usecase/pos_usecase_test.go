package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/usecase"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/memory"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newPOS(t *testing.T) (*usecase.POSUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return usecase.NewPOSUseCase(store, logger.Nop()), store
}

func seedItem(t *testing.T, store *memory.Store, name string, qty int, salePrice string) {
	t.Helper()
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{
		Name:      name,
		Quantity:  qty,
		SalePrice: dec(salePrice),
	}))
}

func TestApplyDiscount_VectorExacto(t *testing.T) {
	got, err := usecase.ApplyDiscount(dec("100"), dec("10"))
	require.NoError(t, err)
	assert.True(t, dec("90").Equal(got), "100 con 10%% de descuento debe ser 90, fue %s", got)
}

func TestApplyDiscount_CeroYCien(t *testing.T) {
	got, err := usecase.ApplyDiscount(dec("250.50"), dec("0"))
	require.NoError(t, err)
	assert.True(t, dec("250.50").Equal(got), "0%% no debe alterar el total")

	got, err = usecase.ApplyDiscount(dec("250.50"), dec("100"))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "100%% debe dejar el total en cero")
}

func TestApplyDiscount_PorcentajeFueraDeRango(t *testing.T) {
	_, err := usecase.ApplyDiscount(dec("100"), dec("-1"))
	assert.ErrorIs(t, err, domain.ErrValidation, "descuento negativo debe rechazarse")

	_, err = usecase.ApplyDiscount(dec("100"), dec("101"))
	assert.ErrorIs(t, err, domain.ErrValidation, "descuento mayor a 100 debe rechazarse")
}

func TestApplyTax_VectorExacto(t *testing.T) {
	got, err := usecase.ApplyTax(dec("100"), dec("18"))
	require.NoError(t, err)
	assert.True(t, dec("118").Equal(got), "100 con 18%% de impuesto debe ser 118, fue %s", got)
}

func TestApplyTax_Negativo(t *testing.T) {
	_, err := usecase.ApplyTax(dec("100"), dec("-5"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplyTax_SinRedondeoIntermedio(t *testing.T) {
	// 33.33 × 1.07 = 35.6631 — la precisión se conserva hasta formatear.
	got, err := usecase.ApplyTax(dec("33.33"), dec("7"))
	require.NoError(t, err)
	assert.True(t, dec("35.6631").Equal(got), "el cálculo no debe redondear, fue %s", got)
}

func TestCalculateTotal_SumaCantidadPorPrecio(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "A", Quantity: 2, SalePrice: dec("10.50")},
		{Name: "B", Quantity: 3, SalePrice: dec("4")},
	}
	got := usecase.CalculateTotal(items)
	assert.True(t, dec("33").Equal(got), "2×10.50 + 3×4 = 33, fue %s", got)
}

func TestRecordSale_DerivaTotalYRecibo(t *testing.T) {
	pos, store := newPOS(t)

	sale, err := pos.RecordSale("Widget", 3, dec("9.99"), "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ReceiptID, "cada venta debe llevar un id de recibo")
	assert.True(t, dec("29.97").Equal(sale.TotalAmount), "total = 3 × 9.99")

	sales, err := store.ListSales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ReceiptID, sales[0].ReceiptID)
}

func TestRecordSale_ValidaEntradas(t *testing.T) {
	pos, _ := newPOS(t)

	_, err := pos.RecordSale("", 1, dec("1"), "admin")
	assert.ErrorIs(t, err, domain.ErrValidation, "nombre vacío debe rechazarse")

	_, err = pos.RecordSale("Widget", 0, dec("1"), "admin")
	assert.ErrorIs(t, err, domain.ErrValidation, "cantidad cero debe rechazarse")

	_, err = pos.RecordSale("Widget", 1, dec("-1"), "admin")
	assert.ErrorIs(t, err, domain.ErrValidation, "precio negativo debe rechazarse")
}

func TestCheckout_DecrementaStockYRegistraVenta(t *testing.T) {
	pos, store := newPOS(t)
	seedItem(t, store, "Widget", 10, "5")

	_, err := pos.Checkout("Widget", 4, dec("5"), "admin")
	require.NoError(t, err)

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 6, it.Quantity, "el stock debe decrementarse en la cantidad vendida")

	sales, err := store.ListSales()
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestCheckout_StockInsuficiente_NoMutaNada(t *testing.T) {
	pos, store := newPOS(t)
	seedItem(t, store, "Widget", 2, "5")

	_, err := pos.Checkout("Widget", 3, dec("5"), "admin")
	assert.ErrorIs(t, err, domain.ErrConflict, "stock insuficiente debe ser conflicto")

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 2, it.Quantity, "el stock no debe cambiar tras un checkout fallido")

	sales, err := store.ListSales()
	require.NoError(t, err)
	assert.Empty(t, sales, "no debe quedar venta registrada tras un checkout fallido")
}

func TestCheckout_ArticuloInexistente(t *testing.T) {
	pos, _ := newPOS(t)
	_, err := pos.Checkout("Fantasma", 1, dec("5"), "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodayTotal_SumaSoloVentasDelDia(t *testing.T) {
	pos, store := newPOS(t)
	seedItem(t, store, "Widget", 10, "5")

	_, err := pos.Checkout("Widget", 2, dec("5"), "admin")
	require.NoError(t, err)
	_, err = pos.RecordSale("Widget", 1, dec("5"), "admin")
	require.NoError(t, err)

	total, err := pos.TodayTotal()
	require.NoError(t, err)
	assert.True(t, dec("15").Equal(total), "2×5 + 1×5 = 15, fue %s", total)
}

func TestTodayTotal_SinVentasEsCero(t *testing.T) {
	pos, _ := newPOS(t)
	total, err := pos.TodayTotal()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
