package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/usecase"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/memory"
)

func newAnalytics(t *testing.T) (*usecase.AnalyticsUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return usecase.NewAnalyticsUseCase(store), store
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func seedSale(t *testing.T, store *memory.Store, item string, qty int, total string, daysAgo int) {
	t.Helper()
	require.NoError(t, store.RecordSale(entity.SaleRecord{
		ReceiptID:   "r",
		SaleDate:    time.Now().AddDate(0, 0, -daysAgo),
		ItemName:    item,
		Quantity:    qty,
		TotalAmount: dec(total),
		Username:    "admin",
	}))
}

func TestDateRange_PeriodosConocidos(t *testing.T) {
	uc, _ := newAnalytics(t)

	r := uc.DateRange("30")
	assert.Equal(t, 30, r.Days)
	assert.Equal(t, day(-29), r.StartDate, "el rango es inclusivo: 30 días terminando hoy")
	assert.Equal(t, day(0), r.EndDate)
}

func TestDateRange_ClaveDesconocidaCaeASiete(t *testing.T) {
	uc, _ := newAnalytics(t)
	r := uc.DateRange("quincena")
	assert.Equal(t, 7, r.Days)
	assert.Equal(t, day(-6), r.StartDate)
}

func TestSalesSummary_OrdenPorCantidadDescendente(t *testing.T) {
	uc, store := newAnalytics(t)
	seedSale(t, store, "Poco", 2, "20", 1)
	seedSale(t, store, "Mucho", 9, "45", 2)
	seedSale(t, store, "Mucho", 3, "15", 0)

	rows, err := uc.SalesSummary(day(-6), day(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mucho", rows[0].ItemName)
	assert.Equal(t, 12, rows[0].TotalQty)
	assert.True(t, dec("60").Equal(rows[0].TotalAmount))
}

func TestTopSellingItems_TruncaAlLimite(t *testing.T) {
	uc, store := newAnalytics(t)
	seedSale(t, store, "A", 5, "5", 0)
	seedSale(t, store, "B", 3, "3", 0)
	seedSale(t, store, "C", 1, "1", 0)

	top, err := uc.TopSellingItems(day(0), day(0), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].ItemName)
	assert.Equal(t, "B", top[1].ItemName)
}

// Vector de referencia: 14 unidades vendidas en un rango de 7 días, 3 en
// stock, ventana de 7 días → promedio 2/día, recomendado 2×7 − 3 = 11.
func TestReorderRecommendations_VectorExacto(t *testing.T) {
	uc, store := newAnalytics(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Widget", Quantity: 3}))
	seedSale(t, store, "Widget", 8, "80", 5)
	seedSale(t, store, "Widget", 6, "60", 1)

	recs, err := uc.ReorderRecommendations(day(-6), day(0), 7, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Widget", recs[0].ItemName)
	assert.Equal(t, 3, recs[0].CurrentQty)
	assert.InDelta(t, 2.0, recs[0].AvgDailySales, 1e-9)
	assert.Equal(t, 11, recs[0].RecommendedQty)
}

func TestReorderRecommendations_DescartaStockSuficiente(t *testing.T) {
	uc, store := newAnalytics(t)
	// 7 vendidas en 7 días, 50 en stock: la proyección nunca supera el stock.
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Sobrado", Quantity: 50}))
	seedSale(t, store, "Sobrado", 7, "70", 3)

	recs, err := uc.ReorderRecommendations(day(-6), day(0), 7, 10)
	require.NoError(t, err)
	assert.Empty(t, recs, "recomendaciones ≤ 0 se descartan")
}

func TestReorderRecommendations_OrdenYLimite(t *testing.T) {
	uc, store := newAnalytics(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "A", Quantity: 0}))
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "B", Quantity: 0}))
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "C", Quantity: 0}))
	seedSale(t, store, "A", 7, "7", 0)
	seedSale(t, store, "B", 21, "21", 0)
	seedSale(t, store, "C", 14, "14", 0)

	recs, err := uc.ReorderRecommendations(day(-6), day(0), 7, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2, "la lista se trunca al límite")
	assert.Equal(t, "B", recs[0].ItemName, "orden por cantidad recomendada descendente")
	assert.Equal(t, "C", recs[1].ItemName)
}

// Un artículo con ventas en el rango pero ya eliminado del inventario cuenta
// con stock cero y sigue siendo candidato a reposición.
func TestReorderRecommendations_ArticuloSinInventario(t *testing.T) {
	uc, store := newAnalytics(t)
	seedSale(t, store, "Descatalogado", 7, "7", 0)

	recs, err := uc.ReorderRecommendations(day(-6), day(0), 7, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].CurrentQty)
	assert.Equal(t, 7, recs[0].RecommendedQty)
}

func TestReorderRecommendations_FechasInvalidas(t *testing.T) {
	uc, _ := newAnalytics(t)
	_, err := uc.ReorderRecommendations("hoy", day(0), 7, 10)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ReorderRecommendations(day(0), "mañana", 7, 10)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
