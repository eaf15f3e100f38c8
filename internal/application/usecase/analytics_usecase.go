package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
)

// Claves de período aceptadas por DateRange (días hacia atrás desde hoy).
var periodDays = map[string]int{
	"7":   7,
	"30":  30,
	"90":  90,
	"365": 365,
}

// AnalyticsUseCase capa de reportes derivados, solo lectura. Compone datos de
// inventario y ventas a través del contrato de almacenamiento; nunca toca el
// backend directamente.
type AnalyticsUseCase struct {
	store storage.Adapter
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(store storage.Adapter) *AnalyticsUseCase {
	return &AnalyticsUseCase{store: store}
}

// DateRange resuelve una clave de período a un rango inclusivo que termina
// hoy. Claves desconocidas caen a 7 días.
func (uc *AnalyticsUseCase) DateRange(periodKey string) dto.DateRangeDTO {
	days, ok := periodDays[periodKey]
	if !ok {
		days = 7
	}
	today := time.Now()
	start := today.AddDate(0, 0, -(days - 1))
	return dto.DateRangeDTO{
		StartDate: start.Format(dayLayout),
		EndDate:   today.Format(dayLayout),
		Days:      days,
	}
}

// SalesTrend totales de venta agrupados por día en el rango inclusivo.
func (uc *AnalyticsUseCase) SalesTrend(start, end string) ([]entity.SalesTrendRow, error) {
	return uc.store.SalesTrendByDay(start, end)
}

// SalesSummary totales de venta agrupados por artículo en el rango inclusivo,
// ordenados por cantidad descendente.
func (uc *AnalyticsUseCase) SalesSummary(start, end string) ([]entity.SalesSummaryRow, error) {
	return uc.store.SalesSummaryByItem(start, end)
}

// TopSellingItems los `limit` artículos más vendidos por cantidad.
func (uc *AnalyticsUseCase) TopSellingItems(start, end string, limit int) ([]dto.TopItemDTO, error) {
	rows, err := uc.store.SalesSummaryByItem(start, end)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	top := make([]dto.TopItemDTO, 0, len(rows))
	for _, r := range rows {
		top = append(top, dto.TopItemDTO{
			ItemName:    r.ItemName,
			TotalQty:    r.TotalQty,
			TotalAmount: r.TotalAmount,
		})
	}
	return top, nil
}

// ReorderRecommendations proyecta la reposición por extrapolación lineal de
// la demanda diaria promedio del rango:
//
//	avg_daily   = total_qty / días_del_rango
//	recomendado = max(0, round(avg_daily × windowDays − stock_actual))
//
// Los artículos con recomendación ≤ 0 se descartan; el resto se ordena por
// cantidad recomendada descendente y se trunca a limit. La fórmula se
// conserva tal cual por compatibilidad: es una heurística, no un pronóstico.
func (uc *AnalyticsUseCase) ReorderRecommendations(start, end string, windowDays, limit int) ([]dto.ReorderRecommendationDTO, error) {
	startDt, err := time.Parse(dayLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de inicio %q", domain.ErrValidation, start)
	}
	endDt, err := time.Parse(dayLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de fin %q", domain.ErrValidation, end)
	}
	days := int(endDt.Sub(startDt).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	sales, err := uc.store.SalesSummaryByItem(start, end)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.store.ListInventory()
	if err != nil {
		return nil, err
	}
	onHand := make(map[string]int, len(inventory))
	for _, it := range inventory {
		onHand[it.Name] = it.Quantity
	}

	recs := make([]dto.ReorderRecommendationDTO, 0, len(sales))
	for _, row := range sales {
		current := onHand[row.ItemName]
		avgDaily := float64(row.TotalQty) / float64(days)
		recommended := int(math.Round(avgDaily*float64(windowDays) - float64(current)))
		if recommended <= 0 {
			continue
		}
		recs = append(recs, dto.ReorderRecommendationDTO{
			ItemName:       row.ItemName,
			CurrentQty:     current,
			AvgDailySales:  avgDaily,
			RecommendedQty: recommended,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RecommendedQty > recs[j].RecommendedQty
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}
