package dto

import "github.com/shopspring/decimal"

// DateRangeDTO rango de fechas inclusivo resuelto a partir de una clave de
// período, terminando "hoy".
type DateRangeDTO struct {
	StartDate string // formato 2006-01-02
	EndDate   string
	Days      int
}

// TopItemDTO artículo del ranking de más vendidos.
type TopItemDTO struct {
	ItemName    string
	TotalQty    int
	TotalAmount decimal.Decimal
}

// ReorderRecommendationDTO sugerencia de reposición derivada de la demanda
// diaria promedio reciente (extrapolación lineal, no un pronóstico
// estadístico).
type ReorderRecommendationDTO struct {
	ItemName       string
	CurrentQty     int
	AvgDailySales  float64
	RecommendedQty int
}
