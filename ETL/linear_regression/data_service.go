package linear_regression

import (
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// DataPointsFromTrend преобразует ряд прокатов по дням в точки регрессии.
// X - число дней от первой даты ряда; ряд должен быть отсортирован по дате.
func DataPointsFromTrend(trend []models.TrendPoint) []DataPoint {
	if len(trend) == 0 {
		return nil
	}

	baseDate := trend[0].Date
	dataPoints := make([]DataPoint, 0, len(trend))
	for _, p := range trend {
		dataPoints = append(dataPoints, DataPoint{
			X:    p.Date.Sub(baseDate).Hours() / 24,
			Y:    float64(p.Count),
			Date: p.Date,
		})
	}
	return dataPoints
}
