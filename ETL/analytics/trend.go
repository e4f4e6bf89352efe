package analytics

import (
	"sort"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// Trend возвращает ряд (дата, cnt) по возрастанию даты.
// Значения не сглаживаются; входной срез не изменяется.
func Trend(daily []models.DailyRecord) ([]models.TrendPoint, error) {
	if len(daily) == 0 {
		return nil, &models.EmptySelectionError{What: "тренд по дням"}
	}

	points := make([]models.TrendPoint, len(daily))
	for i, rec := range daily {
		points[i] = models.TrendPoint{Date: rec.Date, Count: rec.Count}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}
