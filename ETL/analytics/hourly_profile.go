package analytics

import (
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// HourlyProfile агрегирует почасовые прокаты по часу суток:
// число наблюдений, среднее, минимум, максимум и сумма cnt.
// В результат попадают только часы, для которых есть данные.
func HourlyProfile(hourly []models.HourlyRecord) ([]models.HourlyProfilePoint, error) {
	if len(hourly) == 0 {
		return nil, &models.EmptySelectionError{What: "прокаты по часам"}
	}

	var buckets [24]models.HourlyProfilePoint
	for _, rec := range hourly {
		if rec.Hour < 0 || rec.Hour >= len(buckets) {
			continue
		}
		b := &buckets[rec.Hour]
		if b.N == 0 || rec.Count < b.Min {
			b.Min = rec.Count
		}
		if rec.Count > b.Max {
			b.Max = rec.Count
		}
		b.N++
		b.Total += rec.Count
	}

	profile := make([]models.HourlyProfilePoint, 0, 24)
	for hour, b := range buckets {
		if b.N == 0 {
			continue
		}
		b.Hour = hour
		b.Mean = float64(b.Total) / float64(b.N)
		profile = append(profile, b)
	}
	return profile, nil
}
