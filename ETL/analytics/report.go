package analytics

import (
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// PeriodSummary - сводка прокатов за период
type PeriodSummary struct {
	Period         string            `json:"period"`
	Days           int               `json:"days"`
	Total          int               `json:"total"`
	MeanPerDay     float64           `json:"meanPerDay"`
	RegisteredRate float64           `json:"registeredRate"` // Доля прокатов зарегистрированных пользователей
	PeakDay        models.TrendPoint `json:"peakDay"`
	PeakHour       int               `json:"peakHour"` // -1, если почасовых данных нет
	WeatherDays    map[int]int       `json:"weatherDays"`
}

// SummarizePeriod считает сводку по выборке
func SummarizePeriod(sel *models.Selection) (PeriodSummary, error) {
	trend, err := Trend(sel.Daily)
	if err != nil {
		return PeriodSummary{}, err
	}

	summary := PeriodSummary{
		Period:      sel.Period.Label(),
		Days:        len(trend),
		PeakDay:     trend[0],
		PeakHour:    -1,
		WeatherDays: make(map[int]int),
	}

	registered := 0
	for _, rec := range sel.Daily {
		summary.Total += rec.Count
		registered += rec.Registered
		summary.WeatherDays[rec.WeatherSituation]++
	}
	for _, p := range trend {
		if p.Count > summary.PeakDay.Count {
			summary.PeakDay = p
		}
	}
	summary.MeanPerDay = float64(summary.Total) / float64(summary.Days)
	if summary.Total > 0 {
		summary.RegisteredRate = float64(registered) / float64(summary.Total)
	}

	if profile, err := HourlyProfile(sel.Hourly); err == nil {
		best := profile[0]
		for _, p := range profile[1:] {
			if p.Mean > best.Mean {
				best = p
			}
		}
		summary.PeakHour = best.Hour
	}

	return summary, nil
}
