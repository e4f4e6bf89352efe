package analytics

import (
	"sort"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// WeatherAggregate группирует строки соединения по дневному коду погоды
// и собирает распределение дневного cnt в каждой группе.
// Каждая строка попадает ровно в одну группу; группы упорядочены по коду.
func WeatherAggregate(combined []models.CombinedRecord) ([]models.WeatherGroup, error) {
	if len(combined) == 0 {
		return nil, &models.EmptySelectionError{What: "погода и прокаты"}
	}

	counts := make(map[int][]int)
	for _, rec := range combined {
		counts[rec.DayWeather] = append(counts[rec.DayWeather], rec.DayCount)
	}

	codes := make([]int, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	groups := make([]models.WeatherGroup, 0, len(codes))
	for _, code := range codes {
		groups = append(groups, models.WeatherGroup{
			Code:    code,
			Label:   models.WeatherLabel(code),
			Counts:  counts[code],
			Summary: Summarize(counts[code]),
		})
	}
	return groups, nil
}
