package analytics

import (
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// scenarioDaily - две строки из описания набора данных
func scenarioDaily() []models.DailyRecord {
	return []models.DailyRecord{
		{Date: day(2011, 1, 1), Count: 100, Registered: 60, WeatherSituation: 1},
		{Date: day(2011, 1, 2), Count: 200, Registered: 150, WeatherSituation: 2},
	}
}

// monthsDaily - январь и февраль 2011, в перемешанном порядке
func monthsDaily() []models.DailyRecord {
	return []models.DailyRecord{
		{Date: day(2011, 2, 3), Count: 400, Registered: 300, WeatherSituation: 1},
		{Date: day(2011, 1, 10), Count: 150, Registered: 100, WeatherSituation: 3},
		{Date: day(2011, 1, 1), Count: 100, Registered: 60, WeatherSituation: 1},
		{Date: day(2011, 2, 1), Count: 250, Registered: 200, WeatherSituation: 2},
	}
}

func combined(rows ...models.DailyRecord) []models.CombinedRecord {
	out := make([]models.CombinedRecord, 0, len(rows)*2)
	for _, d := range rows {
		for hour := 0; hour < 2; hour++ {
			out = append(out, models.CombinedRecord{
				Date:          d.Date,
				Hour:          hour,
				HourCount:     d.Count / 2,
				DayCount:      d.Count,
				DayRegistered: d.Registered,
				DayWeather:    d.WeatherSituation,
			})
		}
	}
	return out
}
