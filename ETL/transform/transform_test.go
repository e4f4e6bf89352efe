package transform

import (
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleDaily - дневная таблица за январь и февраль 2011
func sampleDaily() *models.DailyTable {
	return &models.DailyTable{
		Columns: []string{"instant", "dteday", "season", "weathersit", "registered", "cnt"},
		Rows: []models.DailyRecord{
			{Date: day(2011, 1, 1), Count: 100, Registered: 60, WeatherSituation: 1, Covariates: map[string]string{"instant": "1", "season": "1"}},
			{Date: day(2011, 1, 2), Count: 200, Registered: 150, WeatherSituation: 2, Covariates: map[string]string{"instant": "2", "season": "1"}},
			{Date: day(2011, 2, 1), Count: 300, Registered: 200, WeatherSituation: 1, Covariates: map[string]string{"instant": "3", "season": "1"}},
		},
	}
}

// sampleHourly - почасовая таблица; 2011-03-01 не имеет дневной пары
func sampleHourly() *models.HourlyTable {
	return &models.HourlyTable{
		Columns: []string{"instant", "dteday", "hr", "weathersit", "cnt"},
		Rows: []models.HourlyRecord{
			{Date: day(2011, 1, 1), Hour: 0, Count: 10, Covariates: map[string]string{"instant": "1", "weathersit": "1"}},
			{Date: day(2011, 1, 1), Hour: 1, Count: 20, Covariates: map[string]string{"instant": "2", "weathersit": "2"}},
			{Date: day(2011, 2, 1), Hour: 5, Count: 7, Covariates: map[string]string{"instant": "3", "weathersit": "3"}},
			{Date: day(2011, 3, 1), Hour: 0, Count: 4, Covariates: map[string]string{"instant": "4", "weathersit": "1"}},
		},
	}
}
