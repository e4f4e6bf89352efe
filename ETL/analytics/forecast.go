package analytics

import (
	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// Forecast строит линейную модель дневных прокатов и прогноз по ней
func Forecast(daily []models.DailyRecord, processor *linear_regression.RegressionProcessor) (*linear_regression.ForecastResult, error) {
	trend, err := Trend(daily)
	if err != nil {
		return nil, err
	}
	if len(trend) < 2 {
		return nil, &models.EmptySelectionError{What: "прогноз: нужно минимум 2 дня"}
	}
	return processor.Process(trend)
}
