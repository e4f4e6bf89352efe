package linear_regression

import (
	"time"
)

// DataPoint представляет точку данных для линейной регрессии
type DataPoint struct {
	X    float64   // Порядковый номер дня (относительно первой даты выборки)
	Y    float64   // Количество прокатов за день
	Date time.Time // Фактическая дата
}

// RegressionResult содержит результаты линейной регрессии
type RegressionResult struct {
	A           float64     `json:"a"`  // Коэффициент наклона (прокатов в день)
	B           float64     `json:"b"`  // Сдвиг
	R           float64     `json:"r"`  // Коэффициент корреляции Пирсона
	R2          float64     `json:"r2"` // Коэффициент детерминации
	PeriodStart time.Time   `json:"periodStart"`
	PeriodEnd   time.Time   `json:"periodEnd"`
	DataPoints  []DataPoint `json:"-"`
}

// ForecastPoint представляет точку прогноза
type ForecastPoint struct {
	Date          time.Time `json:"date"`
	ForecastValue float64   `json:"forecast"`
	CILower       float64   `json:"ciLower"`
	CIUpper       float64   `json:"ciUpper"`
}

// ForecastResult - модель и прогноз по ней
type ForecastResult struct {
	Model      RegressionResult `json:"model"`
	Forecasts  []ForecastPoint  `json:"forecasts"`
	LowQuality bool             `json:"lowQuality"` // R² ниже порога
}
