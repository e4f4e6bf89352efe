package linear_regression

import (
	"fmt"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// Config конфигурация процессора линейной регрессии
type Config struct {
	// Количество дней для прогноза
	ForecastDays int
	// Уровень доверия (0.90, 0.95, 0.99)
	ConfidenceLevel float64
	// Минимальное значение r² для признания модели значимой
	MinR2Threshold float64
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		ForecastDays:    14,
		ConfidenceLevel: 0.95,
		MinR2Threshold:  0.30, // 30% объяснённой вариации
	}
}

// WithOverrides возвращает копию конфигурации с заданными параметрами прогноза.
// Нулевые значения не переопределяют текущие.
func (c Config) WithOverrides(forecastDays int, confidenceLevel float64) Config {
	if forecastDays > 0 {
		c.ForecastDays = forecastDays
	}
	if confidenceLevel > 0 {
		c.ConfidenceLevel = confidenceLevel
	}
	return c
}

// RegressionProcessor строит модель тренда прокатов и прогноз по ней
type RegressionProcessor struct {
	logger *utils.ETLLogger
	config Config
}

// NewRegressionProcessor создает новый процессор линейной регрессии
func NewRegressionProcessor(logger *utils.ETLLogger, config Config) *RegressionProcessor {
	return &RegressionProcessor{
		logger: logger,
		config: config,
	}
}

// Process строит модель по ряду прокатов (по возрастанию даты) и генерирует прогноз
func (p *RegressionProcessor) Process(trend []models.TrendPoint) (*ForecastResult, error) {
	startTime := time.Now()

	dataPoints := DataPointsFromTrend(trend)
	regressionResult, err := LinearRegression(dataPoints)
	if err != nil {
		return nil, fmt.Errorf("ошибка при построении модели линейной регрессии: %w", err)
	}

	p.logger.Debug("Результаты модели: a=%.3f, b=%.3f, R=%.3f, R²=%.3f, период %s - %s",
		regressionResult.A, regressionResult.B, regressionResult.R, regressionResult.R2,
		regressionResult.PeriodStart.Format("2006-01-02"),
		regressionResult.PeriodEnd.Format("2006-01-02"))

	lowQuality := regressionResult.R2 < p.config.MinR2Threshold
	if lowQuality {
		p.logger.Debug("Низкое качество модели (R²=%.3f < %.3f). Однако прогноз будет сделан.",
			regressionResult.R2, p.config.MinR2Threshold)
	}

	forecasts := GenerateForecasts(regressionResult, p.config.ForecastDays, p.config.ConfidenceLevel)

	p.logger.Debug("Прогноз на %d дней построен за %v", len(forecasts), time.Since(startTime))
	return &ForecastResult{
		Model:      *regressionResult,
		Forecasts:  forecasts,
		LowQuality: lowQuality,
	}, nil
}
