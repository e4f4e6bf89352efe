package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// Extractor координирует извлечение дневной и почасовой таблиц
type Extractor struct {
	logger          *utils.ETLLogger
	dailyExtractor  *DailyExtractor
	hourlyExtractor *HourlyExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(daySource, hourSource RowSource, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		logger:          logger,
		dailyExtractor:  NewDailyExtractor(daySource, logger),
		hourlyExtractor: NewHourlyExtractor(hourSource, logger),
	}
}

// Extract читает обе таблицы. Ошибка любой из них прерывает загрузку.
func (e *Extractor) Extract(ctx context.Context) (*models.ExtractedData, error) {
	startTime := time.Now()

	var extractedData models.ExtractedData
	var err error

	// Извлекаем дневную таблицу
	extractedData.Daily, err = e.dailyExtractor.ExtractDaily(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка извлечения дневной таблицы: %w", err)
	}

	// Извлекаем почасовую таблицу
	extractedData.Hourly, err = e.hourlyExtractor.ExtractHourly(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка извлечения почасовой таблицы: %w", err)
	}

	extractedData.ExtractedAt = time.Now()
	e.logger.Debug("Извлечение завершено за %v", time.Since(startTime))

	return &extractedData, nil
}

// SourceNames возвращает имена источников дневной и почасовой таблиц
func (e *Extractor) SourceNames() (day, hour string) {
	return e.dailyExtractor.source.Name(), e.hourlyExtractor.source.Name()
}
