package extractors

import (
	"context"
	"errors"
	"fmt"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

var dailyRequired = []string{models.ColumnDate, models.ColumnCount, models.ColumnRegistered, models.ColumnWeather}

var (
	errRegisteredExceedsCount = errors.New("registered больше cnt")
	errDuplicateDate          = errors.New("дата повторяется")
)

// DailyExtractor извлекает дневную таблицу
type DailyExtractor struct {
	source RowSource
	logger *utils.ETLLogger
}

// NewDailyExtractor создает новый экземпляр DailyExtractor
func NewDailyExtractor(source RowSource, logger *utils.ETLLogger) *DailyExtractor {
	return &DailyExtractor{
		source: source,
		logger: logger,
	}
}

// ExtractDaily читает и разбирает дневную таблицу
func (e *DailyExtractor) ExtractDaily(ctx context.Context) (*models.DailyTable, error) {
	e.logger.Debug("Начало извлечения дневной таблицы из %s", e.source.Name())

	header, rows, err := e.source.ReadRows(ctx)
	if err != nil {
		return nil, err
	}

	table, err := ParseDaily(e.source.Name(), header, rows)
	if err != nil {
		e.logger.Error("Ошибка разбора дневной таблицы: %v", err)
		return nil, err
	}

	e.logger.Debug("Извлечено %d дневных строк", len(table.Rows))
	return table, nil
}

// ParseDaily разбирает строки дневной таблицы.
// Любая ошибка строки прерывает разбор целиком: частичная таблица не возвращается.
func ParseDaily(source string, header []string, rows [][]string) (*models.DailyTable, error) {
	index := columnIndex(header)
	if err := requireColumns(source, index, dailyRequired); err != nil {
		return nil, err
	}
	required := toSet(dailyRequired)

	table := &models.DailyTable{
		Columns: trimHeader(header),
		Rows:    make([]models.DailyRecord, 0, len(rows)),
	}
	seen := make(map[string]int, len(rows))

	for i, values := range rows {
		r := rowReader{source: source, row: i, index: index, values: values}

		date, err := r.date(models.ColumnDate)
		if err != nil {
			return nil, err
		}
		key := date.Format("2006-01-02")
		if first, dup := seen[key]; dup {
			return nil, &models.MalformedRecordError{
				Source: source, Row: i, Field: models.ColumnDate, Value: key,
				Err: fmt.Errorf("%w (впервые в строке %d)", errDuplicateDate, first),
			}
		}
		seen[key] = i

		count, err := r.count(models.ColumnCount)
		if err != nil {
			return nil, err
		}
		registered, err := r.count(models.ColumnRegistered)
		if err != nil {
			return nil, err
		}
		if registered > count {
			return nil, &models.MalformedRecordError{
				Source: source, Row: i, Field: models.ColumnRegistered,
				Value: fmt.Sprint(registered), Err: errRegisteredExceedsCount,
			}
		}
		weather, err := r.count(models.ColumnWeather)
		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, models.DailyRecord{
			Date:             date,
			Count:            count,
			Registered:       registered,
			WeatherSituation: weather,
			Covariates:       r.covariates(header, required),
		})
	}

	return table, nil
}
