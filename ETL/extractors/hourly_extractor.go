package extractors

import (
	"context"
	"fmt"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

var hourlyRequired = []string{models.ColumnDate, models.ColumnHour, models.ColumnCount}

// HourlyExtractor извлекает почасовую таблицу
type HourlyExtractor struct {
	source RowSource
	logger *utils.ETLLogger
}

// NewHourlyExtractor создает новый экземпляр HourlyExtractor
func NewHourlyExtractor(source RowSource, logger *utils.ETLLogger) *HourlyExtractor {
	return &HourlyExtractor{
		source: source,
		logger: logger,
	}
}

// ExtractHourly читает и разбирает почасовую таблицу
func (e *HourlyExtractor) ExtractHourly(ctx context.Context) (*models.HourlyTable, error) {
	e.logger.Debug("Начало извлечения почасовой таблицы из %s", e.source.Name())

	header, rows, err := e.source.ReadRows(ctx)
	if err != nil {
		return nil, err
	}

	table, err := ParseHourly(e.source.Name(), header, rows)
	if err != nil {
		e.logger.Error("Ошибка разбора почасовой таблицы: %v", err)
		return nil, err
	}

	e.logger.Debug("Извлечено %d почасовых строк", len(table.Rows))
	return table, nil
}

// ParseHourly разбирает строки почасовой таблицы
func ParseHourly(source string, header []string, rows [][]string) (*models.HourlyTable, error) {
	index := columnIndex(header)
	if err := requireColumns(source, index, hourlyRequired); err != nil {
		return nil, err
	}
	required := toSet(hourlyRequired)

	table := &models.HourlyTable{
		Columns: trimHeader(header),
		Rows:    make([]models.HourlyRecord, 0, len(rows)),
	}

	for i, values := range rows {
		r := rowReader{source: source, row: i, index: index, values: values}

		date, err := r.date(models.ColumnDate)
		if err != nil {
			return nil, err
		}
		hour, err := r.count(models.ColumnHour)
		if err != nil {
			return nil, err
		}
		if hour > 23 {
			return nil, &models.MalformedRecordError{
				Source: source, Row: i, Field: models.ColumnHour,
				Value: fmt.Sprint(hour), Err: fmt.Errorf("час вне диапазона 0-23"),
			}
		}
		count, err := r.count(models.ColumnCount)
		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, models.HourlyRecord{
			Date:       date,
			Hour:       hour,
			Count:      count,
			Covariates: r.covariates(header, required),
		})
	}

	return table, nil
}
