package transform

import (
	"fmt"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// Transformer координирует соединение таблиц и фильтрацию по периоду
type Transformer struct {
	logger *utils.ETLLogger
	joiner *Joiner
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger: logger,
		joiner: NewJoiner(logger),
	}
}

// Combine соединяет извлеченные таблицы
func (t *Transformer) Combine(data *models.ExtractedData) *models.CombinedTable {
	return t.joiner.Join(data.Hourly, data.Daily)
}

// Select ограничивает все три отношения снимка выбранным периодом.
// Пустой дневной срез для месяца - EmptySelectionError.
// Пустые почасовой и соединенный срезы допускаются: их проверяет расчет представления.
func (t *Transformer) Select(snapshot *models.Snapshot, sel models.PeriodSelection) (*models.Selection, error) {
	daily, err := FilterDaily(snapshot.Daily.Rows, sel)
	if err != nil {
		return nil, fmt.Errorf("ошибка фильтрации по периоду: %w", err)
	}

	selection := &models.Selection{
		Period:   sel,
		Daily:    daily,
		Hourly:   filterHourly(snapshot.Hourly.Rows, sel),
		Combined: filterCombined(snapshot.Combined.Rows, sel),
	}

	t.logger.Debug("Период %s: %d дневных, %d почасовых, %d соединенных строк",
		sel.Label(), len(selection.Daily), len(selection.Hourly), len(selection.Combined))
	return selection, nil
}
