package transform

import (
	"sort"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// PeriodOptions возвращает варианты выбора периода: "All dates" и все месяцы,
// которые встречаются в дневной таблице, по возрастанию
func PeriodOptions(daily []models.DailyRecord) []models.PeriodOption {
	seen := make(map[models.PeriodSelection]bool)
	months := make([]models.PeriodSelection, 0)
	for _, rec := range daily {
		sel := models.MonthPeriod(rec.Date.Year(), rec.Date.Month())
		if !seen[sel] {
			seen[sel] = true
			months = append(months, sel)
		}
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	options := make([]models.PeriodOption, 0, len(months)+1)
	options = append(options, newOption(models.AllDates()))
	for _, sel := range months {
		options = append(options, newOption(sel))
	}
	return options
}

func newOption(sel models.PeriodSelection) models.PeriodOption {
	return models.PeriodOption{Key: sel.Key(), Label: sel.Label(), Selection: sel}
}

// FilterDaily ограничивает дневную таблицу периодом.
// Для "все даты" возвращается исходный срез без копирования.
// Пустой результат для месяца - EmptySelectionError.
func FilterDaily(rows []models.DailyRecord, sel models.PeriodSelection) ([]models.DailyRecord, error) {
	return requireRows(filterByDate(rows, sel, func(r models.DailyRecord) time.Time { return r.Date }), sel, "дневная таблица")
}

// FilterHourly ограничивает почасовую таблицу периодом
func FilterHourly(rows []models.HourlyRecord, sel models.PeriodSelection) ([]models.HourlyRecord, error) {
	return requireRows(filterHourly(rows, sel), sel, "почасовая таблица")
}

// FilterCombined ограничивает результат соединения периодом
func FilterCombined(rows []models.CombinedRecord, sel models.PeriodSelection) ([]models.CombinedRecord, error) {
	return requireRows(filterCombined(rows, sel), sel, "соединенная таблица")
}

func filterHourly(rows []models.HourlyRecord, sel models.PeriodSelection) []models.HourlyRecord {
	return filterByDate(rows, sel, func(r models.HourlyRecord) time.Time { return r.Date })
}

func filterCombined(rows []models.CombinedRecord, sel models.PeriodSelection) []models.CombinedRecord {
	return filterByDate(rows, sel, func(r models.CombinedRecord) time.Time { return r.Date })
}

func filterByDate[T any](rows []T, sel models.PeriodSelection, date func(T) time.Time) []T {
	if sel.All {
		return rows
	}
	filtered := make([]T, 0)
	for _, row := range rows {
		if sel.Contains(date(row)) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func requireRows[T any](rows []T, sel models.PeriodSelection, what string) ([]T, error) {
	if !sel.All && len(rows) == 0 {
		return nil, &models.EmptySelectionError{Period: sel.Label(), What: what}
	}
	return rows, nil
}
