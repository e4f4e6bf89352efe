package transform

import (
	"strconv"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

const dateKeyLayout = "2006-01-02"

// Joiner соединяет почасовую и дневную таблицы по дате
type Joiner struct {
	logger *utils.ETLLogger
}

// NewJoiner создает новый экземпляр Joiner
func NewJoiner(logger *utils.ETLLogger) *Joiner {
	return &Joiner{logger: logger}
}

// Join выполняет соединение и логирует потерянные строки
func (j *Joiner) Join(hourly *models.HourlyTable, daily *models.DailyTable) *models.CombinedTable {
	combined := JoinTables(hourly, daily)
	if dropped := len(hourly.Rows) - len(combined.Rows); dropped > 0 {
		j.logger.Debug("Соединение: %d почасовых строк без дневной пары отброшено", dropped)
	}
	j.logger.Debug("Соединение: %d строк, %d колонок", len(combined.Rows), len(combined.Columns))
	return combined
}

// JoinTables выполняет внутреннее соединение по dteday.
// Строки без пары в другой таблице не попадают в результат.
// Колонки, которые есть в обеих таблицах (кроме dteday), получают суффиксы _hour и _day.
// Порядок строк - порядок почасовой таблицы.
func JoinTables(hourly *models.HourlyTable, daily *models.DailyTable) *models.CombinedTable {
	hourNames, dayNames := combinedNames(hourly.Columns, daily.Columns)

	columns := make([]string, 0, len(hourly.Columns)+len(daily.Columns))
	for _, col := range hourly.Columns {
		columns = append(columns, hourNames[col])
	}
	for _, col := range daily.Columns {
		if col == models.ColumnDate {
			continue
		}
		columns = append(columns, dayNames[col])
	}

	// Дата в дневной таблице уникальна, поэтому каждой почасовой строке соответствует не более одной дневной
	dayByDate := make(map[string]*models.DailyRecord, len(daily.Rows))
	for i := range daily.Rows {
		dayByDate[daily.Rows[i].Date.Format(dateKeyLayout)] = &daily.Rows[i]
	}

	rows := make([]models.CombinedRecord, 0, len(hourly.Rows))
	for i := range hourly.Rows {
		h := &hourly.Rows[i]
		d, ok := dayByDate[h.Date.Format(dateKeyLayout)]
		if !ok {
			continue
		}

		values := make(map[string]string, len(columns))
		for _, col := range hourly.Columns {
			values[hourNames[col]] = hourlyValue(h, col)
		}
		for _, col := range daily.Columns {
			if col == models.ColumnDate {
				continue
			}
			values[dayNames[col]] = dailyValue(d, col)
		}

		rows = append(rows, models.CombinedRecord{
			Date:          h.Date,
			Hour:          h.Hour,
			HourCount:     h.Count,
			DayCount:      d.Count,
			DayRegistered: d.Registered,
			DayWeather:    d.WeatherSituation,
			Values:        values,
		})
	}

	return &models.CombinedTable{Columns: columns, Rows: rows}
}

// combinedNames вычисляет имена колонок результата для каждой таблицы
func combinedNames(hourCols, dayCols []string) (map[string]string, map[string]string) {
	inDay := make(map[string]bool, len(dayCols))
	for _, col := range dayCols {
		inDay[col] = true
	}
	inHour := make(map[string]bool, len(hourCols))
	for _, col := range hourCols {
		inHour[col] = true
	}

	hourNames := make(map[string]string, len(hourCols))
	for _, col := range hourCols {
		if col != models.ColumnDate && inDay[col] {
			hourNames[col] = col + models.HourSuffix
		} else {
			hourNames[col] = col
		}
	}
	dayNames := make(map[string]string, len(dayCols))
	for _, col := range dayCols {
		if col != models.ColumnDate && inHour[col] {
			dayNames[col] = col + models.DaySuffix
		} else {
			dayNames[col] = col
		}
	}
	return hourNames, dayNames
}

func hourlyValue(h *models.HourlyRecord, col string) string {
	switch col {
	case models.ColumnDate:
		return h.Date.Format(dateKeyLayout)
	case models.ColumnHour:
		return strconv.Itoa(h.Hour)
	case models.ColumnCount:
		return strconv.Itoa(h.Count)
	default:
		return h.Covariates[col]
	}
}

func dailyValue(d *models.DailyRecord, col string) string {
	switch col {
	case models.ColumnCount:
		return strconv.Itoa(d.Count)
	case models.ColumnRegistered:
		return strconv.Itoa(d.Registered)
	case models.ColumnWeather:
		return strconv.Itoa(d.WeatherSituation)
	default:
		return d.Covariates[col]
	}
}
