package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// RFMField - поле для сортировки строк RFM
type RFMField string

const (
	RFMRecency   RFMField = "recency"
	RFMFrequency RFMField = "frequency"
	RFMMonetary  RFMField = "monetary"
)

// ParseRFMField разбирает имя поля сортировки. Пустая строка - без сортировки.
func ParseRFMField(s string) (RFMField, error) {
	switch f := RFMField(strings.ToLower(strings.TrimSpace(s))); f {
	case "", RFMRecency, RFMFrequency, RFMMonetary:
		return f, nil
	default:
		return "", fmt.Errorf("неизвестное поле сортировки RFM %q", s)
	}
}

// RFM считает показатели для каждого дня выборки.
// Recency отсчитывается от максимальной даты переданного набора,
// поэтому при смене периода опорная дата смещается вместе с ним.
func RFM(daily []models.DailyRecord) ([]models.RFMRow, error) {
	if len(daily) == 0 {
		return nil, &models.EmptySelectionError{What: "RFM"}
	}

	maxDate := daily[0].Date
	for _, rec := range daily[1:] {
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
	}

	rows := make([]models.RFMRow, len(daily))
	for i, rec := range daily {
		rows[i] = models.RFMRow{
			Date:      rec.Date,
			Recency:   daysBetween(rec.Date, maxDate),
			Frequency: rec.Count,
			Monetary:  int64(rec.Count) * int64(rec.Registered),
		}
	}
	return rows, nil
}

// SortRFM сортирует строки на месте по выбранному полю.
// Равные значения сохраняют исходный порядок.
func SortRFM(rows []models.RFMRow, field RFMField, desc bool) {
	var less func(a, b models.RFMRow) bool
	switch field {
	case RFMRecency:
		less = func(a, b models.RFMRow) bool { return a.Recency < b.Recency }
	case RFMFrequency:
		less = func(a, b models.RFMRow) bool { return a.Frequency < b.Frequency }
	case RFMMonetary:
		less = func(a, b models.RFMRow) bool { return a.Monetary < b.Monetary }
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// daysBetween - число календарных дней от from до to
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
