package models

import (
	"fmt"
	"strings"
	"time"
)

// AllDatesLabel - подпись варианта "без фильтра"
const AllDatesLabel = "All dates"

const (
	allDatesKey  = "all"
	periodKey    = "2006-01"
	periodLabel  = "January 2006"
	periodMMYYYY = "012006"
)

// PeriodSelection - выбранный период: все даты или конкретный месяц
type PeriodSelection struct {
	All   bool
	Year  int
	Month time.Month
}

// AllDates возвращает выбор "все даты"
func AllDates() PeriodSelection {
	return PeriodSelection{All: true}
}

// MonthPeriod возвращает выбор конкретного месяца
func MonthPeriod(year int, month time.Month) PeriodSelection {
	return PeriodSelection{Year: year, Month: month}
}

// Label возвращает человекочитаемую подпись ("January 2011")
func (p PeriodSelection) Label() string {
	if p.All {
		return AllDatesLabel
	}
	return p.firstDay().Format(periodLabel)
}

// Key возвращает машинный ключ периода ("2011-01" или "all")
func (p PeriodSelection) Key() string {
	if p.All {
		return allDatesKey
	}
	return p.firstDay().Format(periodKey)
}

// Contains проверяет, попадает ли дата в период
func (p PeriodSelection) Contains(t time.Time) bool {
	if p.All {
		return true
	}
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p PeriodSelection) firstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// ParsePeriod разбирает ключ или подпись периода.
// Принимает "all"/"All dates"/"", "2011-01", "January 2011" и "012011".
func ParsePeriod(s string) (PeriodSelection, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, allDatesKey) || strings.EqualFold(s, AllDatesLabel) {
		return AllDates(), nil
	}

	for _, layout := range []string{periodKey, periodLabel, periodMMYYYY} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthPeriod(t.Year(), t.Month()), nil
		}
	}
	return PeriodSelection{}, fmt.Errorf("некорректный период %q (ожидается YYYY-MM, \"Month YYYY\" или MMYYYY)", s)
}

// PeriodOption - вариант выбора периода для интерфейса
type PeriodOption struct {
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	Selection PeriodSelection `json:"-"`
}
