package extractors

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

var (
	errMissingValue = errors.New("значение отсутствует")
	errNegative     = errors.New("значение не может быть отрицательным")
)

// dateLayouts - допустимые форматы dteday
var dateLayouts = []string{"2006-01-02", "2006/01/02", "1/2/2006"}

// columnIndex строит соответствие имени колонки ее позиции
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// requireColumns проверяет наличие обязательных колонок в заголовке
func requireColumns(source string, index map[string]int, required []string) error {
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return &models.MalformedRecordError{Source: source, Row: -1, Field: col, Err: errMissingValue}
		}
	}
	return nil
}

// rowReader извлекает типизированные поля одной строки
type rowReader struct {
	source string
	row    int
	index  map[string]int
	values []string
}

func (r rowReader) str(field string) (string, error) {
	i := r.index[field]
	if i >= len(r.values) || strings.TrimSpace(r.values[i]) == "" {
		return "", &models.MalformedRecordError{Source: r.source, Row: r.row, Field: field, Err: errMissingValue}
	}
	return strings.TrimSpace(r.values[i]), nil
}

// count разбирает неотрицательное целое
func (r rowReader) count(field string) (int, error) {
	raw, err := r.str(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.MalformedRecordError{Source: r.source, Row: r.row, Field: field, Value: raw, Err: err}
	}
	if n < 0 {
		return 0, &models.MalformedRecordError{Source: r.source, Row: r.row, Field: field, Value: raw, Err: errNegative}
	}
	return n, nil
}

// date разбирает дату в одном из допустимых форматов
func (r rowReader) date(field string) (time.Time, error) {
	raw, err := r.str(field)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &models.InvalidDateError{Source: r.source, Row: r.row, Value: raw}
}

// covariates собирает все необязательные колонки строки
func (r rowReader) covariates(header []string, required map[string]bool) map[string]string {
	extra := make(map[string]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if required[name] {
			continue
		}
		if i < len(r.values) {
			extra[name] = strings.TrimSpace(r.values[i])
		} else {
			extra[name] = ""
		}
	}
	return extra
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
