package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedView возвращается, если для набора данных нет такого представления
var ErrUnsupportedView = errors.New("представление не поддерживается для выбранного набора данных")

// MalformedRecordError - строка источника не прошла разбор.
// Row - индекс строки данных (без заголовка), -1 для ошибок заголовка.
// Field пустой, если строку не удалось разобрать как CSV.
type MalformedRecordError struct {
	Source string
	Row    int
	Field  string
	Value  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: в заголовке нет обязательной колонки %q", e.Source, e.Field)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: строка %d (%s): %v", e.Source, e.Row, e.Value, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: строка %d, поле %q (%q): %v", e.Source, e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: строка %d, поле %q: некорректное значение %q", e.Source, e.Row, e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// InvalidDateError - значение даты не удалось разобрать
type InvalidDateError struct {
	Source string
	Row    int
	Value  string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: строка %d: некорректная дата %q", e.Source, e.Row, e.Value)
}

// EmptySelectionError - фильтр или агрегация не получили ни одной строки.
// Ошибка восстановимая: вызывающая сторона должна показать предупреждение.
type EmptySelectionError struct {
	Period string
	What   string
}

func (e *EmptySelectionError) Error() string {
	if e.Period == "" {
		return fmt.Sprintf("нет данных для расчета (%s)", e.What)
	}
	return fmt.Sprintf("нет данных за период %s (%s)", e.Period, e.What)
}

// IsEmptySelection проверяет, является ли ошибка EmptySelectionError
func IsEmptySelection(err error) bool {
	var empty *EmptySelectionError
	return errors.As(err, &empty)
}
