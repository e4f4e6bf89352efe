package models

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  PeriodSelection
	}{
		{"", AllDates()},
		{"all", AllDates()},
		{"All dates", AllDates()},
		{"2011-01", MonthPeriod(2011, time.January)},
		{"January 2011", MonthPeriod(2011, time.January)},
		{"122012", MonthPeriod(2012, time.December)},
		{" February 2012 ", MonthPeriod(2012, time.February)},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.input)
		if err != nil {
			t.Fatalf("%q: неожиданная ошибка: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("%q: ожидалось %+v, получено %+v", tt.input, tt.want, got)
		}
	}

	for _, bad := range []string{"2011-13", "Jan 2011", "yesterday"} {
		if _, err := ParsePeriod(bad); err == nil {
			t.Fatalf("%q: ожидалась ошибка", bad)
		}
	}
}

func TestPeriodLabelAndKey(t *testing.T) {
	p := MonthPeriod(2011, time.March)
	if p.Label() != "March 2011" || p.Key() != "2011-03" {
		t.Fatalf("неверные подпись/ключ: %q, %q", p.Label(), p.Key())
	}
	if AllDates().Label() != AllDatesLabel || AllDates().Key() != "all" {
		t.Fatal("неверные подпись/ключ для всех дат")
	}
	if !p.Contains(time.Date(2011, 3, 31, 0, 0, 0, 0, time.UTC)) || p.Contains(time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("неверная проверка принадлежности периоду")
	}
}

func TestEmptySelectionError(t *testing.T) {
	err := fmt.Errorf("обертка: %w", &EmptySelectionError{Period: "May 2012", What: "RFM"})
	if !IsEmptySelection(err) {
		t.Fatal("EmptySelectionError должна находиться через цепочку обертки")
	}
	if IsEmptySelection(errors.New("другая ошибка")) {
		t.Fatal("посторонняя ошибка не должна считаться пустой выборкой")
	}
}

func TestLoadStateMonitorRecord(t *testing.T) {
	var m LoadStateMonitor
	m.Record(LoadRunLog{Status: LoadStatusSuccess, SnapshotID: "a", ExecutionTimeSeconds: 2})
	m.Record(LoadRunLog{Status: LoadStatusFailed, ErrorMessage: "нет файла", ExecutionTimeSeconds: 4})

	if m.TotalSuccessfulRuns != 1 || m.TotalFailedRuns != 1 || m.AvgExecutionTimeSeconds != 3 {
		t.Fatalf("неверная статистика: %+v", m)
	}
	if m.LastSuccessfulRun.SnapshotID != "a" || m.LastFailedRun.ErrorMessage != "нет файла" {
		t.Fatalf("неверные последние запуски: %+v", m)
	}
}
