package transform

import (
	"testing"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

func TestJoinTablesInnerJoin(t *testing.T) {
	daily, hourly := sampleDaily(), sampleHourly()
	combined := JoinTables(hourly, daily)

	// 2011-03-01 нет в дневной таблице, 2011-01-02 нет в почасовой
	if len(combined.Rows) != 3 {
		t.Fatalf("ожидалось 3 строки, получено %d", len(combined.Rows))
	}

	dailyDates := make(map[string]bool)
	for _, r := range daily.Rows {
		dailyDates[r.Date.Format(dateKeyLayout)] = true
	}
	hourlyDates := make(map[string]bool)
	for _, r := range hourly.Rows {
		hourlyDates[r.Date.Format(dateKeyLayout)] = true
	}
	for _, r := range combined.Rows {
		key := r.Date.Format(dateKeyLayout)
		if !dailyDates[key] || !hourlyDates[key] {
			t.Fatalf("дата %s отсутствует в одной из таблиц", key)
		}
	}

	second := combined.Rows[1]
	if second.HourCount != 20 || second.DayCount != 100 || second.DayWeather != 1 || second.DayRegistered != 60 {
		t.Fatalf("неверные поля строки: %+v", second)
	}
}

func TestJoinTablesColumnSuffixes(t *testing.T) {
	combined := JoinTables(sampleHourly(), sampleDaily())

	want := []string{
		"instant_hour", "dteday", "hr", "weathersit_hour", "cnt_hour",
		"instant_day", "season", "weathersit_day", "registered", "cnt_day",
	}
	if len(combined.Columns) != len(want) {
		t.Fatalf("неверные колонки: %v", combined.Columns)
	}
	for i, col := range want {
		if combined.Columns[i] != col {
			t.Fatalf("колонка %d: ожидалось %q, получено %q", i, col, combined.Columns[i])
		}
	}

	values := combined.Rows[1].Values
	checks := map[string]string{
		"dteday":          "2011-01-01",
		"hr":              "1",
		"cnt_hour":        "20",
		"cnt_day":         "100",
		"weathersit_hour": "2",
		"weathersit_day":  "1",
		"instant_hour":    "2",
		"instant_day":     "1",
		"season":          "1",
		"registered":      "60",
	}
	for col, v := range checks {
		if values[col] != v {
			t.Fatalf("колонка %s: ожидалось %q, получено %q", col, v, values[col])
		}
	}
}

func TestJoinTablesNoMatches(t *testing.T) {
	hourly := &models.HourlyTable{
		Columns: []string{"dteday", "hr", "cnt"},
		Rows:    []models.HourlyRecord{{Date: day(2012, 1, 1), Hour: 0, Count: 1}},
	}
	combined := JoinTables(hourly, sampleDaily())
	if len(combined.Rows) != 0 {
		t.Fatalf("ожидался пустой результат, получено %d строк", len(combined.Rows))
	}
}
