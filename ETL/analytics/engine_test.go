package analytics

import (
	"errors"
	"reflect"
	"testing"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

func newTestEngine() *Engine {
	return NewEngine(utils.NewSilentLogger(), linear_regression.DefaultConfig())
}

func selectionOf(daily []models.DailyRecord) *models.Selection {
	return &models.Selection{
		Period:   models.AllDates(),
		Daily:    daily,
		Combined: combined(daily...),
		Hourly: []models.HourlyRecord{
			{Date: day(2011, 1, 1), Hour: 7, Count: 12},
			{Date: day(2011, 1, 1), Hour: 8, Count: 30},
		},
	}
}

func TestParseDatasetAndView(t *testing.T) {
	for _, s := range []string{"day", "Daily"} {
		if d, err := ParseDataset(s); err != nil || d != DatasetDaily {
			t.Fatalf("%q: ожидался day, получено %q, %v", s, d, err)
		}
	}
	if d, err := ParseDataset("hourly"); err != nil || d != DatasetHourly {
		t.Fatalf("ожидался hour, получено %q, %v", d, err)
	}
	if _, err := ParseDataset("week"); err == nil {
		t.Fatal("ожидалась ошибка для неизвестного набора данных")
	}
	if v, err := ParseView("RFM"); err != nil || v != ViewRFM {
		t.Fatalf("ожидалось rfm, получено %q, %v", v, err)
	}
	if _, err := ParseView("scatter"); err == nil {
		t.Fatal("ожидалась ошибка для неизвестного представления")
	}
}

func TestEngineDispatch(t *testing.T) {
	engine := newTestEngine()
	sel := selectionOf(monthsDaily())

	tests := []struct {
		req   Request
		check func(*Result) bool
	}{
		{Request{Dataset: DatasetDaily, View: ViewTrend}, func(r *Result) bool { return len(r.Trend) == 4 }},
		{Request{Dataset: DatasetDaily, View: ViewWeather}, func(r *Result) bool { return len(r.Weather) == 3 }},
		{Request{Dataset: DatasetDaily, View: ViewRFM}, func(r *Result) bool { return len(r.RFM) == 4 }},
		{Request{Dataset: DatasetDaily, View: ViewForecast}, func(r *Result) bool {
			return r.Forecast != nil && len(r.Forecast.Forecasts) == linear_regression.DefaultConfig().ForecastDays
		}},
		{Request{Dataset: DatasetHourly, View: ViewTrend}, func(r *Result) bool { return len(r.HourlyProfile) == 2 }},
	}

	for _, tt := range tests {
		res, err := engine.Compute(sel, tt.req)
		if err != nil {
			t.Fatalf("%s/%s: неожиданная ошибка: %v", tt.req.Dataset, tt.req.View, err)
		}
		if res.Period != models.AllDatesLabel {
			t.Fatalf("%s/%s: неверный период %q", tt.req.Dataset, tt.req.View, res.Period)
		}
		if !tt.check(res) {
			t.Fatalf("%s/%s: неверный результат %+v", tt.req.Dataset, tt.req.View, res)
		}
	}
}

func TestEngineUnsupportedView(t *testing.T) {
	engine := newTestEngine()
	for _, view := range []View{ViewWeather, ViewRFM, ViewForecast} {
		_, err := engine.Compute(selectionOf(monthsDaily()), Request{Dataset: DatasetHourly, View: view})
		if !errors.Is(err, models.ErrUnsupportedView) {
			t.Fatalf("hour/%s: ожидалась ErrUnsupportedView, получено %v", view, err)
		}
	}

	if got := SupportedViews(DatasetHourly); !reflect.DeepEqual(got, []View{ViewTrend}) {
		t.Fatalf("для почасового набора ожидался только trend, получено %v", got)
	}
	if got := SupportedViews(DatasetDaily); len(got) != 4 {
		t.Fatalf("для дневного набора ожидалось 4 представления, получено %v", got)
	}
}

func TestEngineEmptySelection(t *testing.T) {
	engine := newTestEngine()
	sel := &models.Selection{Period: models.MonthPeriod(2012, 5)}

	_, err := engine.Compute(sel, Request{Dataset: DatasetDaily, View: ViewRFM})
	var empty *models.EmptySelectionError
	if !errors.As(err, &empty) {
		t.Fatalf("ожидалась EmptySelectionError, получено %v", err)
	}
	if empty.Period != "May 2012" {
		t.Fatalf("ожидался период May 2012, получено %q", empty.Period)
	}

	// Для прогноза одного дня недостаточно
	one := selectionOf(scenarioDaily()[:1])
	if _, err := engine.Compute(one, Request{Dataset: DatasetDaily, View: ViewForecast}); !models.IsEmptySelection(err) {
		t.Fatalf("ожидалась EmptySelectionError для одного дня, получено %v", err)
	}
}

func TestEngineIdempotent(t *testing.T) {
	engine := newTestEngine()
	sel := selectionOf(monthsDaily())

	for _, view := range SupportedViews(DatasetDaily) {
		req := Request{Dataset: DatasetDaily, View: view, SortBy: RFMMonetary, Desc: true}
		first, err := engine.Compute(sel, req)
		if err != nil {
			t.Fatalf("%s: неожиданная ошибка: %v", view, err)
		}
		second, err := engine.Compute(sel, req)
		if err != nil {
			t.Fatalf("%s: неожиданная ошибка: %v", view, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: повторный расчет дал другой результат", view)
		}
	}
	// RFM сортирует копию, а не выборку
	if !sel.Daily[0].Date.Equal(day(2011, 2, 3)) {
		t.Fatal("расчет изменил порядок выборки")
	}
}
