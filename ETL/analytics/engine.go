package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// Dataset - выбранный набор данных
type Dataset string

const (
	DatasetDaily  Dataset = "day"
	DatasetHourly Dataset = "hour"
)

// View - выбранное представление
type View string

const (
	ViewTrend    View = "trend"
	ViewWeather  View = "weather"
	ViewRFM      View = "rfm"
	ViewForecast View = "forecast"
)

var allViews = []View{ViewTrend, ViewWeather, ViewRFM, ViewForecast}

// ParseDataset разбирает имя набора данных ("day"/"daily", "hour"/"hourly")
func ParseDataset(s string) (Dataset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return DatasetDaily, nil
	case "hour", "hourly":
		return DatasetHourly, nil
	default:
		return "", fmt.Errorf("неизвестный набор данных %q", s)
	}
}

// ParseView разбирает имя представления
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allViews {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("неизвестное представление %q", s)
}

// Request - запрос на расчет представления
type Request struct {
	Dataset Dataset
	View    View
	SortBy  RFMField // Только для RFM
	Desc    bool
}

// Result - результат расчета; заполнено только поле выбранного представления
type Result struct {
	Dataset       Dataset                           `json:"dataset"`
	View          View                              `json:"view"`
	Period        string                            `json:"period"`
	Trend         []models.TrendPoint               `json:"trend,omitempty"`
	Weather       []models.WeatherGroup             `json:"weather,omitempty"`
	RFM           []models.RFMRow                   `json:"rfm,omitempty"`
	Segments      []models.RFMScore                 `json:"segments,omitempty"` // В порядке строк RFM
	HourlyProfile []models.HourlyProfilePoint       `json:"hourlyProfile,omitempty"`
	Forecast      *linear_regression.ForecastResult `json:"forecast,omitempty"`
}

type viewKey struct {
	dataset Dataset
	view    View
}

type viewFunc func(e *Engine, sel *models.Selection, req Request, res *Result) error

// dispatch сопоставляет паре (набор данных, представление) функцию расчета
var dispatch = map[viewKey]viewFunc{
	{DatasetDaily, ViewTrend}:    computeTrend,
	{DatasetDaily, ViewWeather}:  computeWeather,
	{DatasetDaily, ViewRFM}:      computeRFM,
	{DatasetDaily, ViewForecast}: computeForecast,
	{DatasetHourly, ViewTrend}:   computeHourlyProfile,
}

func computeTrend(_ *Engine, sel *models.Selection, _ Request, res *Result) error {
	trend, err := Trend(sel.Daily)
	res.Trend = trend
	return err
}

func computeWeather(_ *Engine, sel *models.Selection, _ Request, res *Result) error {
	groups, err := WeatherAggregate(sel.Combined)
	res.Weather = groups
	return err
}

func computeRFM(_ *Engine, sel *models.Selection, req Request, res *Result) error {
	rows, err := RFM(sel.Daily)
	if err != nil {
		return err
	}
	SortRFM(rows, req.SortBy, req.Desc)
	segments, err := ScoreRFM(rows)
	if err != nil {
		return err
	}
	res.RFM = rows
	res.Segments = segments
	return nil
}

func computeForecast(e *Engine, sel *models.Selection, _ Request, res *Result) error {
	forecast, err := Forecast(sel.Daily, e.forecaster)
	res.Forecast = forecast
	return err
}

func computeHourlyProfile(_ *Engine, sel *models.Selection, _ Request, res *Result) error {
	profile, err := HourlyProfile(sel.Hourly)
	res.HourlyProfile = profile
	return err
}

// SupportedViews возвращает представления, доступные для набора данных
func SupportedViews(dataset Dataset) []View {
	views := make([]View, 0, len(allViews))
	for _, v := range allViews {
		if _, ok := dispatch[viewKey{dataset, v}]; ok {
			views = append(views, v)
		}
	}
	return views
}

// Engine рассчитывает представления по выборке снимка.
// Не хранит состояния между вызовами.
type Engine struct {
	logger     *utils.ETLLogger
	forecaster *linear_regression.RegressionProcessor
}

// NewEngine создает новый экземпляр Engine
func NewEngine(logger *utils.ETLLogger, forecast linear_regression.Config) *Engine {
	return &Engine{
		logger:     logger,
		forecaster: linear_regression.NewRegressionProcessor(logger, forecast),
	}
}

// Compute рассчитывает выбранное представление.
// Неподдерживаемая пара - ErrUnsupportedView, пустая выборка - EmptySelectionError.
func (e *Engine) Compute(sel *models.Selection, req Request) (*Result, error) {
	fn, ok := dispatch[viewKey{req.Dataset, req.View}]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", req.Dataset, req.View, models.ErrUnsupportedView)
	}

	startTime := time.Now()
	res := &Result{Dataset: req.Dataset, View: req.View, Period: sel.Period.Label()}
	if err := fn(e, sel, req, res); err != nil {
		var empty *models.EmptySelectionError
		if errors.As(err, &empty) && empty.Period == "" {
			empty.Period = sel.Period.Label()
		}
		return nil, fmt.Errorf("ошибка расчета %s/%s: %w", req.Dataset, req.View, err)
	}

	e.logger.Debug("Представление %s/%s за период %s рассчитано за %v",
		req.Dataset, req.View, res.Period, time.Since(startTime))
	return res, nil
}
