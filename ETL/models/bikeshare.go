package models

import (
	"time"
)

// Имена обязательных колонок источников
const (
	ColumnDate       = "dteday"
	ColumnCount      = "cnt"
	ColumnRegistered = "registered"
	ColumnWeather    = "weathersit"
	ColumnHour       = "hr"
)

// Суффиксы для колонок, которые есть в обеих таблицах
const (
	HourSuffix = "_hour"
	DaySuffix  = "_day"
)

// DailyRecord представляет одну строку дневной таблицы (day.csv)
type DailyRecord struct {
	Date             time.Time         `json:"date"`
	Count            int               `json:"cnt"`
	Registered       int               `json:"registered"`
	WeatherSituation int               `json:"weathersit"`
	Covariates       map[string]string `json:"covariates,omitempty"` // Остальные колонки как есть
}

// HourlyRecord представляет одну строку почасовой таблицы (hour.csv)
type HourlyRecord struct {
	Date       time.Time         `json:"date"`
	Hour       int               `json:"hr"`
	Count      int               `json:"cnt"`
	Covariates map[string]string `json:"covariates,omitempty"`
}

// DailyTable содержит загруженную дневную таблицу
type DailyTable struct {
	Columns []string // Порядок колонок источника
	Rows    []DailyRecord
}

// HourlyTable содержит загруженную почасовую таблицу
type HourlyTable struct {
	Columns []string
	Rows    []HourlyRecord
}

// CombinedRecord представляет строку результата соединения почасовой и дневной таблиц
type CombinedRecord struct {
	Date          time.Time         `json:"date"`
	Hour          int               `json:"hr"`
	HourCount     int               `json:"cnt_hour"`
	DayCount      int               `json:"cnt_day"`
	DayRegistered int               `json:"registered_day"`
	DayWeather    int               `json:"weathersit_day"`
	Values        map[string]string `json:"values"` // Колонка (с суффиксом) -> значение
}

// CombinedTable содержит результат соединения
type CombinedTable struct {
	Columns []string
	Rows    []CombinedRecord
}

// Snapshot - неизменяемый набор загруженных данных.
// После публикации никто не изменяет его содержимое, поэтому его можно читать
// из нескольких горутин без блокировок.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Daily    *DailyTable
	Hourly   *HourlyTable
	Combined *CombinedTable
}

// SnapshotStatus - краткая информация о снимке для API
type SnapshotStatus struct {
	ID           string    `json:"id"`
	LoadedAt     time.Time `json:"loadedAt"`
	DailyRows    int       `json:"dailyRows"`
	HourlyRows   int       `json:"hourlyRows"`
	CombinedRows int       `json:"combinedRows"`
}

// Status возвращает краткую информацию о снимке
func (s *Snapshot) Status() SnapshotStatus {
	status := SnapshotStatus{ID: s.ID, LoadedAt: s.LoadedAt}
	if s.Daily != nil {
		status.DailyRows = len(s.Daily.Rows)
	}
	if s.Hourly != nil {
		status.HourlyRows = len(s.Hourly.Rows)
	}
	if s.Combined != nil {
		status.CombinedRows = len(s.Combined.Rows)
	}
	return status
}

// WeatherLabel возвращает описание кода погоды из описания набора данных
func WeatherLabel(code int) string {
	switch code {
	case 1:
		return "Clear, Few clouds"
	case 2:
		return "Mist, Cloudy"
	case 3:
		return "Light Snow, Light Rain"
	case 4:
		return "Heavy Rain, Ice Pallets, Snow"
	default:
		return "Unknown"
	}
}

// ExtractedData содержит таблицы, прочитанные из источников
type ExtractedData struct {
	Daily       *DailyTable
	Hourly      *HourlyTable
	ExtractedAt time.Time
}

// Selection - данные снимка, ограниченные выбранным периодом
type Selection struct {
	Period   PeriodSelection
	Daily    []DailyRecord
	Hourly   []HourlyRecord
	Combined []CombinedRecord
}
