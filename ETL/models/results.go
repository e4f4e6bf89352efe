package models

import (
	"time"
)

// TrendPoint - точка ряда "прокаты по дням"
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"cnt"`
}

// BoxStats - статистика для построения диаграммы размаха
type BoxStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// WeatherGroup - распределение дневных прокатов для одного кода погоды
type WeatherGroup struct {
	Code    int      `json:"weathersit"`
	Label   string   `json:"label"`
	Counts  []int    `json:"counts"` // cnt_day каждой строки соединения в исходном порядке
	Summary BoxStats `json:"summary"`
}

// RFMRow - показатели RFM для одного дня.
// RFM считается по дням, а не по клиентам: идентификаторов клиентов в данных нет.
type RFMRow struct {
	Date      time.Time `json:"date"`
	Recency   int       `json:"recency"`   // Дней до максимальной даты выборки
	Frequency int       `json:"frequency"` // cnt
	Monetary  int64     `json:"monetary"`  // cnt * registered
}

// HourlyProfilePoint - агрегат прокатов для часа суток
type HourlyProfilePoint struct {
	Hour  int     `json:"hr"`
	N     int     `json:"n"`
	Mean  float64 `json:"mean"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Total int     `json:"total"`
}

// Сегменты дней по сводному баллу RFM
const (
	SegmentHigh   = "high"
	SegmentMedium = "medium"
	SegmentLow    = "low"
)

// RFMScore - баллы RFM (1-5) для одного дня и его сегмент
type RFMScore struct {
	Date       time.Time `json:"date"`
	R          int       `json:"r"` // Чем ближе к опорной дате, тем выше
	F          int       `json:"f"`
	M          int       `json:"m"`
	Score      float64   `json:"score"`      // Среднее R, F, M
	Percentile float64   `json:"percentile"` // Процентиль сводного балла в выборке
	Segment    string    `json:"segment"`
}
