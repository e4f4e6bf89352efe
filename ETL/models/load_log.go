package models

import (
	"time"
)

// Статусы запуска загрузки
const (
	LoadStatusSuccess = "success"
	LoadStatusFailed  = "failed"
)

// LoadRunLog представляет запись о запуске загрузки таблиц
type LoadRunLog struct {
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `json:"status"` // "success" или "failed"
	SnapshotID           string    `json:"snapshot_id,omitempty"`
	DailyRows            int       `json:"daily_rows"`
	HourlyRows           int       `json:"hourly_rows"`
	CombinedRows         int       `json:"combined_rows"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
}

// LoadStateMonitor предоставляет информацию о запусках загрузки с момента старта процесса
type LoadStateMonitor struct {
	LastSuccessfulRun       *LoadRunLog `json:"last_successful_run,omitempty"`
	LastFailedRun           *LoadRunLog `json:"last_failed_run,omitempty"`
	TotalSuccessfulRuns     int         `json:"total_successful_runs"`
	TotalFailedRuns         int         `json:"total_failed_runs"`
	AvgExecutionTimeSeconds float64     `json:"avg_execution_time_seconds"`
}

// Record учитывает завершенный запуск
func (m *LoadStateMonitor) Record(run LoadRunLog) {
	total := float64(m.TotalSuccessfulRuns + m.TotalFailedRuns)
	m.AvgExecutionTimeSeconds = (m.AvgExecutionTimeSeconds*total + run.ExecutionTimeSeconds) / (total + 1)

	if run.Status == LoadStatusSuccess {
		m.TotalSuccessfulRuns++
		m.LastSuccessfulRun = &run
	} else {
		m.TotalFailedRuns++
		m.LastFailedRun = &run
	}
}
