package load

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/config"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/extractors"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/transform"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// ErrNotLoaded возвращается, пока не загружен ни один снимок
var ErrNotLoaded = errors.New("данные еще не загружены")

// LoadManager загружает таблицы и публикует неизменяемый снимок.
// Читатели получают снимок без блокировок; перезагрузка заменяет его целиком
// и только при успехе.
type LoadManager struct {
	logger      *utils.ETLLogger
	extractor   *extractors.Extractor
	transformer *transform.Transformer
	sources     *Sources

	snapshot  atomic.Pointer[models.Snapshot]
	reloadMu  sync.Mutex
	listeners []func(*models.Snapshot)

	stateMu sync.Mutex
	state   models.LoadStateMonitor
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(extractor *extractors.Extractor, transformer *transform.Transformer, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		logger:      logger,
		extractor:   extractor,
		transformer: transformer,
	}
}

// NewLoadManagerFromConfig создает LoadManager по конфигурации источников
func NewLoadManagerFromConfig(cfg config.DashboardConfig, logger *utils.ETLLogger) (*LoadManager, error) {
	sources, err := OpenSources(cfg)
	if err != nil {
		return nil, err
	}

	manager := NewLoadManager(
		extractors.NewExtractor(sources.Day, sources.Hour, logger),
		transform.NewTransformer(logger),
		logger,
	)
	manager.sources = sources
	return manager, nil
}

// Close освобождает ресурсы источников
func (m *LoadManager) Close() {
	if m.sources != nil {
		m.sources.Close()
	}
}

// OnReload регистрирует функцию, вызываемую после публикации каждого нового снимка.
// Регистрировать слушателей нужно до первой перезагрузки.
func (m *LoadManager) OnReload(fn func(*models.Snapshot)) {
	m.listeners = append(m.listeners, fn)
}

// Snapshot возвращает текущий снимок или nil, если данные еще не загружены
func (m *LoadManager) Snapshot() *models.Snapshot {
	return m.snapshot.Load()
}

// Reload заново читает обе таблицы, соединяет их и публикует новый снимок.
// При ошибке предыдущий снимок остается в силе.
func (m *LoadManager) Reload(ctx context.Context) (*models.Snapshot, error) {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	startTime := time.Now()
	m.logger.LogLoadStart(m.extractor.SourceNames())

	run := models.LoadRunLog{StartTime: startTime}

	extractedData, err := m.extractor.Extract(ctx)
	if err != nil {
		m.logger.Error("Ошибка загрузки таблиц: %v", err)
		run.Status = models.LoadStatusFailed
		run.ErrorMessage = err.Error()
		m.recordRun(run)
		return nil, fmt.Errorf("ошибка загрузки таблиц: %w", err)
	}

	snapshot := &models.Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: extractedData.ExtractedAt,
		Daily:    extractedData.Daily,
		Hourly:   extractedData.Hourly,
		Combined: m.transformer.Combine(extractedData),
	}
	m.snapshot.Store(snapshot)
	for _, fn := range m.listeners {
		fn(snapshot)
	}

	status := snapshot.Status()
	run.Status = models.LoadStatusSuccess
	run.SnapshotID = status.ID
	run.DailyRows = status.DailyRows
	run.HourlyRows = status.HourlyRows
	run.CombinedRows = status.CombinedRows
	m.recordRun(run)

	m.logger.LogLoadComplete(snapshot.ID, status.DailyRows, status.HourlyRows, status.CombinedRows, time.Since(startTime))
	return snapshot, nil
}

func (m *LoadManager) recordRun(run models.LoadRunLog) {
	run.EndTime = time.Now()
	run.ExecutionTimeSeconds = run.EndTime.Sub(run.StartTime).Seconds()

	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	m.state.Record(run)
}

// State возвращает сводку по запускам загрузки
func (m *LoadManager) State() models.LoadStateMonitor {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	return m.state
}

// Select ограничивает текущий снимок выбранным периодом
func (m *LoadManager) Select(sel models.PeriodSelection) (*models.Selection, error) {
	snapshot := m.Snapshot()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return m.transformer.Select(snapshot, sel)
}

// PeriodOptions возвращает варианты выбора периода для текущего снимка
func (m *LoadManager) PeriodOptions() ([]models.PeriodOption, error) {
	snapshot := m.Snapshot()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return transform.PeriodOptions(snapshot.Daily.Rows), nil
}

// StartScheduler периодически перезагружает таблицы до отмены контекста.
// Вызов блокирующий.
func (m *LoadManager) StartScheduler(ctx context.Context, interval time.Duration) error {
	scheduler := gocron.NewScheduler(time.UTC)

	m.logger.Info("Запуск планировщика перезагрузки с интервалом %v", interval)

	_, err := scheduler.Every(interval).WaitForSchedule().Do(func() {
		m.logger.Info("Запланированная перезагрузка таблиц")
		if _, err := m.Reload(ctx); err != nil {
			m.logger.Error("Ошибка при запланированной перезагрузке, сохранен предыдущий снимок: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("ошибка при настройке планировщика: %w", err)
	}

	// Запускаем планировщик
	scheduler.StartAsync()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	scheduler.Stop()
	m.logger.Info("Планировщик перезагрузки остановлен")
	return nil
}
