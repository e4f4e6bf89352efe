package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/analytics"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/config"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/load"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// defaultSchedulerInterval используется, если в конфигурации интервал не задан
const defaultSchedulerInterval = time.Hour

type ETLRunner struct {
	config      config.DashboardConfig
	logger      *utils.ETLLogger
	loadManager *load.LoadManager
}

// NewETLRunner создает новый экземпляр ETLRunner
func NewETLRunner(configPath string) (*ETLRunner, error) {
	// Получаем конфигурацию
	var cfg config.DashboardConfig
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfigFile(configPath)
	} else {
		cfg, err = config.GetConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	// Инициализируем логгер
	logger, err := utils.NewETLLogger(cfg.EnableDetailedLogging, cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	logger.Info("Инициализация ETL Runner")

	loadManager, err := load.NewLoadManagerFromConfig(cfg, logger)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("ошибка подключения к источникам: %w", err)
	}

	return &ETLRunner{
		config:      cfg,
		logger:      logger,
		loadManager: loadManager,
	}, nil
}

// Close освобождает ресурсы
func (r *ETLRunner) Close() {
	r.logger.Info("Завершение работы ETL Runner")
	r.loadManager.Close()
	r.logger.Close()
}

// ExecuteReport загружает таблицы и печатает сводку по каждому месяцу
func (r *ETLRunner) ExecuteReport(ctx context.Context) error {
	r.logger.Info("Запуск построения помесячного отчета")
	startTime := time.Now()

	if _, err := r.loadManager.Reload(ctx); err != nil {
		return fmt.Errorf("ошибка загрузки таблиц: %w", err)
	}

	options, err := r.loadManager.PeriodOptions()
	if err != nil {
		return err
	}

	// Первый вариант - "все даты", он идет итоговой строкой
	months := options[1:]
	bar := progressbar.Default(int64(len(months)), "месяцы")

	ordered := append(append([]models.PeriodOption{}, months...), options[0])
	summaries := make([]analytics.PeriodSummary, 0, len(ordered))
	for _, opt := range ordered {
		sel, err := r.loadManager.Select(opt.Selection)
		if err != nil {
			return fmt.Errorf("ошибка выборки %s: %w", opt.Label, err)
		}
		summary, err := analytics.SummarizePeriod(sel)
		if err != nil {
			return fmt.Errorf("ошибка расчета сводки %s: %w", opt.Label, err)
		}
		summaries = append(summaries, summary)

		if !opt.Selection.All {
			_ = bar.Add(1)
		}
	}
	fmt.Println()

	for _, s := range summaries {
		fmt.Printf("%-16s дней=%3d всего=%8d среднее=%9.1f пик=%s (%d) час-пик=%2d зарег.=%.1f%%\n",
			s.Period, s.Days, s.Total, s.MeanPerDay,
			s.PeakDay.Date.Format("2006-01-02"), s.PeakDay.Count, s.PeakHour, s.RegisteredRate*100)
	}

	r.logger.Info("Отчет построен. Длительность: %v", time.Since(startTime))
	return nil
}

// StartScheduler запускает регулярную перезагрузку таблиц до отмены контекста
func (r *ETLRunner) StartScheduler(ctx context.Context) error {
	interval := r.config.RunInterval
	if interval <= 0 {
		interval = defaultSchedulerInterval
	}

	if _, err := r.loadManager.Reload(ctx); err != nil {
		r.logger.Error("Первичная загрузка не удалась, повтор по расписанию: %v", err)
	}
	return r.loadManager.StartScheduler(ctx, interval)
}

// runLinearRegression строит прогноз для выбранного периода
func (r *ETLRunner) runLinearRegression(ctx context.Context, period string, cfg linear_regression.Config) error {
	sel, err := models.ParsePeriod(period)
	if err != nil {
		return err
	}
	if _, err := r.loadManager.Reload(ctx); err != nil {
		return fmt.Errorf("ошибка загрузки таблиц: %w", err)
	}

	r.logger.Info("Запуск линейной регрессии с параметрами: период=%s, прогноз=%d дней, доверие=%.2f, минR²=%.2f",
		sel.Label(), cfg.ForecastDays, cfg.ConfidenceLevel, cfg.MinR2Threshold)

	selection, err := r.loadManager.Select(sel)
	if err != nil {
		return err
	}
	result, err := analytics.NewEngine(r.logger, cfg).Compute(selection, analytics.Request{
		Dataset: analytics.DatasetDaily,
		View:    analytics.ViewForecast,
	})
	if err != nil {
		return err
	}

	model := result.Forecast.Model
	fmt.Printf("Модель за %s: прокаты = %.3f * день + %.3f, R=%.3f, R²=%.3f\n",
		result.Period, model.A, model.B, model.R, model.R2)
	if result.Forecast.LowQuality {
		fmt.Printf("Внимание: R² ниже порога %.2f, прогноз ненадежен\n", cfg.MinR2Threshold)
	}
	for _, f := range result.Forecast.Forecasts {
		fmt.Printf("%s  %10.1f  [%10.1f; %10.1f]\n",
			f.Date.Format("2006-01-02"), f.ForecastValue, f.CILower, f.CIUpper)
	}
	return nil
}

// RunOnce строит отчет один раз
func RunOnce(configPath string) {
	runner, err := NewETLRunner(configPath)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	if err := runner.ExecuteReport(context.Background()); err != nil {
		log.Fatalf("Ошибка при построении отчета: %v", err)
	}
}

// RunScheduled перезагружает таблицы по расписанию
func RunScheduled(configPath string) {
	// Создаем контекст, который будет отменен при получении сигнала завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Настраиваем обработку сигналов завершения
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// Запускаем горутину для обработки сигналов
	go func() {
		<-signalCh
		log.Println("Получен сигнал завершения. Останавливаем ETL Runner...")
		cancel()
	}()

	runner, err := NewETLRunner(configPath)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	if err := runner.StartScheduler(ctx); err != nil {
		log.Fatalf("Ошибка планировщика: %v", err)
	}
}

// RunLinearRegression запускает только линейную регрессию с пользовательскими параметрами
func RunLinearRegression(configPath, period string, forecast int, confidence, minR2 float64) {
	log.Println("Запуск утилиты линейной регрессии")

	runner, err := NewETLRunner(configPath)
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}
	defer runner.Close()

	cfg := linear_regression.DefaultConfig().
		WithOverrides(runner.config.Forecast.Days, runner.config.Forecast.ConfidenceLevel).
		WithOverrides(forecast, confidence)
	cfg.MinR2Threshold = minR2

	if err := runner.runLinearRegression(context.Background(), period, cfg); err != nil {
		log.Fatalf("Ошибка при выполнении линейной регрессии: %v", err)
	}

	log.Println("Линейная регрессия успешно завершена")
}

func main() {
	// Параметры командной строки
	modePtr := flag.String("mode", "once", "Режим работы: once, scheduled или lr")
	configPtr := flag.String("config", "", "Путь к JSON-файлу конфигурации")
	periodPtr := flag.String("period", "all", "Период: all, YYYY-MM, \"Month YYYY\" или MMYYYY (только для режима lr)")
	forecastPtr := flag.Int("forecast", 0, "Количество дней для прогноза (только для режима lr)")
	confidencePtr := flag.Float64("confidence", 0, "Уровень доверия: 0.90, 0.95 или 0.99 (только для режима lr)")
	minR2Ptr := flag.Float64("min-r2", 0.30, "Минимальный порог для R² (только для режима lr)")

	flag.Parse()

	log.Println("Запуск ETL Runner в режиме:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce(*configPtr)
	case "scheduled":
		RunScheduled(*configPtr)
	case "lr":
		RunLinearRegression(*configPtr, *periodPtr, *forecastPtr, *confidencePtr, *minR2Ptr)
	default:
		log.Println("Неизвестный режим работы:", *modePtr)
		log.Println("Доступные режимы: once, scheduled, lr")
		os.Exit(1)
	}

	log.Println("ETL Runner завершил работу")
}
