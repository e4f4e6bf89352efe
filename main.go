// main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/analytics"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/config"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/load"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
	"github.com/LilVoxy/bikeshare_dashboard/routes"
	"github.com/LilVoxy/bikeshare_dashboard/websocket"
)

func loadConfig(path string) (config.DashboardConfig, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}
	return config.GetConfig()
}

func main() {
	configPath := flag.String("config", "", "Путь к JSON-файлу конфигурации")
	flag.Parse()

	log.Println("Запуск сервера...")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}

	logger, err := utils.NewETLLogger(cfg.EnableDetailedLogging, cfg.LogDir)
	if err != nil {
		log.Fatalf("❌ Не удалось инициализировать логгер: %v", err)
	}
	defer logger.Close()

	// Загружаем таблицы до запуска сервера: без снимка API бесполезен
	manager, err := load.NewLoadManagerFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть источники данных: %v", err)
	}
	defer manager.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Менеджер WebSocket рассылает сведения о каждом новом снимке
	wsManager := websocket.NewManager(manager.Snapshot, logger)
	manager.OnReload(wsManager.NotifySnapshot)
	go wsManager.Run(ctx)

	if _, err := manager.Reload(ctx); err != nil {
		log.Fatalf("❌ Не удалось загрузить таблицы: %v", err)
	}

	// Периодическая перезагрузка
	if cfg.RunInterval > 0 {
		go func() {
			if err := manager.StartScheduler(ctx, cfg.RunInterval); err != nil {
				logger.Error("Планировщик не запущен: %v", err)
			}
		}()
	}

	forecast := linear_regression.DefaultConfig().WithOverrides(cfg.Forecast.Days, cfg.Forecast.ConfidenceLevel)
	engine := analytics.NewEngine(logger, forecast)

	// Создаем маршрутизатор
	router := mux.NewRouter()
	routes.SetupRoutes(router, manager, engine, wsManager, logger)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, останавливаем сервер...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Ошибка остановки сервера: %v", err)
	}

	log.Println("👋 Сервер остановлен")
}
