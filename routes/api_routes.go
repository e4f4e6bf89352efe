// routes/api_routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/analytics"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/load"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
	"github.com/LilVoxy/bikeshare_dashboard/middleware"
	"github.com/LilVoxy/bikeshare_dashboard/websocket"
)

// SetupRoutes настраивает все маршруты API дашборда.
// wsManager может быть nil - тогда уведомления о снимках не публикуются.
func SetupRoutes(router *mux.Router, manager *load.LoadManager, engine *analytics.Engine, wsManager *websocket.Manager, logger *utils.ETLLogger) {
	h := &DashboardHandlers{manager: manager, engine: engine, logger: logger}

	// Применяем CORS middleware
	router.Use(middleware.CORSMiddleware)

	// Уведомления о новых снимках
	if wsManager != nil {
		router.HandleFunc("/ws/snapshots", wsManager.HandleConnections)
	}

	api := router.PathPrefix("/api").Subrouter()

	// Состояние загруженных данных
	api.HandleFunc("/status", h.GetStatusHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/reload", h.ReloadHandler).Methods("POST", "OPTIONS")
	api.HandleFunc("/loads", h.GetLoadsHandler).Methods("GET", "OPTIONS")

	// Варианты периода и первые строки таблиц
	api.HandleFunc("/periods", h.GetPeriodsHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/preview", h.GetPreviewHandler).Methods("GET", "OPTIONS")

	// Представления
	api.HandleFunc("/views/{dataset}", h.GetViewsHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/views/{dataset}/{view}", h.GetViewHandler).Methods("GET", "OPTIONS")
}
