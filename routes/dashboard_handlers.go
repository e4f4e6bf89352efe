// routes/dashboard_handlers.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/analytics"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/load"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// maxPreviewRows ограничивает размер превью
const maxPreviewRows = 100

// DashboardHandlers содержит обработчики API дашборда
type DashboardHandlers struct {
	manager *load.LoadManager
	engine  *analytics.Engine
	logger  *utils.ETLLogger
}

// ErrorResponse структура ответа API с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Warning bool   `json:"warning,omitempty"` // Восстановимая ситуация, например пустой период
}

// PeriodsResponse структура ответа API для вариантов периода
type PeriodsResponse struct {
	Periods []models.PeriodOption `json:"periods"`
}

// PreviewResponse структура ответа API для превью таблицы
type PreviewResponse struct {
	Dataset analytics.Dataset `json:"dataset"`
	Columns []string          `json:"columns"`
	Rows    interface{}       `json:"rows"`
}

// ViewsResponse структура ответа API для списка представлений
type ViewsResponse struct {
	Dataset analytics.Dataset `json:"dataset"`
	Views   []analytics.View  `json:"views"`
}

// GetStatusHandler возвращает сведения о текущем снимке
func (h *DashboardHandlers) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := h.manager.Snapshot()
	if snapshot == nil {
		h.writeError(w, http.StatusServiceUnavailable, load.ErrNotLoaded)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot.Status())
}

// ReloadHandler перечитывает исходные таблицы
func (h *DashboardHandlers) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.manager.Reload(r.Context())
	if err != nil {
		h.logger.Error("Ошибка перезагрузки по запросу API: %v", err)
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot.Status())
}

// GetLoadsHandler возвращает статистику запусков загрузки
func (h *DashboardHandlers) GetLoadsHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.manager.State())
}

// GetPeriodsHandler возвращает варианты выбора периода
func (h *DashboardHandlers) GetPeriodsHandler(w http.ResponseWriter, r *http.Request) {
	options, err := h.manager.PeriodOptions()
	if err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	h.writeJSON(w, http.StatusOK, PeriodsResponse{Periods: options})
}

// GetPreviewHandler возвращает первые строки выбранной таблицы
func (h *DashboardHandlers) GetPreviewHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dataset, err := analytics.ParseDataset(query.Get("dataset"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	limit := analytics.DefaultPreviewRows
	if s := query.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit <= 0 || limit > maxPreviewRows {
			http.Error(w, "Неверный параметр limit", http.StatusBadRequest)
			return
		}
	}

	snapshot := h.manager.Snapshot()
	if snapshot == nil {
		h.writeError(w, http.StatusServiceUnavailable, load.ErrNotLoaded)
		return
	}

	response := PreviewResponse{Dataset: dataset}
	switch dataset {
	case analytics.DatasetDaily:
		response.Columns = snapshot.Daily.Columns
		response.Rows = analytics.Preview(snapshot.Daily.Rows, limit)
	case analytics.DatasetHourly:
		response.Columns = snapshot.Hourly.Columns
		response.Rows = analytics.Preview(snapshot.Hourly.Rows, limit)
	}
	h.writeJSON(w, http.StatusOK, response)
}

// GetViewsHandler возвращает представления, доступные для набора данных
func (h *DashboardHandlers) GetViewsHandler(w http.ResponseWriter, r *http.Request) {
	dataset, err := analytics.ParseDataset(mux.Vars(r)["dataset"])
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ViewsResponse{Dataset: dataset, Views: analytics.SupportedViews(dataset)})
}

// GetViewHandler рассчитывает представление за выбранный период
func (h *DashboardHandlers) GetViewHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	dataset, err := analytics.ParseDataset(vars["dataset"])
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	view, err := analytics.ParseView(vars["view"])
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}

	period, err := models.ParsePeriod(query.Get("period"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	sortBy, err := analytics.ParseRFMField(query.Get("sort"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	desc := false
	if s := query.Get("desc"); s != "" {
		desc, err = strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "Неверный параметр desc", http.StatusBadRequest)
			return
		}
	}

	selection, err := h.manager.Select(period)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	result, err := h.engine.Compute(selection, analytics.Request{
		Dataset: dataset,
		View:    view,
		SortBy:  sortBy,
		Desc:    desc,
	})
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// writeComputeError сопоставляет ошибку выборки или расчета HTTP-статусу
func (h *DashboardHandlers) writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case models.IsEmptySelection(err):
		h.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Warning: true})
	case errors.Is(err, models.ErrUnsupportedView):
		h.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, load.ErrNotLoaded):
		h.writeError(w, http.StatusServiceUnavailable, err)
	default:
		h.logger.Error("Ошибка расчета представления: %v", err)
		h.writeError(w, http.StatusInternalServerError, err)
	}
}

func (h *DashboardHandlers) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (h *DashboardHandlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	// Устанавливаем заголовок для JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Ошибка при кодировании JSON: %v", err)
	}
}
