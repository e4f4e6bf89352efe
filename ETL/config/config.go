package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SQLSourcePrefix - префикс источника, который читается из таблицы БД ("sql:day")
const SQLSourcePrefix = "sql:"

// DashboardConfig содержит конфигурацию загрузки данных и API дашборда
type DashboardConfig struct {
	// Источники таблиц: путь к CSV (.csv или .csv.sz) либо "sql:<таблица>"
	DaySource  string `json:"day_source"`
	HourSource string `json:"hour_source"`

	// Конфигурация для подключения к БД (нужна только для sql-источников)
	Database DatabaseConfig `json:"database"`

	// Интервал перезагрузки таблиц (0 - без перезагрузки).
	// В JSON задается строкой ("15m") или числом наносекунд.
	RunInterval time.Duration `json:"run_interval"`

	// Адрес HTTP-сервера
	HTTPAddr string `json:"http_addr"`

	// Каталог для файла лога (пусто - только stdout)
	LogDir string `json:"log_dir"`

	// Параметры прогноза тренда
	Forecast struct {
		Days            int     `json:"days"`
		ConfidenceLevel float64 `json:"confidence_level"`
	} `json:"forecast"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"` // "mysql", "postgres" или "clickhouse"
	URL      string `json:"url"`    // mysql://, mariadb://, postgres:// или clickhouse:// (имеет приоритет)
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// Значения конфигурации по умолчанию
var (
	DefaultDatabaseConfig = DatabaseConfig{
		Driver: "mysql",
		Host:   "localhost",
		Port:   3306,
		User:   "root",
		DBName: "bike_sharing",
	}

	DefaultDashboardConfig = DashboardConfig{
		DaySource:             "data/day.csv",
		HourSource:            "data/hour.csv",
		Database:              DefaultDatabaseConfig,
		RunInterval:           0,
		HTTPAddr:              ":8080",
		EnableDetailedLogging: false,
	}
)

func defaultConfig() DashboardConfig {
	config := DefaultDashboardConfig

	// Настройка прогноза
	config.Forecast.Days = 14
	config.Forecast.ConfidenceLevel = 0.95
	return config
}

// GetConfig возвращает конфигурацию с учетом переменных окружения
func GetConfig() (DashboardConfig, error) {
	config := defaultConfig()
	if err := applyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// LoadConfigFile читает конфигурацию из JSON-файла поверх значений по умолчанию.
// Переменные окружения имеют приоритет над файлом.
func LoadConfigFile(path string) (DashboardConfig, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("ошибка разбора файла конфигурации %s: %w", path, err)
	}

	if err := applyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// UnmarshalJSON разбирает конфигурацию, принимая run_interval строкой длительности
func (c *DashboardConfig) UnmarshalJSON(data []byte) error {
	type plain DashboardConfig
	aux := struct {
		*plain
		RunInterval json.RawMessage `json:"run_interval"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.RunInterval) == 0 || string(aux.RunInterval) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(aux.RunInterval, &text); err == nil {
		interval, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("некорректный run_interval %q: %w", text, err)
		}
		c.RunInterval = interval
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(aux.RunInterval, &nanos); err != nil {
		return fmt.Errorf("некорректный run_interval %s: %w", aux.RunInterval, err)
	}
	c.RunInterval = time.Duration(nanos)
	return nil
}

// IsSQLSource проверяет, указывает ли источник на таблицу БД
func IsSQLSource(source string) bool {
	return strings.HasPrefix(source, SQLSourcePrefix)
}

// NeedsDatabase сообщает, нужен ли конфигурации доступ к БД
func (c DashboardConfig) NeedsDatabase() bool {
	return IsSQLSource(c.DaySource) || IsSQLSource(c.HourSource)
}

// applyEnv переопределяет поля значениями из переменных окружения
func applyEnv(config *DashboardConfig) error {
	if v := os.Getenv("BIKE_DAY_SOURCE"); v != "" {
		config.DaySource = v
	}
	if v := os.Getenv("BIKE_HOUR_SOURCE"); v != "" {
		config.HourSource = v
	}
	if v := os.Getenv("BIKE_DB_DRIVER"); v != "" {
		config.Database.Driver = v
	}
	if v := os.Getenv("BIKE_DB_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("BIKE_HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	}
	if v := os.Getenv("BIKE_LOG_DIR"); v != "" {
		config.LogDir = v
	}
	if v := os.Getenv("BIKE_RELOAD_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("некорректный BIKE_RELOAD_INTERVAL %q: %w", v, err)
		}
		config.RunInterval = interval
	}
	if v := os.Getenv("BIKE_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("некорректный BIKE_VERBOSE %q: %w", v, err)
		}
		config.EnableDetailedLogging = verbose
	}
	return nil
}
