package load

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/config"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/extractors"
)

// Sources - источники дневной и почасовой таблиц
type Sources struct {
	Day  extractors.RowSource
	Hour extractors.RowSource
	db   *sql.DB
}

// OpenSources создает источники по конфигурации.
// Подключение к БД открывается, только если хотя бы один источник - "sql:<таблица>".
func OpenSources(cfg config.DashboardConfig) (*Sources, error) {
	sources := &Sources{}

	if cfg.NeedsDatabase() {
		db, err := config.ConnectDatabase(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к источнику таблиц: %w", err)
		}
		sources.db = db
	}

	var err error
	if sources.Day, err = sources.open(cfg.DaySource); err != nil {
		sources.Close()
		return nil, err
	}
	if sources.Hour, err = sources.open(cfg.HourSource); err != nil {
		sources.Close()
		return nil, err
	}
	return sources, nil
}

func (s *Sources) open(source string) (extractors.RowSource, error) {
	if config.IsSQLSource(source) {
		return extractors.NewSQLSource(s.db, strings.TrimPrefix(source, config.SQLSourcePrefix))
	}
	if source == "" {
		return nil, fmt.Errorf("источник таблицы не задан")
	}
	return extractors.NewCSVFileSource(source), nil
}

// Close закрывает подключение к БД, если оно было открыто
func (s *Sources) Close() {
	if s.db != nil {
		config.CloseDatabase(s.db)
		s.db = nil
	}
}
