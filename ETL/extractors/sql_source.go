package extractors

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SQLSource читает таблицу целиком из базы данных (MySQL, PostgreSQL или ClickHouse)
type SQLSource struct {
	db    *sql.DB
	table string
}

// NewSQLSource создает источник для таблицы БД
func NewSQLSource(db *sql.DB, table string) (*SQLSource, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("недопустимое имя таблицы %q", table)
	}
	return &SQLSource{db: db, table: table}, nil
}

// Name возвращает имя источника
func (s *SQLSource) Name() string {
	return "sql:" + s.table
}

// ReadRows выполняет SELECT по таблице и приводит значения к строкам
func (s *SQLSource) ReadRows(ctx context.Context) ([]string, [][]string, error) {
	// Имя таблицы проверено в NewSQLSource
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", s.table))
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка запроса таблицы %s: %w", s.table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка получения колонок таблицы %s: %w", s.table, err)
	}

	var result [][]string
	for rows.Next() {
		values := make([]any, len(header))
		dest := make([]any, len(header))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("ошибка при сканировании строки таблицы %s: %w", s.table, err)
		}

		row := make([]string, len(header))
		for i, v := range values {
			row[i] = formatSQLValue(v)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ошибка при итерации по таблице %s: %w", s.table, err)
	}

	return header, result, nil
}

// formatSQLValue приводит значение драйвера к строковому виду CSV
func formatSQLValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}
