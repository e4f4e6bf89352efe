package config

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// DSN формирует строку подключения для драйвера
func (c DatabaseConfig) DSN() (string, error) {
	if c.URL != "" {
		return urlToDSN(c.URL)
	}

	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.DBName), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.DBName), nil
	case "clickhouse":
		return fmt.Sprintf("clickhouse://%s:%s@%s:%d/%s",
			c.User, c.Password, c.Host, c.Port, c.DBName), nil
	default:
		return "", fmt.Errorf("неизвестный драйвер БД %q", c.Driver)
	}
}

// urlToDSN преобразует mariadb:// и mysql:// в формат драйвера MySQL.
// postgres:// и clickhouse:// драйверы принимают как есть.
func urlToDSN(raw string) (string, error) {
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		return raw, nil
	}
	if !strings.HasPrefix(raw, "mariadb://") && !strings.HasPrefix(raw, "mysql://") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("ошибка разбора dsn: %w", err)
	}
	user, pass := "", ""
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if user == "" || u.Host == "" || dbName == "" {
		return "", fmt.Errorf("dsn неполный (user/host/db)")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC", user, pass, u.Host, dbName), nil
}

// driverName возвращает имя драйвера database/sql
func (c DatabaseConfig) driverName() string {
	if strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://") {
		return "postgres"
	}
	if strings.HasPrefix(c.URL, "clickhouse://") {
		return "clickhouse"
	}
	if c.URL != "" {
		return "mysql"
	}
	return c.Driver
}

// ConnectDatabase устанавливает подключение к базе данных с исходными таблицами
func ConnectDatabase(config DatabaseConfig) (*sql.DB, error) {
	dsn, err := config.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(config.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	// Настройка параметров подключения
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Проверка подключения
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось установить соединение с базой данных: %w", err)
	}

	log.Println("Успешное подключение к базе данных", config.driverName())
	return db, nil
}

// CloseDatabase закрывает подключение к базе данных
func CloseDatabase(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("Ошибка при закрытии соединения с базой данных: %v", err)
		return
	}
	log.Println("Соединение с базой данных закрыто")
}
