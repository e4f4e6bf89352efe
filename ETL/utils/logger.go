package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// ETLLogger представляет логгер для загрузки и расчета аналитики
type ETLLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
	console     bool
	file        *os.File
}

// NewETLLogger создает новый экземпляр логгера.
// Если logDir пустой, записи идут только в стандартный вывод.
func NewETLLogger(verbose bool, logDir string) (*ETLLogger, error) {
	var out io.Writer = io.Discard
	var file *os.File

	if logDir != "" {
		// Создаем или открываем лог-файл для записи
		currentTime := time.Now().Format("2006-01-02")
		logFileName := fmt.Sprintf("%s/dashboard_log_%s.log", logDir, currentTime)

		var err error
		file, err = os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть или создать файл лога: %w", err)
		}
		out = file
	}

	return &ETLLogger{
		infoLogger:  log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(out, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(out, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		isVerbose:   verbose,
		console:     true,
		file:        file,
	}, nil
}

// NewSilentLogger создает логгер без вывода (используется в тестах)
func NewSilentLogger() *ETLLogger {
	return &ETLLogger{
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
	}
}

// Close закрывает файл лога, если он был открыт
func (l *ETLLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Info логирует информационное сообщение
func (l *ETLLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// Также выводим в стандартный вывод
	if l.console {
		log.Println("INFO:", msg)
	}
}

// Error логирует сообщение об ошибке
func (l *ETLLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	if l.console {
		log.Println("ERROR:", msg)
	}
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	if l.console {
		log.Println("DEBUG:", msg)
	}
}

// LogLoadStart логирует начало загрузки таблиц
func (l *ETLLogger) LogLoadStart(daySource, hourSource string) {
	l.Info("Начало загрузки таблиц: day=%s, hour=%s", daySource, hourSource)
}

// LogLoadComplete логирует завершение загрузки таблиц
func (l *ETLLogger) LogLoadComplete(snapshotID string, dailyRows, hourlyRows, combinedRows int, duration time.Duration) {
	l.Info("Загрузка завершена (снимок %s). Длительность: %v", snapshotID, duration)
	l.Info("Загружено: %d дневных строк, %d почасовых строк, %d строк после соединения", dailyRows, hourlyRows, combinedRows)
}
