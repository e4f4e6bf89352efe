package extractors

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/processor"
)

// RowSource - построчный табличный источник: заголовок и строки значений
type RowSource interface {
	// Name возвращает имя источника для сообщений об ошибках
	Name() string

	// ReadRows читает заголовок и все строки данных
	ReadRows(ctx context.Context) (header []string, rows [][]string, err error)
}

// CSVSource читает таблицу из CSV (в том числе сжатого snappy)
type CSVSource struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewCSVFileSource создает источник из файла на диске
func NewCSVFileSource(path string) *CSVSource {
	return &CSVSource{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewCSVReaderSource создает источник из уже открытого потока.
// Поток читается один раз.
func NewCSVReaderSource(name string, r io.Reader) *CSVSource {
	return &CSVSource{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Name возвращает имя источника
func (s *CSVSource) Name() string {
	return s.name
}

// ReadRows читает CSV целиком
func (s *CSVSource) ReadRows(ctx context.Context) ([]string, [][]string, error) {
	f, err := s.open()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка открытия источника %s: %w", s.name, err)
	}
	defer f.Close()

	reader := csv.NewReader(processor.NewSourceReader(f, s.name))
	// Длину строк проверяем сами, чтобы сообщить номер строки и поле
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения заголовка %s: %w", s.name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Строка 1 файла - заголовок, строка 2 - первая строка данных
				return nil, nil, &models.MalformedRecordError{
					Source: s.name,
					Row:    parseErr.StartLine - 2,
					Value:  fmt.Sprintf("позиция %d", parseErr.Column),
					Err:    parseErr.Err,
				}
			}
			return nil, nil, fmt.Errorf("ошибка чтения CSV %s: %w", s.name, err)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
