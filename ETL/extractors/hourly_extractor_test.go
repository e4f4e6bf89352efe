package extractors

import (
	"errors"
	"testing"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

func TestParseHourly(t *testing.T) {
	header := []string{"instant", "dteday", "hr", "weathersit", "cnt"}
	rows := [][]string{
		{"1", "2011-01-01", "0", "1", "16"},
		{"2", "2011-01-01", "23", "2", "40"},
	}

	table, err := ParseHourly("hour.csv", header, rows)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("ожидалось 2 строки, получено %d", len(table.Rows))
	}
	if table.Rows[1].Hour != 23 || table.Rows[1].Count != 40 {
		t.Fatalf("неверные поля: %+v", table.Rows[1])
	}
	if table.Rows[1].Covariates["weathersit"] != "2" {
		t.Fatalf("ковариаты не сохранены: %v", table.Rows[1].Covariates)
	}
}

func TestParseHourlyMalformed(t *testing.T) {
	header := []string{"dteday", "hr", "cnt"}

	tests := []struct {
		name      string
		rows      [][]string
		wantRow   int
		wantField string
	}{
		{"час больше 23", [][]string{{"2011-01-01", "0", "1"}, {"2011-01-01", "24", "5"}}, 1, "hr"},
		{"отрицательный час", [][]string{{"2011-01-01", "-1", "5"}}, 0, "hr"},
		{"cnt не число", [][]string{{"2011-01-01", "3", "abc"}}, 0, "cnt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHourly("hour.csv", header, tt.rows)
			var malformed *models.MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("ожидалась MalformedRecordError, получено: %v", err)
			}
			if malformed.Row != tt.wantRow || malformed.Field != tt.wantField {
				t.Fatalf("неверная позиция ошибки: строка %d поле %q", malformed.Row, malformed.Field)
			}
		})
	}
}
