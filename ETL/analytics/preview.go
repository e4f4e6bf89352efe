package analytics

// DefaultPreviewRows - сколько строк показывать в превью таблицы
const DefaultPreviewRows = 5

// Preview возвращает первые n строк таблицы.
// При n <= 0 используется DefaultPreviewRows.
func Preview[T any](rows []T, n int) []T {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n:n]
}
