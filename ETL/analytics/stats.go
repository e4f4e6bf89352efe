package analytics

import (
	"math"
	"sort"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// Quantile возвращает квантиль q (0..1) отсортированной выборки
// с линейной интерполяцией между соседними элементами
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// Summarize считает статистику диаграммы размаха.
// Для пустой выборки возвращает нулевую структуру.
func Summarize(values []int) models.BoxStats {
	if len(values) == 0 {
		return models.BoxStats{}
	}

	sorted := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sorted[i] = float64(v)
		sum += float64(v)
	}
	sort.Float64s(sorted)

	return models.BoxStats{
		N:      len(sorted),
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
	}
}
