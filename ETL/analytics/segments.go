package analytics

import (
	"sort"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/linear_regression"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
)

// Пороги процентиля для сегментов
const (
	highSegmentPercentile   = 0.9
	mediumSegmentPercentile = 0.5
)

// ScoreRFM переводит показатели RFM в баллы 1-5 по процентилю внутри выборки
// и относит каждый день к сегменту high/medium/low. Порядок строк сохраняется.
func ScoreRFM(rows []models.RFMRow) ([]models.RFMScore, error) {
	if len(rows) == 0 {
		return nil, &models.EmptySelectionError{What: "сегменты RFM"}
	}

	recency := make([]float64, len(rows))
	frequency := make([]float64, len(rows))
	monetary := make([]float64, len(rows))
	for i, r := range rows {
		recency[i] = float64(r.Recency)
		frequency[i] = float64(r.Frequency)
		monetary[i] = float64(r.Monetary)
	}
	sortedRecency := sortedCopy(recency)
	sortedFrequency := sortedCopy(frequency)
	sortedMonetary := sortedCopy(monetary)

	scores := make([]models.RFMScore, len(rows))
	composite := make([]float64, len(rows))
	for i, r := range rows {
		s := models.RFMScore{
			Date: r.Date,
			// Меньшая давность - лучше, поэтому процентиль инвертируется
			R: quintile(1 - getPercentile(sortedRecency, recency[i])),
			F: quintile(getPercentile(sortedFrequency, frequency[i])),
			M: quintile(getPercentile(sortedMonetary, monetary[i])),
		}
		s.Score = linear_regression.RoundToThousandth(float64(s.R+s.F+s.M) / 3)
		composite[i] = s.Score
		scores[i] = s
	}

	sortedComposite := sortedCopy(composite)
	for i := range scores {
		percentile := getPercentile(sortedComposite, composite[i])
		scores[i].Percentile = linear_regression.RoundToThousandth(percentile)
		switch {
		case percentile >= highSegmentPercentile:
			scores[i].Segment = models.SegmentHigh
		case percentile >= mediumSegmentPercentile:
			scores[i].Segment = models.SegmentMedium
		default:
			scores[i].Segment = models.SegmentLow
		}
	}
	return scores, nil
}

// getPercentile возвращает процентиль значения (0..1) в отсортированном списке.
// Равные значения получают средний ранг своей группы.
func getPercentile(sortedValues []float64, value float64) float64 {
	if len(sortedValues) < 2 {
		return 1
	}

	first := sort.SearchFloat64s(sortedValues, value)
	last := sort.Search(len(sortedValues), func(i int) bool { return sortedValues[i] > value }) - 1

	var position float64
	switch {
	case first <= last:
		position = float64(first+last) / 2
	case last >= 0:
		// Значения нет в списке: позиция ближайшего меньшего
		position = float64(last)
	}
	return position / float64(len(sortedValues)-1)
}

// quintile переводит процентиль в балл 1-5
func quintile(percentile float64) int {
	score := 1 + int(percentile*5)
	if score > 5 {
		score = 5
	}
	return score
}

func sortedCopy(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return sorted
}
