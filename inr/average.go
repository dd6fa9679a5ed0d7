package inr

import (
	"fmt"
	"time"
)

// monthLabels is indexed by time.Month.
var monthLabels = [...]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// MonthLabel returns JAN through DEC.
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthLabels[m]
}

// MonthlyAverages averages report values per calendar month. The year is not
// part of the key, so the same month of different years shares one bucket.
// Months without reports are absent. An empty history yields the Sentinel's
// bucket. Any invalid report fails the whole aggregation.
func MonthlyAverages(reports []Report) (map[string]float64, error) {
	if len(reports) == 0 {
		reports = []Report{Sentinel}
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for i, report := range reports {
		if err := report.Validate(); err != nil {
			return nil, fmt.Errorf("report %d: %w", i, err)
		}
		month := MonthLabel(report.Timestamp.Month())
		sums[month] += report.Value
		counts[month]++
	}

	averages := make(map[string]float64, len(sums))
	for month, sum := range sums {
		averages[month] = sum / float64(counts[month])
	}
	return averages, nil
}
