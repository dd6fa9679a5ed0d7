package inr

import "time"

// Point is one bar of the monthly INR chart.
type Point struct {
	Month   string  `json:"month"`
	Average float64 `json:"average"`
}

// Chart orders monthly averages from JAN to DEC, skipping absent months.
func Chart(averages map[string]float64) []Point {
	points := make([]Point, 0, len(averages))
	for m := time.January; m <= time.December; m++ {
		label := MonthLabel(m)
		if average, ok := averages[label]; ok {
			points = append(points, Point{Month: label, Average: average})
		}
	}
	return points
}
