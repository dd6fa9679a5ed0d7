package test

import (
	"time"

	"github.com/tidepool-org/anticoag/inr"
	"github.com/tidepool-org/anticoag/test"
)

var locations = []string{"Clinic Lab", "Home Monitor", "City Hospital"}

func RandomReport() inr.Report {
	from := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	return inr.Report{
		Timestamp:      test.RandomTimeBetween(from, from.AddDate(2, 0, 0)).Truncate(time.Minute),
		Value:          test.RandomFloatBetween(0.8, 4.5),
		LocationOfTest: test.Pick(locations),
		FileName:       test.Faker.UUID().V4() + ".pdf",
	}
}

// RandomReportsIn returns count reports dated within the given month.
func RandomReportsIn(year int, month time.Month, count int) []inr.Report {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	reports := make([]inr.Report, 0, count)
	for i := 0; i < count; i++ {
		report := RandomReport()
		report.Timestamp = test.RandomTimeBetween(from, from.AddDate(0, 1, 0))
		reports = append(reports, report)
	}
	return reports
}
