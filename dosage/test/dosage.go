package test

import (
	"time"

	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/test"
)

var therapyEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func RandomDate() dosage.Date {
	return dosage.DateOf(test.RandomTimeBetween(therapyEpoch, therapyEpoch.AddDate(4, 0, 0)))
}

func RandomWeekday() dosage.Weekday {
	return test.Pick(dosage.Weekdays)
}

func RandomScheduleEntry() dosage.ScheduleEntry {
	return dosage.ScheduleEntry{
		Day:    RandomWeekday(),
		Dosage: test.RandomFloatBetween(0.5, 10),
	}
}

func RandomSchedule() dosage.Schedule {
	count := test.Faker.IntBetween(1, 5)
	schedule := make(dosage.Schedule, 0, count)
	for i := 0; i < count; i++ {
		schedule = append(schedule, RandomScheduleEntry())
	}
	return schedule
}

// RandomSubset picks each date with probability one half.
func RandomSubset(dates []dosage.Date) []dosage.Date {
	subset := make([]dosage.Date, 0, len(dates))
	for _, d := range dates {
		if test.Faker.Bool() {
			subset = append(subset, d)
		}
	}
	return subset
}
