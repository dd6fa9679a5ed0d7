package dosage

import (
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"
)

// ScheduleEntry is one dose in the weekly pattern. A schedule may list the
// same day more than once.
type ScheduleEntry struct {
	Day    Weekday `json:"day"`
	Dosage float64 `json:"dosage"`
}

func NewScheduleEntry(day string, dosage float64) (ScheduleEntry, error) {
	weekday, err := ParseWeekday(day)
	if err != nil {
		return ScheduleEntry{}, err
	}
	entry := ScheduleEntry{Day: weekday, Dosage: dosage}
	if err := entry.Validate(); err != nil {
		return ScheduleEntry{}, err
	}
	return entry, nil
}

func (e ScheduleEntry) Validate() error {
	if err := e.Day.Validate(); err != nil {
		return err
	}
	if e.Dosage < 0 || math.IsNaN(e.Dosage) || math.IsInf(e.Dosage, 0) {
		return fmt.Errorf("%w: %v on %s", ErrInvalidDosage, e.Dosage, e.Day)
	}
	return nil
}

type Schedule []ScheduleEntry

// Validate checks every entry and reports the first invalid one by position.
func (s Schedule) Validate() error {
	for i, entry := range s {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("schedule entry %d: %w", i, err)
		}
	}
	return nil
}

// Weekdays returns the distinct days on which a dose is due.
func (s Schedule) Weekdays() (mapset.Set[Weekday], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	days := mapset.NewThreadUnsafeSet[Weekday]()
	for _, entry := range s {
		days.Add(entry.Day)
	}
	return days, nil
}

// DosageOn sums the amounts scheduled on day.
func (s Schedule) DosageOn(day Weekday) float64 {
	total := 0.0
	for _, entry := range s {
		if entry.Day == day {
			total += entry.Dosage
		}
	}
	return total
}

// WeeklyDosage sums the amounts of all entries.
func (s Schedule) WeeklyDosage() float64 {
	total := 0.0
	for _, entry := range s {
		total += entry.Dosage
	}
	return total
}
