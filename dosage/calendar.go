package dosage

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// MedicationDates lists every day from start through now, both inclusive, whose
// weekday appears in schedule. The result is ascending and free of duplicates.
// It is empty when start is after now or the schedule is empty. An invalid
// schedule entry aborts the whole calculation.
func MedicationDates(start Date, schedule Schedule, now Date) ([]Date, error) {
	days, err := schedule.Weekdays()
	if err != nil {
		return nil, err
	}

	start, now = start.Normalize(), now.Normalize()
	dates := []Date{}
	if days.Cardinality() == 0 || start.After(now) {
		return dates, nil
	}

	for current := start; !current.After(now); current = current.AddDays(1) {
		if days.Contains(current.Weekday()) {
			dates = append(dates, current)
		}
	}
	return dates, nil
}

// IsDueOn reports whether a dose is due on day for a therapy beginning at start.
func IsDueOn(start Date, schedule Schedule, day Date) (bool, error) {
	days, err := schedule.Weekdays()
	if err != nil {
		return false, err
	}
	start, day = start.Normalize(), day.Normalize()
	if day.Before(start) {
		return false, nil
	}
	return days.Contains(day.Weekday()), nil
}

// NextDue returns the first due day strictly after the given day. It reports
// false when the schedule has no days.
func NextDue(start Date, schedule Schedule, after Date) (Date, bool, error) {
	days, err := schedule.Weekdays()
	if err != nil {
		return Date{}, false, err
	}
	if days.Cardinality() == 0 {
		return Date{}, false, nil
	}

	start = start.Normalize()
	candidate := after.AddDays(1)
	if candidate.Before(start) {
		candidate = start
	}
	for i := 0; i < len(Weekdays); i++ {
		if days.Contains(candidate.Weekday()) {
			return candidate, true, nil
		}
		candidate = candidate.AddDays(1)
	}
	return Date{}, false, nil
}

// Sorted returns the distinct dates in ascending order. The input is not modified.
func Sorted(dates []Date) []Date {
	return sortedSet(mapset.NewThreadUnsafeSet(normalizeAll(dates)...))
}

func sortedSet(set mapset.Set[Date]) []Date {
	result := set.ToSlice()
	slices.SortFunc(result, Date.Compare)
	return result
}
