package dosage

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// MissedDoses returns the due dates that are not among the taken dates, ascending.
// Duplicate due dates count once. When nothing was taken every due date is missed.
func MissedDoses(due []Date, taken []Date) []Date {
	missed := mapset.NewThreadUnsafeSet(normalizeAll(due)...)
	if len(taken) > 0 {
		missed = missed.Difference(mapset.NewThreadUnsafeSet(normalizeAll(taken)...))
	}
	return sortedSet(missed)
}

// Latest returns the last n dates of an ascending slice, most recent first.
// The whole slice has to be passed in so that the window ends at the true last date.
func Latest(dates []Date, n int) []Date {
	if n <= 0 || len(dates) == 0 {
		return []Date{}
	}
	if n > len(dates) {
		n = len(dates)
	}

	latest := make([]Date, 0, n)
	for i := len(dates) - 1; i >= len(dates)-n; i-- {
		latest = append(latest, dates[i])
	}
	return latest
}

// AdherencePercent is the share of due dates that were taken, 0 to 100.
// With nothing due the patient is fully adherent.
func AdherencePercent(due []Date, taken []Date) float64 {
	dueSet := mapset.NewThreadUnsafeSet(normalizeAll(due)...)
	if dueSet.Cardinality() == 0 {
		return 100
	}
	takenOnDue := dueSet.Intersect(mapset.NewThreadUnsafeSet(normalizeAll(taken)...))
	return float64(takenOnDue.Cardinality()) / float64(dueSet.Cardinality()) * 100
}
