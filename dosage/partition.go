package dosage

import "slices"

// RecentWindowDays is the length of the trailing window used by PartitionRecent.
const RecentWindowDays = 7

// PartitionRecent splits missed dates into those within [now-7 days, now] and the rest.
func PartitionRecent(missed []Date, now Date) (recent, older []Date) {
	return PartitionWithin(missed, now, RecentWindowDays)
}

// PartitionWithin splits dates into those within [now-days, now], both ends
// inclusive, and the rest. Dates after now are not recent. Both results are
// new ascending slices; the input is left untouched.
func PartitionWithin(missed []Date, now Date, days int) (recent, older []Date) {
	now = now.Normalize()
	from := now.AddDays(-days)

	recent = []Date{}
	older = []Date{}
	for _, date := range normalizeAll(missed) {
		if !date.Before(from) && !date.After(now) {
			recent = append(recent, date)
		} else {
			older = append(older, date)
		}
	}

	slices.SortFunc(recent, Date.Compare)
	slices.SortFunc(older, Date.Compare)
	return recent, older
}
