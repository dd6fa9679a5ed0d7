package dosage_test

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/anticoag/dosage"
	dosageTest "github.com/tidepool-org/anticoag/dosage/test"
	"github.com/tidepool-org/anticoag/test"
)

var _ = Describe("Missed doses", func() {
	jan := func(day int) dosage.Date {
		return dosage.NewDate(2024, time.January, day)
	}

	Describe("MissedDoses", func() {
		It("removes the taken dates", func() {
			missed := dosage.MissedDoses([]dosage.Date{jan(1), jan(8), jan(15)}, []dosage.Date{jan(8)})
			Expect(missed).To(Equal([]dosage.Date{jan(1), jan(15)}))
		})

		It("treats every due date as missed when nothing was taken", func() {
			due := []dosage.Date{jan(15), jan(1), jan(8)}
			Expect(dosage.MissedDoses(due, nil)).To(Equal([]dosage.Date{jan(1), jan(8), jan(15)}))
			Expect(dosage.MissedDoses(due, []dosage.Date{})).To(Equal([]dosage.Date{jan(1), jan(8), jan(15)}))
		})

		It("collapses duplicate due dates", func() {
			missed := dosage.MissedDoses([]dosage.Date{jan(8), jan(1), jan(8)}, nil)
			Expect(missed).To(Equal([]dosage.Date{jan(1), jan(8)}))
		})

		It("ignores taken dates that were not due", func() {
			missed := dosage.MissedDoses([]dosage.Date{jan(1)}, []dosage.Date{jan(2), jan(3)})
			Expect(missed).To(Equal([]dosage.Date{jan(1)}))
		})

		It("is empty when every dose was taken", func() {
			missed := dosage.MissedDoses([]dosage.Date{jan(1), jan(8)}, []dosage.Date{jan(8), jan(1)})
			Expect(missed).ToNot(BeNil())
			Expect(missed).To(BeEmpty())
		})

		It("matches the same day however its fields were written", func() {
			start := dosage.Date{Year: 2024, Month: time.January, Day: 36}
			due, err := dosage.MedicationDates(start, dosage.Schedule{{Day: dosage.Monday, Dosage: 5}}, dosage.NewDate(2024, time.February, 12))
			Expect(err).ToNot(HaveOccurred())

			taken := []dosage.Date{dosage.NewDate(2024, time.February, 5), {Year: 2024, Month: time.March, Day: -17}}
			Expect(dosage.MissedDoses(due, taken)).To(BeEmpty())
			Expect(dosage.MissedDoses([]dosage.Date{start}, []dosage.Date{dosage.NewDate(2024, time.February, 5)})).To(BeEmpty())
			Expect(dosage.AdherencePercent([]dosage.Date{start}, []dosage.Date{dosage.NewDate(2024, time.February, 5)})).To(Equal(100.0))
		})

		It("leaves its inputs untouched", func() {
			due := []dosage.Date{jan(15), jan(1)}
			taken := []dosage.Date{jan(1)}
			dosage.MissedDoses(due, taken)
			Expect(due).To(Equal([]dosage.Date{jan(15), jan(1)}))
			Expect(taken).To(Equal([]dosage.Date{jan(1)}))
		})

		It("together with the taken due dates reconstructs the due dates", func() {
			for i := 0; i < 25; i++ {
				start := dosageTest.RandomDate()
				due, err := dosage.MedicationDates(start, dosageTest.RandomSchedule(), start.AddDays(test.Faker.IntBetween(0, 120)))
				Expect(err).ToNot(HaveOccurred())
				taken := dosageTest.RandomSubset(due)

				missed := dosage.MissedDoses(due, taken)
				Expect(missed).To(test.BeStrictlyAscending(dosage.Date.Compare))

				missedSet := mapset.NewSet(missed...)
				takenOnDue := mapset.NewSet(due...).Intersect(mapset.NewSet(taken...))
				Expect(missedSet.Intersect(takenOnDue).Cardinality()).To(BeZero())
				Expect(missedSet.Union(takenOnDue).Equal(mapset.NewSet(due...))).To(BeTrue())
			}
		})
	})

	Describe("Latest", func() {
		dates := []dosage.Date{jan(1), jan(2), jan(3), jan(4)}

		It("returns the last dates newest first", func() {
			Expect(dosage.Latest(dates, 2)).To(Equal([]dosage.Date{jan(4), jan(3)}))
		})

		It("returns everything when fewer dates exist", func() {
			Expect(dosage.Latest(dates, 10)).To(Equal([]dosage.Date{jan(4), jan(3), jan(2), jan(1)}))
		})

		It("returns nothing for a non positive limit", func() {
			Expect(dosage.Latest(dates, 0)).To(BeEmpty())
			Expect(dosage.Latest(dates, -3)).To(BeEmpty())
			Expect(dosage.Latest(nil, 3)).To(BeEmpty())
		})
	})

	Describe("AdherencePercent", func() {
		It("is the share of due dates that were taken", func() {
			due := []dosage.Date{jan(1), jan(8), jan(15), jan(22)}
			Expect(dosage.AdherencePercent(due, []dosage.Date{jan(8), jan(9)})).To(Equal(25.0))
		})

		It("is complete when nothing was due", func() {
			Expect(dosage.AdherencePercent(nil, nil)).To(Equal(100.0))
		})
	})
})
