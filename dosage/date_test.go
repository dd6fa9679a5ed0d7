package dosage_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/errors"
)

var _ = Describe("Date", func() {
	DescribeTable("parses every accepted layout",
		func(value string, expected dosage.Date) {
			parsed, err := dosage.ParseDate(value)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(expected))
		},
		Entry("day first with dashes", "15-01-2024", dosage.NewDate(2024, time.January, 15)),
		Entry("ISO date", "2024-01-15", dosage.NewDate(2024, time.January, 15)),
		Entry("day first with slashes", "15/01/2024", dosage.NewDate(2024, time.January, 15)),
		Entry("surrounding whitespace", " 2024-02-29 ", dosage.NewDate(2024, time.February, 29)),
	)

	DescribeTable("rejects malformed values",
		func(value string) {
			_, err := dosage.ParseDate(value)
			Expect(err).To(MatchError(dosage.ErrInvalidDate))
			Expect(errors.IsValidation(err)).To(BeTrue())
		},
		Entry("empty", ""),
		Entry("time of day", "2024-01-15T10:00"),
		Entry("impossible day", "31-02-2024"),
		Entry("two digit year", "15-01-24"),
	)

	It("uses Monday as the first weekday", func() {
		Expect(dosage.NewDate(2024, time.January, 1).Weekday()).To(Equal(dosage.Monday))
		Expect(dosage.NewDate(2024, time.January, 7).Weekday()).To(Equal(dosage.Sunday))
	})

	It("normalizes overflowing days", func() {
		Expect(dosage.NewDate(2024, time.January, 32)).To(Equal(dosage.NewDate(2024, time.February, 1)))
		Expect(dosage.NewDate(2024, time.March, 1).AddDays(-1)).To(Equal(dosage.NewDate(2024, time.February, 29)))
	})

	It("compares by calendar order", func() {
		a := dosage.NewDate(2023, time.December, 31)
		b := dosage.NewDate(2024, time.January, 1)
		Expect(a.Before(b)).To(BeTrue())
		Expect(b.After(a)).To(BeTrue())
		Expect(a.Compare(a)).To(Equal(0))
		Expect(a.DaysUntil(b)).To(Equal(1))
		Expect(b.DaysUntil(a)).To(Equal(-1))
	})

	It("takes the day in the requested location", func() {
		now := time.Date(2024, time.January, 15, 23, 30, 0, 0, time.UTC)
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		Expect(err).ToNot(HaveOccurred())
		Expect(dosage.Today(now, time.UTC)).To(Equal(dosage.NewDate(2024, time.January, 15)))
		Expect(dosage.Today(now, tokyo)).To(Equal(dosage.NewDate(2024, time.January, 16)))
	})

	It("round trips through JSON in the day first form", func() {
		date := dosage.NewDate(2024, time.January, 8)
		body, err := json.Marshal(date)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(Equal(`"08-01-2024"`))

		var decoded dosage.Date
		Expect(json.Unmarshal([]byte(`"2024-01-08"`), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(date))
	})
})

var _ = Describe("Weekday", func() {
	It("parses codes regardless of case", func() {
		day, err := dosage.ParseWeekday(" wed ")
		Expect(err).ToNot(HaveOccurred())
		Expect(day).To(Equal(dosage.Wednesday))
		Expect(day.String()).To(Equal("WED"))
	})

	It("rejects unknown codes", func() {
		_, err := dosage.ParseWeekday("MONDAY")
		Expect(err).To(MatchError(dosage.ErrInvalidWeekday))
	})

	It("maps from the time package numbering", func() {
		Expect(dosage.WeekdayOf(time.Sunday)).To(Equal(dosage.Sunday))
		Expect(dosage.WeekdayOf(time.Monday)).To(Equal(dosage.Monday))
		Expect(dosage.WeekdayOf(time.Saturday)).To(Equal(dosage.Saturday))
	})

	It("does not marshal out of range values", func() {
		_, err := json.Marshal(dosage.Weekday(9))
		Expect(err).To(HaveOccurred())
	})

	It("decodes schedule entries from JSON", func() {
		var schedule dosage.Schedule
		Expect(json.Unmarshal([]byte(`[{"day":"MON","dosage":5},{"day":"fri","dosage":2.5}]`), &schedule)).To(Succeed())
		Expect(schedule).To(Equal(dosage.Schedule{
			{Day: dosage.Monday, Dosage: 5},
			{Day: dosage.Friday, Dosage: 2.5},
		}))
	})

	It("fails to decode schedule entries with unknown days", func() {
		var schedule dosage.Schedule
		err := json.Unmarshal([]byte(`[{"day":"XYZ","dosage":5}]`), &schedule)
		Expect(err).To(MatchError(dosage.ErrInvalidWeekday))
	})
})
