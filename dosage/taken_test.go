package dosage_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/errors"
)

var _ = Describe("TakenDoses", func() {
	jan := func(day int) dosage.Date {
		return dosage.NewDate(2024, time.January, day)
	}

	It("rejects recording the same day twice", func() {
		taken, err := dosage.NewTakenDoses(jan(1))
		Expect(err).ToNot(HaveOccurred())

		err = taken.Record(jan(1))
		Expect(err).To(MatchError(dosage.ErrDoseAlreadyTaken))
		Expect(err).To(MatchError(errors.Duplicate))
		Expect(taken.Len()).To(Equal(1))
	})

	It("rejects duplicates passed to the constructor", func() {
		_, err := dosage.NewTakenDoses(jan(1), jan(2), jan(1))
		Expect(err).To(MatchError(dosage.ErrDoseAlreadyTaken))
	})

	It("rejects empty dates", func() {
		taken, err := dosage.NewTakenDoses()
		Expect(err).ToNot(HaveOccurred())
		Expect(taken.Record(dosage.Date{})).To(MatchError(dosage.ErrInvalidDate))
	})

	It("lists the days in ascending order", func() {
		taken, err := dosage.NewTakenDoses(jan(9), jan(2), jan(5))
		Expect(err).ToNot(HaveOccurred())
		Expect(taken.Dates()).To(Equal([]dosage.Date{jan(2), jan(5), jan(9)}))
		Expect(taken.Has(jan(5))).To(BeTrue())
		Expect(taken.Has(jan(6))).To(BeFalse())
	})

	It("treats a nil set as empty", func() {
		var taken *dosage.TakenDoses
		Expect(taken.Len()).To(BeZero())
		Expect(taken.Has(jan(1))).To(BeFalse())
		Expect(taken.Dates()).To(BeEmpty())
	})

	It("is usable as a zero value", func() {
		var taken dosage.TakenDoses
		Expect(taken.Len()).To(BeZero())
		Expect(taken.Has(jan(1))).To(BeFalse())
		Expect(taken.Dates()).To(BeEmpty())

		Expect(taken.Record(jan(1))).To(Succeed())
		Expect(taken.Record(jan(1))).To(MatchError(dosage.ErrDoseAlreadyTaken))
		Expect(taken.Dates()).To(Equal([]dosage.Date{jan(1)}))

		empty := &dosage.TakenDoses{}
		Expect(dosage.MissedDoses([]dosage.Date{jan(1)}, empty.Dates())).To(Equal([]dosage.Date{jan(1)}))
	})

	It("stores days in their normalized form", func() {
		taken, err := dosage.NewTakenDoses(dosage.Date{Year: 2024, Month: time.January, Day: 32})
		Expect(err).ToNot(HaveOccurred())
		Expect(taken.Has(dosage.NewDate(2024, time.February, 1))).To(BeTrue())
		Expect(taken.Record(dosage.NewDate(2024, time.February, 1))).To(MatchError(dosage.ErrDoseAlreadyTaken))
		Expect(taken.Dates()).To(Equal([]dosage.Date{dosage.NewDate(2024, time.February, 1)}))
	})

	It("accepts exactly one of several concurrent recordings of a day", func() {
		taken, err := dosage.NewTakenDoses()
		Expect(err).ToNot(HaveOccurred())

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				if taken.Record(jan(3)) == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		Expect(succeeded).To(Equal(1))
	})
})
