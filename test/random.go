package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

// Source follows the ginkgo seed, so `ginkgo --seed N` replays the same random fixtures.
var Source = rand.NewSource(ginkgo.GinkgoRandomSeed())

var (
	Faker = faker.NewWithSeed(Source)
	Rand  = rand.New(Source)
)

// Pick returns a random element of a non-empty slice.
func Pick[T any](values []T) T {
	return values[Rand.Intn(len(values))]
}

// RandomTimeBetween returns a UTC instant in [from, to).
func RandomTimeBetween(from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from.UTC()
	}
	return from.Add(time.Duration(Rand.Int63n(int64(span)))).UTC()
}

// RandomFloatBetween returns a value in [min, max) truncated to two decimals,
// the precision of lab results and tablet strengths.
func RandomFloatBetween(min, max float64) float64 {
	v := min + Rand.Float64()*(max-min)
	return float64(int(v*100)) / 100
}
