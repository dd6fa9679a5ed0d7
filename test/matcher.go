package test

import (
	"cmp"
	"slices"

	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
)

// BeStrictlyAscending succeeds for slices whose elements increase and never repeat.
func BeStrictlyAscending[T any](compare func(a, b T) int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(actual []T) (bool, error) {
		for i := 1; i < len(actual); i++ {
			if compare(actual[i-1], actual[i]) >= 0 {
				return false, nil
			}
		}
		return true, nil
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} be strictly ascending")
}

// BeAscending succeeds for slices sorted in non-decreasing order.
func BeAscending[T cmp.Ordered]() types.GomegaMatcher {
	return gcustom.MakeMatcher(func(actual []T) (bool, error) {
		return slices.IsSorted(actual), nil
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} be sorted")
}
