package dosage

import (
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// TakenDoses is the set of days on which the patient confirmed a dose.
// A day can be recorded once. The zero value is an empty set ready for use,
// and it is safe for concurrent use.
type TakenDoses struct {
	once  sync.Once
	dates mapset.Set[Date]
}

// NewTakenDoses fails if the same day appears twice.
func NewTakenDoses(dates ...Date) (*TakenDoses, error) {
	taken := &TakenDoses{}
	for _, date := range dates {
		if err := taken.Record(date); err != nil {
			return nil, err
		}
	}
	return taken, nil
}

func (t *TakenDoses) set() mapset.Set[Date] {
	t.once.Do(func() {
		t.dates = mapset.NewSet[Date]()
	})
	return t.dates
}

func (t *TakenDoses) Record(date Date) error {
	if date.IsZero() {
		return fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	date = date.Normalize()
	if !t.set().Add(date) {
		return fmt.Errorf("%w on %s", ErrDoseAlreadyTaken, date)
	}
	return nil
}

func (t *TakenDoses) Has(date Date) bool {
	return t != nil && t.set().Contains(date.Normalize())
}

func (t *TakenDoses) Len() int {
	if t == nil {
		return 0
	}
	return t.set().Cardinality()
}

// Dates returns the recorded days in ascending order. A nil set has none.
func (t *TakenDoses) Dates() []Date {
	if t == nil {
		return []Date{}
	}
	return sortedSet(t.set())
}
