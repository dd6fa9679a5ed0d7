package dosage

import (
	"fmt"
	"strings"
	"time"
)

// Weekday numbers days Monday first: MON is 0 and SUN is 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayCodes = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// Weekdays lists all days in order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(code string) (Weekday, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for i, c := range weekdayCodes {
		if c == normalized {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidWeekday, code)
}

// WeekdayOf converts from the time package's Sunday-first numbering.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Validate() error {
	if !w.Valid() {
		return fmt.Errorf("%w %d", ErrInvalidWeekday, int(w))
	}
	return nil
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayCodes[w]
}

func (w Weekday) MarshalText() ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return []byte(weekdayCodes[w]), nil
}

func (w *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
