package inr

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the accepted forms, date-time first. A value
// without an offset is read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.DateOnly,
}

// ParseTimestamp accepts a date-time or a date-only value. Anything else is an error.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DDTHH:MM or YYYY-MM-DD", ErrInvalidTimestamp, value)
}

// Timestamp decodes from text with ParseTimestamp and encodes as YYYY-MM-DDTHH:MM:SS.
type Timestamp struct {
	Time time.Time
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.Time.Format("2006-01-02T15:04:05")), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
