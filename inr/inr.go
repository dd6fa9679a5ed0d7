// Package inr aggregates International Normalized Ratio lab readings.
package inr

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/tidepool-org/anticoag/errors"
)

var (
	ErrInvalidTimestamp = fmt.Errorf("%w: invalid report timestamp", errors.BadRequest)
	ErrInvalidValue     = fmt.Errorf("%w: inr value must not be negative", errors.ConstraintViolation)
	ErrInvalidRange     = fmt.Errorf("%w: invalid target inr range", errors.ConstraintViolation)
)

// Report is a single INR lab reading.
type Report struct {
	Timestamp      time.Time
	Value          float64
	LocationOfTest string
	FileName       string
}

type reportJSON struct {
	Date           Timestamp `json:"date"`
	Value          float64   `json:"inr_value"`
	LocationOfTest string    `json:"location_of_test,omitempty"`
	FileName       string    `json:"file_name,omitempty"`
}

// Sentinel stands in for an empty history. Its month bucket averages to zero,
// which callers read as "no data".
var Sentinel = Report{
	Timestamp: time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
	Value:     0,
}

// NewReport parses the timestamp and validates the value.
func NewReport(timestamp string, value float64) (Report, error) {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return Report{}, err
	}
	report := Report{Timestamp: t, Value: value}
	if err := report.Validate(); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (r Report) Validate() error {
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is missing", ErrInvalidTimestamp)
	}
	if r.Value < 0 || math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, r.Value)
	}
	return nil
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Date:           Timestamp{Time: r.Timestamp},
		Value:          r.Value,
		LocationOfTest: r.LocationOfTest,
		FileName:       r.FileName,
	})
}

// UnmarshalJSON rejects reports with a missing or unparseable date.
func (r *Report) UnmarshalJSON(data []byte) error {
	var raw reportJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	report := Report{
		Timestamp:      raw.Date.Time,
		Value:          raw.Value,
		LocationOfTest: raw.LocationOfTest,
		FileName:       raw.FileName,
	}
	if err := report.Validate(); err != nil {
		return err
	}
	*r = report
	return nil
}
