package inr

import (
	"fmt"
	"math"
)

type Status string

const (
	StatusBelow  Status = "below"
	StatusWithin Status = "within"
	StatusAbove  Status = "above"
)

// TargetRange is the therapeutic INR interval prescribed for a patient, both ends inclusive.
type TargetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (t TargetRange) Validate() error {
	if t.Min < 0 || math.IsNaN(t.Min) || math.IsNaN(t.Max) || t.Min > t.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, t.Min, t.Max)
	}
	return nil
}

func (t TargetRange) Classify(value float64) Status {
	switch {
	case value < t.Min:
		return StatusBelow
	case value > t.Max:
		return StatusAbove
	default:
		return StatusWithin
	}
}

func InRange(value, min, max float64) bool {
	return TargetRange{Min: min, Max: max}.Classify(value) == StatusWithin
}
