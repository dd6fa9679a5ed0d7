// Package dosage derives a patient's medication calendar from a weekly dosage
// schedule and compares it with the doses the patient recorded as taken.
//
// All functions are pure. "Today" is always passed in explicitly.
package dosage

import (
	"fmt"

	"github.com/tidepool-org/anticoag/errors"
)

var (
	ErrInvalidWeekday   = fmt.Errorf("%w: invalid weekday", errors.BadRequest)
	ErrInvalidDate      = fmt.Errorf("%w: invalid date", errors.BadRequest)
	ErrInvalidDosage    = fmt.Errorf("%w: dosage must not be negative", errors.ConstraintViolation)
	ErrDoseAlreadyTaken = fmt.Errorf("%w: dose already recorded", errors.Duplicate)
)
