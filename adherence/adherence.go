// Package adherence builds a patient's dosing and INR overview from the raw
// inputs held by the clinic store.
package adherence

import (
	"context"
	"fmt"

	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/errors"
	"github.com/tidepool-org/anticoag/inr"
)

var ErrTherapyNotConfigured = fmt.Errorf("%w: therapy start date or dosage schedule is missing", errors.BadRequest)

type Service interface {
	// Today is the current calendar day in the configured time zone.
	Today() dosage.Date
	MedicationDates(ctx context.Context, start dosage.Date, schedule dosage.Schedule) ([]dosage.Date, error)
	MissedDoses(ctx context.Context, patient Patient) ([]dosage.Date, error)
	Overview(ctx context.Context, patient Patient) (*Overview, error)
}

// Patient carries everything the overview needs. The engine never loads it itself.
type Patient struct {
	Id               string
	TherapyStartDate *dosage.Date
	Schedule         dosage.Schedule
	TakenDoses       *dosage.TakenDoses
	INRHistory       *inr.History
	TargetRange      *inr.TargetRange
}

func (p Patient) Validate() error {
	if p.TherapyStartDate == nil || p.TherapyStartDate.IsZero() || len(p.Schedule) == 0 {
		return ErrTherapyNotConfigured
	}
	if err := p.Schedule.Validate(); err != nil {
		return err
	}
	if p.TargetRange != nil {
		if err := p.TargetRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type Overview struct {
	RequestId           string             `json:"requestId"`
	PatientId           string             `json:"patientId,omitempty"`
	Today               dosage.Date        `json:"today"`
	TherapyStartDate    dosage.Date        `json:"therapyStartDate"`
	DueToday            bool               `json:"dueToday"`
	DosageToday         float64            `json:"dosageToday"`
	NextDue             *dosage.Date       `json:"nextDue,omitempty"`
	MedicationDateCount int                `json:"medicationDateCount"`
	TakenDoseCount      int                `json:"takenDoseCount"`
	AdherencePercent    float64            `json:"adherencePercent"`
	MissedDoses         []dosage.Date      `json:"missedDoses"`
	LatestMissed        []dosage.Date      `json:"latestMissed"`
	RecentMissed        []dosage.Date      `json:"recentMissed"`
	OlderMissed         []dosage.Date      `json:"olderMissed"`
	MonthlyINR          map[string]float64 `json:"monthlyInr"`
	Chart               []inr.Point        `json:"chart"`
	LatestINR           *LatestINR         `json:"latestInr,omitempty"`
}

type LatestINR struct {
	Report inr.Report  `json:"report"`
	Status *inr.Status `json:"status,omitempty"`
}
