package adherence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"

	"github.com/tidepool-org/anticoag/clock"
	"github.com/tidepool-org/anticoag/config"
	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/inr"
)

type service struct {
	clock    clock.Clock
	location *time.Location
	logger   *zap.SugaredLogger

	recentWindowDays  int
	latestMissedLimit int

	// Calendars keyed by start date, weekday set and today.
	calendars *lru.Cache
}

var _ Service = &service{}

func NewService(cfg *config.Config, clk clock.Clock, logger *zap.SugaredLogger) (Service, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	calendars, err := lru.New(cfg.CalendarCacheSize)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar cache: %w", err)
	}

	return &service{
		clock:             clk,
		location:          location,
		logger:            logger,
		recentWindowDays:  cfg.RecentWindowDays,
		latestMissedLimit: cfg.LatestMissedLimit,
		calendars:         calendars,
	}, nil
}

func (s *service) Today() dosage.Date {
	return dosage.Today(s.clock.Now(), s.location)
}

func (s *service) MedicationDates(ctx context.Context, start dosage.Date, schedule dosage.Schedule) ([]dosage.Date, error) {
	return s.medicationDates(start, schedule, s.Today())
}

func (s *service) MissedDoses(ctx context.Context, patient Patient) ([]dosage.Date, error) {
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	due, err := s.medicationDates(*patient.TherapyStartDate, patient.Schedule, s.Today())
	if err != nil {
		return nil, err
	}
	return dosage.MissedDoses(due, patient.TakenDoses.Dates()), nil
}

func (s *service) Overview(ctx context.Context, patient Patient) (*Overview, error) {
	requestId := uuid.NewString()
	logger := s.logger.With("requestId", requestId, "patientId", patient.Id)

	if err := patient.Validate(); err != nil {
		logger.Infow("rejected adherence overview", "error", err)
		return nil, err
	}

	today := s.Today()
	start := *patient.TherapyStartDate

	due, err := s.medicationDates(start, patient.Schedule, today)
	if err != nil {
		return nil, err
	}
	dueToday, err := dosage.IsDueOn(start, patient.Schedule, today)
	if err != nil {
		return nil, err
	}

	taken := patient.TakenDoses.Dates()
	missed := dosage.MissedDoses(due, taken)
	recent, older := dosage.PartitionWithin(missed, today, s.recentWindowDays)

	monthly, err := patient.INRHistory.MonthlyAverages()
	if err != nil {
		logger.Infow("rejected inr history", "error", err)
		return nil, err
	}

	overview := &Overview{
		RequestId:           requestId,
		PatientId:           patient.Id,
		Today:               today,
		TherapyStartDate:    start,
		DueToday:            dueToday,
		MedicationDateCount: len(due),
		TakenDoseCount:      len(taken),
		AdherencePercent:    dosage.AdherencePercent(due, taken),
		MissedDoses:         missed,
		LatestMissed:        dosage.Latest(missed, s.latestMissedLimit),
		RecentMissed:        recent,
		OlderMissed:         older,
		MonthlyINR:          monthly,
		Chart:               inr.Chart(monthly),
	}
	if dueToday {
		overview.DosageToday = patient.Schedule.DosageOn(today.Weekday())
	}
	if next, ok, err := dosage.NextDue(start, patient.Schedule, today); err != nil {
		return nil, err
	} else if ok {
		overview.NextDue = &next
	}
	if report, ok := patient.INRHistory.Latest(); ok {
		overview.LatestINR = &LatestINR{Report: report}
		if patient.TargetRange != nil {
			status := patient.TargetRange.Classify(report.Value)
			overview.LatestINR.Status = &status
		}
	}

	logger.Debugw("computed adherence overview",
		"today", today,
		"due", len(due),
		"missed", len(missed),
		"recentMissed", len(recent),
		"months", len(monthly),
	)
	return overview, nil
}

// medicationDates serves calendars from the cache. Callers receive a copy
// so they cannot modify the cached slice.
func (s *service) medicationDates(start dosage.Date, schedule dosage.Schedule, today dosage.Date) ([]dosage.Date, error) {
	days, err := schedule.Weekdays()
	if err != nil {
		return nil, err
	}

	key := calendarKey(start, days.ToSlice(), today)
	if cached, ok := s.calendars.Get(key); ok {
		return deepcopy.Copy(cached).([]dosage.Date), nil
	}

	dates, err := dosage.MedicationDates(start, schedule, today)
	if err != nil {
		return nil, err
	}
	s.calendars.Add(key, dates)
	return deepcopy.Copy(dates).([]dosage.Date), nil
}

func calendarKey(start dosage.Date, days []dosage.Weekday, today dosage.Date) string {
	var mask [7]byte
	for i := range mask {
		mask[i] = '-'
	}
	for _, day := range days {
		mask[day] = 'x'
	}
	return strings.Join([]string{start.String(), string(mask[:]), today.String()}, "|")
}
