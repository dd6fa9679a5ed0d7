package report

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/dosage"
)

const (
	SheetNameSummary     = "Summary"
	SheetNameMissedDoses = "Missed Doses"
	SheetNameINRMonthly  = "INR Monthly"

	MissedRecent = "Recent"
	MissedOlder  = "Older"
)

// Workbook renders an adherence overview for offline review.
type Workbook struct {
	overview *adherence.Overview
}

func NewWorkbook(overview *adherence.Overview) Workbook {
	return Workbook{overview: overview}
}

func (w Workbook) Generate() (*xlsx.File, error) {
	if w.overview == nil {
		return nil, fmt.Errorf("overview is required")
	}

	file := xlsx.NewFile()
	components := []func(file *xlsx.File) error{
		w.addSummarySheet,
		w.addMissedDosesSheet,
		w.addINRMonthlySheet,
	}
	for _, fn := range components {
		if err := fn(file); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func (w Workbook) addSummarySheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameSummary)
	if err != nil {
		return err
	}

	o := w.overview
	addRow(sh, "Patient", o.PatientId)
	addRow(sh, "Generated For", o.Today.String())
	addRow(sh, "Therapy Start Date", o.TherapyStartDate.String())
	addRow(sh, "Due Today", yesNo(o.DueToday))
	addRow(sh, "Dosage Today", o.DosageToday)
	if o.NextDue != nil {
		addRow(sh, "Next Due", o.NextDue.String())
	}
	addRow(sh, "Scheduled Doses", o.MedicationDateCount)
	addRow(sh, "Taken Doses", o.TakenDoseCount)
	addRow(sh, "Missed Doses", len(o.MissedDoses))
	addRow(sh, "Missed In Last Window", len(o.RecentMissed))
	addRow(sh, "Adherence %", fmt.Sprintf("%.1f", o.AdherencePercent))
	if o.LatestINR != nil {
		addRow(sh, "Latest INR", o.LatestINR.Report.Value)
		addRow(sh, "Latest INR Date", o.LatestINR.Report.Timestamp.Format("2006-01-02 15:04"))
		if o.LatestINR.Status != nil {
			addRow(sh, "Latest INR Status", string(*o.LatestINR.Status))
		}
	}
	return nil
}

func (w Workbook) addMissedDosesSheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameMissedDoses)
	if err != nil {
		return err
	}

	addRow(sh, "Date", "Weekday", "Window")
	recent := make(map[dosage.Date]struct{}, len(w.overview.RecentMissed))
	for _, d := range w.overview.RecentMissed {
		recent[d] = struct{}{}
	}
	for _, d := range w.overview.MissedDoses {
		window := MissedOlder
		if _, ok := recent[d]; ok {
			window = MissedRecent
		}
		addRow(sh, d.String(), d.Weekday().String(), window)
	}
	return nil
}

func (w Workbook) addINRMonthlySheet(file *xlsx.File) error {
	sh, err := file.AddSheet(SheetNameINRMonthly)
	if err != nil {
		return err
	}

	addRow(sh, "Month", "Average INR")
	for _, point := range w.overview.Chart {
		addRow(sh, point.Month, point.Average)
	}
	return nil
}

func addRow(sh *xlsx.Sheet, values ...interface{}) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
