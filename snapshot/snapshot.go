// Package snapshot reads patient documents exported from the clinic store
// (mongoexport output, canonical or relaxed Extended JSON) and turns them into
// adherence inputs.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/errors"
	"github.com/tidepool-org/anticoag/inr"
)

var ErrInvalidDocument = fmt.Errorf("%w: invalid patient document", errors.BadRequest)

// Patient mirrors a document of the patients collection.
type Patient struct {
	Id               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Doctor           *string            `bson:"doctor,omitempty"`
	Caretaker        *string            `bson:"caretaker,omitempty"`
	Therapy          *string            `bson:"therapy,omitempty"`
	TherapyStartDate bson.RawValue      `bson:"therapy_start_date,omitempty"`
	DosageSchedule   []ScheduleEntry    `bson:"dosage_schedule,omitempty"`
	TakenDoses       []bson.RawValue    `bson:"taken_doses,omitempty"`
	INRReports       []INRReport        `bson:"inr_reports,omitempty"`
	TargetINRMin     *float64           `bson:"target_inr_min,omitempty"`
	TargetINRMax     *float64           `bson:"target_inr_max,omitempty"`
}

type ScheduleEntry struct {
	Day    string  `bson:"day"`
	Dosage float64 `bson:"dosage"`
}

type INRReport struct {
	Value          float64       `bson:"inr_value"`
	LocationOfTest string        `bson:"location_of_test,omitempty"`
	Date           bson.RawValue `bson:"date"`
	FileName       string        `bson:"file_name,omitempty"`
}

// Decode reads a single patient document.
func Decode(data []byte) (*Patient, error) {
	patient := &Patient{}
	if err := bson.UnmarshalExtJSON(data, false, patient); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return patient, nil
}

// DecodeMany reads a JSON array of patient documents.
func DecodeMany(data []byte) ([]*Patient, error) {
	var documents []json.RawMessage
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("%w: expected an array of documents: %w", ErrInvalidDocument, err)
	}

	patients := make([]*Patient, 0, len(documents))
	for i, document := range documents {
		patient, err := Decode(document)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		patients = append(patients, patient)
	}
	return patients, nil
}

// ToAdherence validates the document and converts it. Any malformed weekday,
// date or report aborts the conversion.
func (p *Patient) ToAdherence() (adherence.Patient, error) {
	result := adherence.Patient{
		Id: p.displayId(),
	}

	if present(p.TherapyStartDate) {
		start, err := dateValue(p.TherapyStartDate)
		if err != nil {
			return adherence.Patient{}, fmt.Errorf("therapy_start_date: %w", err)
		}
		result.TherapyStartDate = &start
	}

	schedule, err := p.Schedule()
	if err != nil {
		return adherence.Patient{}, err
	}
	result.Schedule = schedule

	taken, err := dosage.NewTakenDoses()
	if err != nil {
		return adherence.Patient{}, err
	}
	for i, raw := range p.TakenDoses {
		date, err := dateValue(raw)
		if err != nil {
			return adherence.Patient{}, fmt.Errorf("taken_doses %d: %w", i, err)
		}
		if err := taken.Record(date); err != nil {
			return adherence.Patient{}, fmt.Errorf("taken_doses %d: %w", i, err)
		}
	}
	result.TakenDoses = taken

	history, err := p.History()
	if err != nil {
		return adherence.Patient{}, err
	}
	result.INRHistory = history

	if p.TargetINRMin != nil && p.TargetINRMax != nil {
		result.TargetRange = &inr.TargetRange{Min: *p.TargetINRMin, Max: *p.TargetINRMax}
	}

	return result, nil
}

func (p *Patient) Schedule() (dosage.Schedule, error) {
	schedule := make(dosage.Schedule, 0, len(p.DosageSchedule))
	for i, entry := range p.DosageSchedule {
		converted, err := dosage.NewScheduleEntry(entry.Day, entry.Dosage)
		if err != nil {
			return nil, fmt.Errorf("dosage_schedule %d: %w", i, err)
		}
		schedule = append(schedule, converted)
	}
	return schedule, nil
}

func (p *Patient) History() (*inr.History, error) {
	history, err := inr.NewHistory()
	if err != nil {
		return nil, err
	}
	for i, report := range p.INRReports {
		timestamp, err := timestampValue(report.Date)
		if err != nil {
			return nil, fmt.Errorf("inr_reports %d: %w", i, err)
		}
		err = history.Append(inr.Report{
			Timestamp:      timestamp,
			Value:          report.Value,
			LocationOfTest: report.LocationOfTest,
			FileName:       report.FileName,
		})
		if err != nil {
			return nil, fmt.Errorf("inr_reports %d: %w", i, err)
		}
	}
	return history, nil
}

func (p *Patient) displayId() string {
	if p.Id.IsZero() {
		return p.Name
	}
	return p.Id.Hex()
}

func present(raw bson.RawValue) bool {
	return raw.Type != 0 && raw.Type != bsontype.Null && raw.Type != bsontype.Undefined
}

// dateValue accepts a date string in any layout dosage.ParseDate knows or a BSON datetime.
func dateValue(raw bson.RawValue) (dosage.Date, error) {
	switch raw.Type {
	case bsontype.String:
		return dosage.ParseDate(raw.StringValue())
	case bsontype.DateTime:
		return dosage.DateOf(raw.Time().UTC()), nil
	default:
		return dosage.Date{}, fmt.Errorf("%w: unsupported bson type %s", dosage.ErrInvalidDate, raw.Type)
	}
}

func timestampValue(raw bson.RawValue) (time.Time, error) {
	switch raw.Type {
	case bsontype.String:
		return inr.ParseTimestamp(raw.StringValue())
	case bsontype.DateTime:
		return raw.Time().UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported bson type %s", inr.ErrInvalidTimestamp, raw.Type)
	}
}
