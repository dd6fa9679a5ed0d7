package command

import (
	"fmt"
	"os"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/snapshot"
)

func loadPatient(path string) (adherence.Patient, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return adherence.Patient{}, fmt.Errorf("unable to read snapshot: %w", err)
	}
	document, err := snapshot.Decode(body)
	if err != nil {
		return adherence.Patient{}, err
	}
	return document.ToAdherence()
}
