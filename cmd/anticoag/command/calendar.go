package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tidepool-org/anticoag/adherence"
)

var calendarParams = struct {
	Path string
}{}

var calendarCmd = &cobra.Command{
	Use:   "calendar {snapshot.json}",
	Args:  cobra.ExactArgs(1),
	Short: "List the days on which a dose was due",
	Long:  "The calendar command lists every scheduled dose day from the therapy start date through today",
	RunE: func(cmd *cobra.Command, args []string) error {
		calendarParams.Path = args[0]
		return Run(printCalendar, output(cmd))
	},
}

func printCalendar(service adherence.Service, out io.Writer, logger *zap.SugaredLogger) error {
	patient, err := loadPatient(calendarParams.Path)
	if err != nil {
		return err
	}
	if err := patient.Validate(); err != nil {
		return err
	}

	dates, err := service.MedicationDates(context.TODO(), *patient.TherapyStartDate, patient.Schedule)
	if err != nil {
		return err
	}
	logger.Debugw("computed medication calendar", "patientId", patient.Id, "count", len(dates))

	for _, date := range dates {
		fmt.Fprintf(out, "%s %s\n", date, date.Weekday())
	}
	message.NewPrinter(language.English).Fprintf(out, "Found %d scheduled doses\n", len(dates))
	return nil
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
