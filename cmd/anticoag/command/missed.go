package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/config"
	"github.com/tidepool-org/anticoag/dosage"
)

var missedParams = struct {
	Path   string
	Latest int
}{}

var missedCmd = &cobra.Command{
	Use:   "missed {snapshot.json}",
	Args:  cobra.ExactArgs(1),
	Short: "List missed doses",
	Long:  "The missed command lists scheduled dose days without a recorded dose, oldest first, or the latest ones newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		missedParams.Path = args[0]
		return Run(printMissed, output(cmd))
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent {snapshot.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Split missed doses into the recent window and before",
	Long:  "The recent command splits missed doses into those within ANTICOAG_RECENT_WINDOW_DAYS (7 by default) of today and the older ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		missedParams.Path = args[0]
		return Run(printRecent, output(cmd))
	},
}

func printMissed(service adherence.Service, out io.Writer) error {
	patient, err := loadPatient(missedParams.Path)
	if err != nil {
		return err
	}
	missed, err := service.MissedDoses(context.TODO(), patient)
	if err != nil {
		return err
	}

	listed := missed
	if missedParams.Latest > 0 {
		listed = dosage.Latest(missed, missedParams.Latest)
	}
	for _, date := range listed {
		fmt.Fprintln(out, date)
	}
	message.NewPrinter(language.English).Fprintf(out, "%d of %d missed doses listed\n", len(listed), len(missed))
	return nil
}

func printRecent(service adherence.Service, cfg *config.Config, out io.Writer) error {
	patient, err := loadPatient(missedParams.Path)
	if err != nil {
		return err
	}
	missed, err := service.MissedDoses(context.TODO(), patient)
	if err != nil {
		return err
	}

	recent, older := dosage.PartitionWithin(missed, service.Today(), cfg.RecentWindowDays)
	printer := message.NewPrinter(language.English)
	printer.Fprintf(out, "Recent (%d)\n", len(recent))
	for _, date := range recent {
		fmt.Fprintf(out, "  %s\n", date)
	}
	printer.Fprintf(out, "Older (%d)\n", len(older))
	for _, date := range older {
		fmt.Fprintf(out, "  %s\n", date)
	}
	return nil
}

func init() {
	missedCmd.Flags().IntVar(&missedParams.Latest, "latest", 0, "Only list this many of the most recent missed doses")

	rootCmd.AddCommand(missedCmd)
	rootCmd.AddCommand(recentCmd)
}
