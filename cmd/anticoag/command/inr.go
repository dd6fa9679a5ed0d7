package command

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tidepool-org/anticoag/inr"
)

var inrParams = struct {
	Path string
}{}

var inrAverageCmd = &cobra.Command{
	Use:   "inr-average {snapshot.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Print monthly INR averages",
	Long:  "The inr-average command groups INR reports by calendar month, across years, and prints the average of each month",
	RunE: func(cmd *cobra.Command, args []string) error {
		inrParams.Path = args[0]
		return Run(printINRAverages, output(cmd))
	},
}

func printINRAverages(out io.Writer) error {
	patient, err := loadPatient(inrParams.Path)
	if err != nil {
		return err
	}
	averages, err := patient.INRHistory.MonthlyAverages()
	if err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	for _, point := range inr.Chart(averages) {
		printer.Fprintf(out, "%s %.2f\n", point.Month, point.Average)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inrAverageCmd)
}
