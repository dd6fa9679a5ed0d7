package command

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/report"
)

var overviewParams = struct {
	Path string
	Xlsx string
}{}

var overviewCmd = &cobra.Command{
	Use:   "overview {snapshot.json}",
	Args:  cobra.ExactArgs(1),
	Short: "Print the adherence overview of a patient",
	Long:  "The overview command prints the full adherence overview as JSON and optionally writes it to a workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		overviewParams.Path = args[0]
		return Run(printOverview, output(cmd))
	},
}

func printOverview(service adherence.Service, out io.Writer, logger *zap.SugaredLogger) error {
	patient, err := loadPatient(overviewParams.Path)
	if err != nil {
		return err
	}
	overview, err := service.Overview(context.TODO(), patient)
	if err != nil {
		return err
	}

	if overviewParams.Xlsx != "" {
		file, err := report.NewWorkbook(overview).Generate()
		if err != nil {
			return err
		}
		if err := file.Save(overviewParams.Xlsx); err != nil {
			return err
		}
		logger.Infow("saved overview workbook", "path", overviewParams.Xlsx, "requestId", overview.RequestId)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(overview)
}

func init() {
	overviewCmd.Flags().StringVar(&overviewParams.Xlsx, "xlsx", "", "Also write the overview to this xlsx file")

	rootCmd.AddCommand(overviewCmd)
}
