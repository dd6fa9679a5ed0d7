package command

import (
	"fmt"
	"io"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/tidepool-org/anticoag/app"
	"github.com/tidepool-org/anticoag/dosage"
)

var rootParams = struct {
	LogLevel string
	Today    string
}{}

// Run executes a given function with dependencies supplied by the engine DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the graph
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(app.Dependencies(), opts...)
	if rootParams.Today != "" {
		today, err := dosage.ParseDate(rootParams.Today)
		if err != nil {
			return fmt.Errorf("--today: %w", err)
		}
		deps = append(deps, app.WithToday(today))
	}
	return fxutil.OneShot(f, deps...)
}

// output is supplied to commands so that tests can capture what they print.
func output(cmd *cobra.Command) fx.Option {
	out := cmd.OutOrStdout()
	return fx.Provide(func() io.Writer { return out })
}

var rootCmd = &cobra.Command{
	Use:   "anticoag",
	Short: "Evaluate anticoagulation therapy adherence from patient snapshots",
	Long: "The anticoag tool reads patient documents exported from the clinic store and " +
		"computes medication calendars, missed doses and monthly INR averages",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", rootParams.LogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootParams.LogLevel, "log-level", "v", "error", "Log Level")
	rootCmd.PersistentFlags().StringVar(&rootParams.Today, "today", "", "Evaluate as of this day (DD-MM-YYYY, YYYY-MM-DD or DD/MM/YYYY) instead of the current date")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
