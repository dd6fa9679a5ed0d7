// Package app wires the adherence engine and its ambient dependencies.
package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/tidepool-org/anticoag/adherence"
	"github.com/tidepool-org/anticoag/clock"
	"github.com/tidepool-org/anticoag/config"
	"github.com/tidepool-org/anticoag/dosage"
	"github.com/tidepool-org/anticoag/logger"
)

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			clock.New,
			adherence.NewService,
		),
	}
}

// WithToday pins the clock to noon of day in the configured time zone, so that
// a snapshot can be evaluated as of a past day.
func WithToday(day dosage.Date) fx.Option {
	return fx.Decorate(func(_ clock.Clock, cfg *config.Config) (clock.Clock, error) {
		location, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		return clock.NewFixed(time.Date(day.Year, day.Month, day.Day, 12, 0, 0, 0, location)), nil
	})
}
