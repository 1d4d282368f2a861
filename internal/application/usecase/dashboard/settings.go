// Package dashboard contains the dashboard analytics use cases and the
// pure aggregation engine behind them.
package dashboard

import "github.com/shopspring/decimal"

// SeriesTargets holds the per-granularity chart target values. These
// are business goals supplied through configuration, not computed.
type SeriesTargets struct {
	Daily   decimal.Decimal
	Monthly decimal.Decimal
}

// TrendThresholds holds the volume cut-offs for the coarse trend label
// on ranked results: at or above Up the trend is "up", at or above
// Steady it is "steady", otherwise "down".
type TrendThresholds struct {
	Up     int
	Steady int
}

// Settings bundles the configurable knobs of the dashboard engine.
type Settings struct {
	Targets        SeriesTargets
	ItemTrends     TrendThresholds
	CustomerTrends TrendThresholds
	TopN           int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Targets: SeriesTargets{
			Daily:   decimal.NewFromInt(1000),
			Monthly: decimal.NewFromInt(25000),
		},
		ItemTrends:     TrendThresholds{Up: 10, Steady: 5},
		CustomerTrends: TrendThresholds{Up: 5, Steady: 2},
		TopN:           5,
	}
}
