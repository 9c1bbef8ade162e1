// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// NeutralScore is the overall score assigned to players with no
	// recorded stats.
	NeutralScore float64 `koanf:"neutral_score"`

	// ReferencePositions is the set of positions treated as first-class
	// by the fit evaluator's position factor.
	ReferencePositions []string `koanf:"reference_positions"`

	// NILBaseValue is the annual NIL value of a perfect overall score,
	// in whole currency units.
	NILBaseValue float64 `koanf:"nil_base_value"`

	// NILGrowthRate is the 12-month NIL growth multiplier.
	NILGrowthRate float64 `koanf:"nil_growth_rate"`
}

// New creates a Config holding the documented defaults. The defaults
// reproduce the published scoring formulas exactly; overriding them
// changes every derived number, so overrides are for experiments, not
// production.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8090",
		NeutralScore:       50,
		ReferencePositions: []string{"guard", "forward", "center", "midfielder"},
		NILBaseValue:       200_000,
		NILGrowthRate:      1.1,
	}
}
