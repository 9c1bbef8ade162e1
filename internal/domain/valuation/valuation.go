// Package valuation estimates a player's name/image/likeness (NIL)
// monetary value from the overall score and marketability.
package valuation

import (
	"github.com/sherpalabs/scout/internal/domain/model"
)

// Default valuation configuration constants.
const (
	// defaultBaseValue is the annual NIL value, in whole currency
	// units, of a perfect 100 overall score before brand effects.
	defaultBaseValue = 200_000.0

	// defaultGrowthRate is the 12-month growth multiplier applied on
	// top of the brand multiplier.
	defaultGrowthRate = 1.1

	scoreScale = 100.0

	nationalThreshold = 0.8
	regionalThreshold = 0.5
)

// Brand suggestion messages keyed by marketability band.
const (
	nationalSuggestion = "National brand endorsements; social-first campaigns"
	regionalSuggestion = "Regional brands, niche sponsors"
	localSuggestion    = "Local sponsorships, community partnerships"
)

// Option applies a configuration option to the Estimator.
type Option func(*Estimator)

// WithBaseValue overrides the base annual NIL value for a 100 score.
func WithBaseValue(v float64) Option {
	return func(e *Estimator) {
		if v > 0 {
			e.baseValue = v
		}
	}
}

// WithGrowthRate overrides the 12-month growth multiplier.
func WithGrowthRate(r float64) Option {
	return func(e *Estimator) {
		if r > 0 {
			e.growthRate = r
		}
	}
}

// Estimator computes NIL estimates. Stateless and safe for concurrent
// use.
type Estimator struct {
	baseValue  float64
	growthRate float64
}

// NewEstimator creates an estimator with configuration options.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		baseValue:  defaultBaseValue,
		growthRate: defaultGrowthRate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate returns the current and 12-month-projected NIL values plus
// a single brand suggestion. Monetary values are truncated toward zero
// to whole currency units, never rounded; fit scores round, money
// truncates, and the asymmetry is intentional.
func (e *Estimator) Estimate(p model.Player, overallScore float64) model.NILEstimate {
	base := overallScore / scoreScale * e.baseValue
	brandMultiplier := 1 + p.MarketabilityScore
	projected := base * brandMultiplier * e.growthRate

	return model.NILEstimate{
		CurrentEstimatedNIL: int64(base),
		Projected12mNIL:     int64(projected),
		BrandSuggestions:    []string{suggestionFor(p.MarketabilityScore)},
	}
}

// suggestionFor picks exactly one brand suggestion by marketability
// threshold.
func suggestionFor(marketability float64) string {
	switch {
	case marketability > nationalThreshold:
		return nationalSuggestion
	case marketability > regionalThreshold:
		return regionalSuggestion
	default:
		return localSuggestion
	}
}
