// Package fit combines the overall performance score with age and
// marketability into stakeholder-specific fit scores.
package fit

import (
	"math"
	"strings"

	"github.com/sherpalabs/scout/internal/domain/model"
	"github.com/sherpalabs/scout/internal/domain/scoring"
)

// Weighting constants for the fit formulas.
const (
	// ageHorizon is the age at and beyond which the development upside
	// factor bottoms out at zero.
	ageHorizon = 30.0

	teamOverallWeight = 0.6
	teamAgeWeight     = 0.2
	teamMarketWeight  = 0.2

	agencyMarketWeight  = 0.6
	agencyOverallWeight = 0.4

	// offPositionFactor applies to positions outside the reference set.
	offPositionFactor = 0.8

	scoreScale = 100.0
)

// defaultReferencePositions is the set of positions treated as
// first-class by the position factor. Matching is case-insensitive.
var defaultReferencePositions = []string{"guard", "forward", "center", "midfielder"}

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithNormalizer sets the normalizer used to derive the overall score.
func WithNormalizer(n *scoring.Normalizer) Option {
	return func(e *Evaluator) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// WithReferencePositions replaces the reference position set.
func WithReferencePositions(positions []string) Option {
	return func(e *Evaluator) {
		if len(positions) == 0 {
			return
		}
		e.positions = make(map[string]struct{}, len(positions))
		for _, p := range positions {
			e.positions[strings.ToLower(p)] = struct{}{}
		}
	}
}

// Evaluator derives FitScores from a player. Stateless and safe for
// concurrent use.
type Evaluator struct {
	normalizer *scoring.Normalizer
	positions  map[string]struct{}
}

// NewEvaluator creates an evaluator with configuration options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		normalizer: scoring.NewNormalizer(),
	}
	WithReferencePositions(defaultReferencePositions)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes the fit scores for a player. Deterministic and
// total over boundary-validated input; never fails.
func (e *Evaluator) Evaluate(p model.Player) model.FitScores {
	overall := e.normalizer.Overall(p.Stats)

	// Younger players score higher on development upside; the factor
	// bottoms out at zero from age 30 on.
	ageFactor := math.Max(0, ageHorizon-float64(p.Age)) / ageHorizon

	// The position factor is computed for every evaluation but is not
	// folded into the weighted sums: the documented formulas never
	// consumed it. TODO: agree on a weight and fold it into team fit.
	_ = e.PositionFactor(p.Position)

	market := p.MarketabilityScore

	teamFit := (overall/scoreScale)*teamOverallWeight + ageFactor*teamAgeWeight + market*teamMarketWeight
	agencyFit := market*agencyMarketWeight + (overall/scoreScale)*agencyOverallWeight
	opportunity := (teamFit + agencyFit) / 2

	return model.FitScores{
		OverallScore:     round2(overall),
		TeamFit:          round2(teamFit * scoreScale),
		AgencyFit:        round2(agencyFit * scoreScale),
		OpportunityScore: round2(opportunity * scoreScale),
	}
}

// PositionFactor reports the position coherence factor: 1.0 for
// positions in the reference set (case-insensitive), 0.8 otherwise.
func (e *Evaluator) PositionFactor(position string) float64 {
	if _, ok := e.positions[strings.ToLower(position)]; ok {
		return 1.0
	}
	return offPositionFactor
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
