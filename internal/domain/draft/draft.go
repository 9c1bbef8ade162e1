// Package draft maps an overall performance score to a discrete
// draft-outcome projection.
package draft

import (
	"math"

	"github.com/sherpalabs/scout/internal/domain/model"
)

// Bucket boundaries and outcomes. Boundaries are half-open on the low
// end: exactly 85.0 falls in the top bucket.
const (
	topBucketMin    = 85.0
	firstRoundMin   = 70.0
	secondRoundMin  = 55.0
	topPickBase     = 30
	lateFirstBase   = 30
	secondRoundBase = 50

	topBucketProbability     = 0.95
	firstRoundProbability    = 0.75
	secondRoundProbability   = 0.45
	undraftedEdgeProbability = 0.12
)

// Projector projects draft outcomes. Stateless and safe for concurrent
// use.
type Projector struct{}

// NewProjector creates a projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Project returns the draft projection for an overall score. Total
// function over all real scores; probabilities are rounded to two
// decimals.
func (p *Projector) Project(overallScore float64) model.DraftProjection {
	switch {
	case overallScore >= topBucketMin:
		pick := maxInt(1, int(math.Floor(float64(topPickBase)-(overallScore-topBucketMin))))
		return projection(1, &pick, topBucketProbability)
	case overallScore >= firstRoundMin:
		pick := int(math.Floor(float64(lateFirstBase) + (topBucketMin - overallScore)))
		return projection(1, &pick, firstRoundProbability)
	case overallScore >= secondRoundMin:
		pick := int(math.Floor(float64(secondRoundBase) + (firstRoundMin - overallScore)))
		return projection(2, &pick, secondRoundProbability)
	default:
		return projection(3, nil, undraftedEdgeProbability)
	}
}

func projection(round int, pick *int, probability float64) model.DraftProjection {
	return model.DraftProjection{
		ProjectedRound:        round,
		ProjectedPickEstimate: pick,
		DraftProbability:      math.Round(probability*100) / 100,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
