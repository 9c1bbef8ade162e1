// Package scoring reduces a player's raw statistics to a single 0-100
// performance score.
package scoring

import (
	"math"

	"github.com/sherpalabs/scout/internal/domain/model"
)

// Default scoring configuration constants.
const (
	// defaultNeutralScore is returned when a player has no recorded
	// stats: absence of data is treated as median performance, not as
	// zero and not as an error.
	defaultNeutralScore = 50.0
	maxScoreValue       = 100.0
	minScoreValue       = 0.0
)

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithNeutralScore overrides the score used for players with no stats.
func WithNeutralScore(score float64) Option {
	return func(n *Normalizer) {
		if score >= minScoreValue && score <= maxScoreValue {
			n.neutralScore = score
		}
	}
}

// Normalizer computes the overall performance score. It is stateless
// and safe for concurrent use.
type Normalizer struct {
	neutralScore float64
}

// NewNormalizer creates a normalizer with configuration options.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		neutralScore: defaultNeutralScore,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Overall returns the arithmetic mean of all stat values clamped to
// [0,100]. Duplicate stat names are legal and averaged like any other
// value. An empty stats list yields the neutral score. Total function:
// no error conditions.
func (n *Normalizer) Overall(stats []model.Stat) float64 {
	if len(stats) == 0 {
		return n.neutralScore
	}
	var sum float64
	for _, s := range stats {
		sum += s.Value
	}
	mean := sum / float64(len(stats))
	return math.Max(minScoreValue, math.Min(maxScoreValue, mean))
}
