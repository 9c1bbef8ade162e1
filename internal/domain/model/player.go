// Package model contains the value objects that flow through the report
// pipeline. Everything here is immutable after construction: each request
// builds a fresh graph and consumes it once.
package model

// Stat is a single named performance statistic. Names are not unique;
// duplicates are legal and simply participate in the average.
type Stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Player is the scouting input: identity, position, age, raw stats,
// a marketability measure in [0,1], and free-form highlight notes.
//
// The transport boundary is responsible for the input invariants
// (marketability clamped to [0,1], absent fields defaulted); the
// pipeline assumes they already hold.
type Player struct {
	FullName           string   `json:"full_name"`
	Position           string   `json:"position"`
	Age                int      `json:"age"`
	Stats              []Stat   `json:"stats"`
	MarketabilityScore float64  `json:"marketability_score"`
	Highlights         []string `json:"highlights"`
}
