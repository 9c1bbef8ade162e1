// Package sampleplayers drives demo traffic against a running scout
// server: it generates randomized player profiles, posts them to
// /generate_report concurrently, and verifies the response invariants.
package sampleplayers

import "time"

// Config holds configuration for a sample run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumPlayers int           // Number of players to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Verbose    bool          // Enable verbose logging
}

// Player mirrors the request schema for POST /generate_report.
type Player struct {
	FullName           string   `json:"full_name"`
	Position           string   `json:"position"`
	Age                int      `json:"age"`
	Stats              []Stat   `json:"stats"`
	MarketabilityScore float64  `json:"marketability_score"`
	Highlights         []string `json:"highlights"`
}

// Stat mirrors a single named statistic in the request schema.
type Stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Report mirrors the subset of the response the verifier checks.
type Report struct {
	ReportID  string `json:"report_id"`
	FitScores struct {
		OverallScore     float64 `json:"overall_score"`
		TeamFit          float64 `json:"team_fit"`
		AgencyFit        float64 `json:"agency_fit"`
		OpportunityScore float64 `json:"opportunity_score"`
	} `json:"fit_scores"`
	DraftProjection struct {
		ProjectedRound   int     `json:"projected_round"`
		DraftProbability float64 `json:"draft_probability"`
	} `json:"draft_projection"`
	NILEstimate struct {
		CurrentEstimatedNIL int64    `json:"current_estimated_nil"`
		Projected12mNIL     int64    `json:"projected_12m_nil"`
		BrandSuggestions    []string `json:"brand_suggestions"`
	} `json:"nil_estimate"`
	Pitch string `json:"report"`
}

// Stats holds run statistics.
type Stats struct {
	Submitted int64
	Succeeded int64
	Failed    int64
	Invalid   int64
	Elapsed   time.Duration
}
