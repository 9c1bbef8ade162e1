package model

// FitScores holds the derived 0-100 fit metrics. All four values are
// rounded to two decimals at construction and never mutated afterwards.
type FitScores struct {
	OverallScore     float64 `json:"overall_score"`
	TeamFit          float64 `json:"team_fit"`
	AgencyFit        float64 `json:"agency_fit"`
	OpportunityScore float64 `json:"opportunity_score"`
}

// DraftProjection is a categorical draft-outcome estimate. PickEstimate
// is nil for players projected outside the first two rounds and
// serializes to JSON null rather than being omitted.
type DraftProjection struct {
	ProjectedRound        int     `json:"projected_round"`
	ProjectedPickEstimate *int    `json:"projected_pick_estimate"`
	DraftProbability      float64 `json:"draft_probability"`
}

// NILEstimate is a name/image/likeness monetary estimate in whole
// currency units. Monetary values are truncated toward zero, not
// rounded; the distinction is load-bearing for downstream consumers.
type NILEstimate struct {
	CurrentEstimatedNIL int64    `json:"current_estimated_nil"`
	Projected12mNIL     int64    `json:"projected_12m_nil"`
	BrandSuggestions    []string `json:"brand_suggestions"`
}

// Report is the terminal, response-facing artifact: the input player
// plus every derived output and the rendered pitch. Constructed once
// per request, never cached or persisted.
type Report struct {
	ReportID        string          `json:"report_id"`
	GeneratedAt     string          `json:"generated_at"`
	Player          Player          `json:"player"`
	FitScores       FitScores       `json:"fit_scores"`
	DraftProjection DraftProjection `json:"draft_projection"`
	NILEstimate     NILEstimate     `json:"nil_estimate"`
	Pitch           string          `json:"report"`
}
