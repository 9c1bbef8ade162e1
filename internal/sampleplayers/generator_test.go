package sampleplayers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePlayers(t *testing.T) {
	players := GeneratePlayers(50)
	require.Len(t, players, 50)

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		require.NotEmpty(t, p.FullName)
		require.NotEmpty(t, p.Position)
		require.GreaterOrEqual(t, p.Age, 17)
		require.LessOrEqual(t, p.Age, 25)
		require.GreaterOrEqual(t, p.MarketabilityScore, 0.0)
		require.Less(t, p.MarketabilityScore, 1.0)
		require.GreaterOrEqual(t, len(p.Stats), 2)
		for _, s := range p.Stats {
			require.NotEmpty(t, s.Name)
			require.GreaterOrEqual(t, s.Value, 0.0)
			require.LessOrEqual(t, s.Value, 100.0)
		}
		require.False(t, seen[p.FullName], "player names must be unique per run")
		seen[p.FullName] = true
	}
}

func TestVerifyReport(t *testing.T) {
	valid := &Report{ReportID: "id", Pitch: "pitch"}
	valid.FitScores.OverallScore = 85
	valid.FitScores.TeamFit = 75.67
	valid.FitScores.AgencyFit = 88
	valid.FitScores.OpportunityScore = 81.83
	valid.DraftProjection.ProjectedRound = 1
	valid.DraftProjection.DraftProbability = 0.95
	valid.NILEstimate.CurrentEstimatedNIL = 170000
	valid.NILEstimate.Projected12mNIL = 355300
	valid.NILEstimate.BrandSuggestions = []string{"Regional brands, niche sponsors"}

	require.True(t, VerifyReport(valid))

	missingID := *valid
	missingID.ReportID = ""
	require.False(t, VerifyReport(&missingID))

	badRound := *valid
	badRound.DraftProjection.ProjectedRound = 4
	require.False(t, VerifyReport(&badRound))

	badFit := *valid
	badFit.FitScores.TeamFit = 120
	require.False(t, VerifyReport(&badFit))

	noSuggestion := *valid
	noSuggestion.NILEstimate.BrandSuggestions = nil
	require.False(t, VerifyReport(&noSuggestion))
}
