// Package pitch renders the human-readable scouting pitch narrative.
package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sherpalabs/scout/internal/domain/model"
)

const (
	// highlightSeparator joins highlight notes in their original order.
	highlightSeparator = "; "

	// emptyHighlights is rendered when a player has no highlight notes.
	emptyHighlights = "N/A"
)

// Composer renders pitches. Stateless and safe for concurrent use.
type Composer struct{}

// NewComposer creates a composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the pitch narrative for a player and their fit
// scores. Pure template substitution; any input pair deterministically
// produces a string.
func (c *Composer) Compose(p model.Player, fit model.FitScores) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pitch for %s (%s, age %d)\n", p.FullName, p.Position, p.Age)
	fmt.Fprintf(&b, "Overall Score: %s\n", formatScore(fit.OverallScore))
	fmt.Fprintf(&b, "Team Fit: %s | Agency Fit: %s\n", formatScore(fit.TeamFit), formatScore(fit.AgencyFit))
	fmt.Fprintf(&b, "Opportunity: %s\n", formatScore(fit.OpportunityScore))
	b.WriteString("\n")
	b.WriteString("Why sign:\n")
	fmt.Fprintf(&b, "- Plays %s with consistent metrics.\n", p.Position)
	fmt.Fprintf(&b, "- Marketability: %s\n", formatScore(p.MarketabilityScore))
	fmt.Fprintf(&b, "- Key strengths: %s\n", renderHighlights(p.Highlights))
	b.WriteString("\n")
	b.WriteString("Recommended next steps:\n")
	b.WriteString("1. Shortlist for targeted tryout.\n")
	b.WriteString("2. Produce highlight reel and social push.\n")
	b.WriteString("3. Introduce to 2-3 regional brands for initial NIL deals.\n")

	return b.String()
}

func renderHighlights(highlights []string) string {
	if len(highlights) == 0 {
		return emptyHighlights
	}
	return strings.Join(highlights, highlightSeparator)
}

// formatScore renders a score in minimal-width decimal form with at
// least one fractional digit: 85 -> "85.0", 72.73 -> "72.73".
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
