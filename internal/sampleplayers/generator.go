package sampleplayers

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Generation pools. Positions deliberately include entries outside the
// evaluator's reference set so off-position players show up in runs.
var (
	firstNames = []string{"Alex", "Jordan", "Sam", "Riley", "Casey", "Drew", "Morgan", "Taylor", "Quinn", "Avery"}
	lastNames  = []string{"Chen", "Okafor", "Silva", "Novak", "Haaland", "Dupont", "Kimura", "Petrov", "Mensah", "Silber"}
	positions  = []string{"Guard", "Forward", "Center", "Midfielder", "Goalkeeper", "Winger"}
	statNames  = []string{"ppg", "apg", "rpg", "spg", "fg_pct", "minutes"}
	highlights = []string{
		"All-conference selection",
		"Conference tournament MVP",
		"School scoring record",
		"30-point playoff game",
		"Team captain two seasons",
	}
)

// Age and stat generation bounds.
const (
	minAge        = 17
	ageSpread     = 8
	minStats      = 2
	statSpread    = 3
	maxStatValue  = 100.0
	minHighlights = 0
	highlightMax  = 3
)

// randomFloat returns a random float64 in [0,1) using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0,n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// GeneratePlayers creates count randomized player profiles. Names get
// a uuid suffix so repeated runs never collide on identity.
func GeneratePlayers(count int) []Player {
	players := make([]Player, count)
	for i := range players {
		players[i] = generatePlayer()
	}
	return players
}

func generatePlayer() Player {
	name := fmt.Sprintf("%s %s %s",
		firstNames[randomInt(len(firstNames))],
		lastNames[randomInt(len(lastNames))],
		uuid.New().String()[:8],
	)

	numStats := minStats + randomInt(statSpread+1)
	stats := make([]Stat, numStats)
	for i := range stats {
		stats[i] = Stat{
			Name:  statNames[randomInt(len(statNames))],
			Value: randomFloat() * maxStatValue,
		}
	}

	numHighlights := minHighlights + randomInt(highlightMax+1)
	hl := make([]string, 0, numHighlights)
	for i := 0; i < numHighlights; i++ {
		hl = append(hl, highlights[randomInt(len(highlights))])
	}

	return Player{
		FullName:           name,
		Position:           positions[randomInt(len(positions))],
		Age:                minAge + randomInt(ageSpread+1),
		Stats:              stats,
		MarketabilityScore: randomFloat(),
		Highlights:         hl,
	}
}
