package sampleplayers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sherpalabs/scout/pkg/logger"
)

// Run generates players and submits them concurrently, returning run
// statistics. The server must already be up; Run probes /healthz first.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	log := logger.Get()
	client := NewHTTPClient(config.Timeout)

	if err := client.CheckHealth(config.BaseURL); err != nil {
		return nil, err
	}

	players := GeneratePlayers(config.NumPlayers)
	log.Info(ctx, "generated players", logger.Int("count", len(players)))

	stats := &Stats{}
	start := time.Now()

	jobs := make(chan Player)
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for player := range jobs {
				atomic.AddInt64(&stats.Submitted, 1)
				report, err := client.SubmitPlayer(config.BaseURL, player)
				if err != nil {
					atomic.AddInt64(&stats.Failed, 1)
					if config.Verbose {
						log.Warn(ctx, "submission failed",
							logger.String("player", player.FullName),
							logger.Error(err),
						)
					}
					continue
				}
				if !VerifyReport(report) {
					atomic.AddInt64(&stats.Invalid, 1)
					log.Warn(ctx, "report failed verification",
						logger.String("reportID", report.ReportID),
						logger.String("player", player.FullName),
					)
					continue
				}
				atomic.AddInt64(&stats.Succeeded, 1)
				if config.Verbose {
					log.Info(ctx, "report verified",
						logger.String("reportID", report.ReportID),
						logger.Float64("overall", report.FitScores.OverallScore),
						logger.Int("round", report.DraftProjection.ProjectedRound),
					)
				}
			}
		}()
	}

	for _, player := range players {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			stats.Elapsed = time.Since(start)
			return stats, ctx.Err()
		case jobs <- player:
		}
	}
	close(jobs)
	wg.Wait()

	stats.Elapsed = time.Since(start)
	log.Info(ctx, "run complete",
		logger.Int64("submitted", stats.Submitted),
		logger.Int64("succeeded", stats.Succeeded),
		logger.Int64("failed", stats.Failed),
		logger.Int64("invalid", stats.Invalid),
		logger.String("elapsed", stats.Elapsed.String()),
	)
	return stats, nil
}

// VerifyReport checks the response invariants the pipeline guarantees
// for any valid input.
func VerifyReport(r *Report) bool {
	if r.ReportID == "" || r.Pitch == "" {
		return false
	}
	if !inRange(r.FitScores.OverallScore, 0, 100) ||
		!inRange(r.FitScores.TeamFit, 0, 100) ||
		!inRange(r.FitScores.AgencyFit, 0, 100) ||
		!inRange(r.FitScores.OpportunityScore, 0, 100) {
		return false
	}
	if r.DraftProjection.ProjectedRound < 1 || r.DraftProjection.ProjectedRound > 3 {
		return false
	}
	if !inRange(r.DraftProjection.DraftProbability, 0, 1) {
		return false
	}
	if r.NILEstimate.CurrentEstimatedNIL < 0 || r.NILEstimate.Projected12mNIL < 0 {
		return false
	}
	return len(r.NILEstimate.BrandSuggestions) == 1
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
