// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sherpalabs/scout/internal/domain/draft"
	"github.com/sherpalabs/scout/internal/domain/fit"
	"github.com/sherpalabs/scout/internal/domain/model"
	"github.com/sherpalabs/scout/internal/domain/pitch"
	"github.com/sherpalabs/scout/internal/domain/scoring"
	"github.com/sherpalabs/scout/internal/domain/valuation"
	"github.com/sherpalabs/scout/pkg/logger"
	"github.com/sherpalabs/scout/pkg/metrics"
)

// Service wires the report pipeline stages. The pipeline itself is a
// pure function of its input; the service only adds wiring, metrics,
// and report identity.
type Service struct {
	mu sync.RWMutex

	// Pipeline stages
	normalizer *scoring.Normalizer
	evaluator  *fit.Evaluator
	projector  *draft.Projector
	estimator  *valuation.Estimator
	composer   *pitch.Composer

	// Configuration
	neutralScore       float64
	referencePositions []string
	nilBaseValue       float64
	nilGrowthRate      float64

	// State
	started     bool
	startedAt   time.Time
	reportCount atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNeutralScore sets the overall score used for players without
// stats.
func WithNeutralScore(score float64) Option {
	return func(s *Service) {
		if score >= 0 && score <= 100 {
			s.neutralScore = score
		}
	}
}

// WithReferencePositions sets the fit evaluator's reference position
// set.
func WithReferencePositions(positions []string) Option {
	return func(s *Service) {
		if len(positions) > 0 {
			s.referencePositions = positions
		}
	}
}

// WithNILBaseValue sets the base annual NIL value for a perfect score.
func WithNILBaseValue(v float64) Option {
	return func(s *Service) {
		if v > 0 {
			s.nilBaseValue = v
		}
	}
}

// WithNILGrowthRate sets the 12-month NIL growth multiplier.
func WithNILGrowthRate(r float64) Option {
	return func(s *Service) {
		if r > 0 {
			s.nilGrowthRate = r
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		neutralScore:       50,
		referencePositions: nil, // evaluator default applies
		nilBaseValue:       200_000,
		nilGrowthRate:      1.1,
		logger:             nil, // resolved in Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the pipeline stages from the configured options. The
// stages are stateless, so Start is cheap and idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.normalizer = scoring.NewNormalizer(scoring.WithNeutralScore(s.neutralScore))

	fitOpts := []fit.Option{fit.WithNormalizer(s.normalizer)}
	if len(s.referencePositions) > 0 {
		fitOpts = append(fitOpts, fit.WithReferencePositions(s.referencePositions))
	}
	s.evaluator = fit.NewEvaluator(fitOpts...)
	s.projector = draft.NewProjector()
	s.estimator = valuation.NewEstimator(
		valuation.WithBaseValue(s.nilBaseValue),
		valuation.WithGrowthRate(s.nilGrowthRate),
	)
	s.composer = pitch.NewComposer()

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "scout service started",
		logger.Float64("neutralScore", s.neutralScore),
		logger.Float64("nilBaseValue", s.nilBaseValue),
		logger.Float64("nilGrowthRate", s.nilGrowthRate),
	)

	return nil
}

// Stop marks the service stopped. The pipeline holds no resources, so
// there is nothing to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "scout service stopped",
		logger.Int64("reportsGenerated", s.reportCount.Load()),
	)
}

// GenerateReport runs the full pipeline for one player: normalize ->
// {fit, draft, valuation} -> pitch. Deterministic and total over
// boundary-validated input; the only error condition is a context that
// is already done.
func (s *Service) GenerateReport(ctx context.Context, player model.Player) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		metrics.RecordReportFailure()
		return model.Report{}, fmt.Errorf("generate report: %w", err)
	}

	start := time.Now()

	fitScores := s.evaluator.Evaluate(player)
	projection := s.projector.Project(fitScores.OverallScore)
	estimate := s.estimator.Estimate(player, fitScores.OverallScore)
	narrative := s.composer.Compose(player, fitScores)

	report := model.Report{
		ReportID:        uuid.New().String(),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Player:          player,
		FitScores:       fitScores,
		DraftProjection: projection,
		NILEstimate:     estimate,
		Pitch:           narrative,
	}

	s.reportCount.Add(1)
	metrics.RecordReportGenerated()
	metrics.RecordPipelineLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordDraftRound(strconv.Itoa(projection.ProjectedRound))
	metrics.RecordNILEstimate(float64(estimate.CurrentEstimatedNIL))

	s.logger.Debug(ctx, "report generated",
		logger.String("reportID", report.ReportID),
		logger.String("player", player.FullName),
		logger.Float64("overall", fitScores.OverallScore),
		logger.Int("round", projection.ProjectedRound),
	)

	return report, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"reportsGenerated": s.reportCount.Load(),
		"neutralScore":     s.neutralScore,
		"nilBaseValue":     s.nilBaseValue,
		"nilGrowthRate":    s.nilGrowthRate,
	}
	if s.started {
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	return stats
}
