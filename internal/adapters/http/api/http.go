// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sherpalabs/scout/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	// GenerateReport runs the scouting pipeline for one player.
	GenerateReport(ctx context.Context, player model.Player) (model.Report, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	reportHandler *ReportHandler
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		reportHandler: NewReportHandler(deps),
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/generate_report", MetricsMiddleware(s.reportHandler.HandleGenerateReport, "generate_report"))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

// validate is the shared validator instance; tag parsing is cached per
// struct type, so a single instance is the cheap path.
var validate = validator.New()

// statRequest mirrors the OpenAPI schema for a single named statistic.
type statRequest struct {
	Name  string  `json:"name" validate:"required"`
	Value float64 `json:"value"`
}

// playerRequest mirrors the OpenAPI schema for POST /generate_report.
// Marketability is a pointer so that "absent" and "zero" stay
// distinguishable for defaulting.
type playerRequest struct {
	FullName           string        `json:"full_name" validate:"required"`
	Position           string        `json:"position" validate:"required"`
	Age                int           `json:"age" validate:"gte=0"`
	Stats              []statRequest `json:"stats" validate:"omitempty,dive"`
	MarketabilityScore *float64      `json:"marketability_score" validate:"omitempty,gte=0,lte=1"`
	Highlights         []string      `json:"highlights"`
}

func (r playerRequest) validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return nil
}

// defaultMarketability applies when the field is absent from the
// request body.
const defaultMarketability = 0.5

// toPlayer converts a validated request into the domain input,
// applying the boundary defaults: absent marketability -> 0.5, absent
// stats and highlights -> empty sequences.
func (r playerRequest) toPlayer() model.Player {
	market := defaultMarketability
	if r.MarketabilityScore != nil {
		market = *r.MarketabilityScore
	}

	stats := make([]model.Stat, len(r.Stats))
	for i, s := range r.Stats {
		stats[i] = model.Stat{Name: s.Name, Value: s.Value}
	}

	highlights := r.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return model.Player{
		FullName:           r.FullName,
		Position:           r.Position,
		Age:                r.Age,
		Stats:              stats,
		MarketabilityScore: market,
		Highlights:         highlights,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
