// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// ReportHandler handles report generation requests.
type ReportHandler struct {
	deps Dependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleGenerateReport handles POST /generate_report requests.
//
// The boundary owns the input invariants: schema mismatches and
// marketability outside [0,1] are rejected here with 400 before the
// pipeline runs; the pipeline itself never partially executes.
func (h *ReportHandler) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.generate_report"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.GenerateReport(r.Context(), req.toPlayer())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, report)
}
