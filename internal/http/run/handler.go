// Package run exposes batch operations: a full reconciliation run for a
// charge window and the drain of a single closed settlement invoice. Runs
// execute synchronously; large backfills belong in the reconcile CLI.
package run

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MrJamesThe3rd/rebill/internal/ingest"
	"github.com/MrJamesThe3rd/rebill/internal/pipeline"
)

type Handler struct {
	runner   *pipeline.Runner
	ingestor *ingest.Service

	extractDir string
	workers    int
}

func NewHandler(runner *pipeline.Runner, ingestor *ingest.Service, extractDir string, workers int) *Handler {
	return &Handler{
		runner:     runner,
		ingestor:   ingestor,
		extractDir: extractDir,
		workers:    workers,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.run)
	r.Post("/settlement", h.ingestSettlement)
}

type runRequest struct {
	From         string `json:"from"`
	To           string `json:"to"`
	SkipAssembly bool   `json:"skip_assembly,omitempty"`
}

type runResponse struct {
	Pages          int   `json:"pages"`
	Inserted       int   `json:"inserted"`
	Updated        int   `json:"updated"`
	Malformed      int   `json:"malformed"`
	Voided         int64 `json:"voided"`
	ExtractMatched int   `json:"extract_matched"`
	Resolved       int   `json:"resolved"`
	Unresolved     int   `json:"unresolved"`
	Conflicts      int   `json:"conflicts"`
	TaxCorrected   int   `json:"tax_corrected"`
	Invoices       int   `json:"invoices"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	from, err := time.Parse(time.DateOnly, req.From)
	if err != nil {
		http.Error(w, "from is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	to, err := time.Parse(time.DateOnly, req.To)
	if err != nil {
		http.Error(w, "to is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	result, err := h.runner.Run(r.Context(), pipeline.Options{
		From:         from,
		To:           to,
		ExtractDir:   h.extractDir,
		Workers:      h.workers,
		SkipAssembly: req.SkipAssembly,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := runResponse{
		ExtractMatched: result.Extracts.Matched,
		TaxCorrected:   result.Taxes.Corrected,
		Invoices:       len(result.Invoices),
	}

	if result.Ingest != nil {
		resp.Pages = result.Ingest.Pages
		resp.Inserted = result.Ingest.Inserted
		resp.Updated = result.Ingest.Updated
		resp.Malformed = result.Ingest.Malformed
		resp.Voided = result.Ingest.Voided
	}

	if result.Attribution != nil {
		resp.Resolved = result.Attribution.Resolved
		resp.Unresolved = result.Attribution.Unresolved
		resp.Conflicts = result.Attribution.Conflicts
	}

	writeJSON(w, http.StatusOK, resp)
}

type settlementRequest struct {
	ProviderInvoiceID string `json:"provider_invoice_id"`
}

func (h *Handler) ingestSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ProviderInvoiceID == "" {
		http.Error(w, "provider_invoice_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.ingestor.IngestSettlementInvoice(r.Context(), req.ProviderInvoiceID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		Pages:     result.Pages,
		Inserted:  result.Inserted,
		Updated:   result.Updated,
		Malformed: result.Malformed,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
