package audit

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MrJamesThe3rd/rebill/internal/invoice"
)

type Handler struct {
	assembler *invoice.Assembler
}

func NewHandler(assembler *invoice.Assembler) *Handler {
	return &Handler{assembler: assembler}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.report)
}

type reportResponse struct {
	Rows []rowResponse `json:"rows"`

	Unattributed int `json:"unattributed"`
	Undecomposed int `json:"undecomposed"`
	Disputed     int `json:"disputed"`
	Voided       int `json:"voided"`
}

type rowResponse struct {
	ProviderInvoiceID string `json:"provider_invoice_id"`
	FeeType           string `json:"fee_type"`
	TransactionCount  int    `json:"transaction_count"`
	ExpectedCents     int64  `json:"expected_cents"`
	BilledCents       int64  `json:"billed_cents"`
	GapCents          int64  `json:"gap_cents"`
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.URL.Query().Get("client_id"))
	if err != nil {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}

	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	report, err := h.assembler.Audit(r.Context(), clientID, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := reportResponse{
		Rows:         make([]rowResponse, 0, len(report.Rows)),
		Unattributed: report.Unattributed,
		Undecomposed: report.Undecomposed,
		Disputed:     report.Disputed,
		Voided:       report.Voided,
	}

	for _, row := range report.Rows {
		resp.Rows = append(resp.Rows, rowResponse{
			ProviderInvoiceID: row.ProviderInvoiceID,
			FeeType:           string(row.FeeType),
			TransactionCount:  row.TransactionCount,
			ExpectedCents:     row.ExpectedCents,
			BilledCents:       row.BilledCents,
			GapCents:          row.GapCents(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
