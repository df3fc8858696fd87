package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

type Handler struct {
	svc      *transaction.Service
	resolver *attribution.Resolver
}

func NewHandler(svc *transaction.Service, resolver *attribution.Resolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/unattributed", h.listUnattributed)
	r.Get("/{id}", h.get)
	r.Get("/{id}/resolution", h.resolution)
	r.Post("/{id}/client", h.assignClient)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid client_id", http.StatusBadRequest)
			return
		}

		filter.ClientID = &id
	}

	if s := r.URL.Query().Get("fee_type"); s != "" {
		ft := transaction.FeeType(s)
		filter.FeeType = &ft
	}

	if s := r.URL.Query().Get("provider_invoice_id"); s != "" {
		filter.ProviderInvoiceID = &s
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = &t
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = &t
		}
	}

	if r.URL.Query().Get("unbilled") == "true" {
		filter.Unbilled = true
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) listUnattributed(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListUnattributed(r.Context(), 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

type resolutionResponse struct {
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	Strategy string     `json:"strategy,omitempty"`
	Resolved bool       `json:"resolved"`
}

// resolution previews what the attribution chain would decide for one
// transaction without writing anything. Review tooling shows this next to
// the manual assignment form.
func (h *Handler) resolution(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	clientID, strategy, ok, err := h.resolver.Resolve(r.Context(), tx)
	if err != nil && !errors.Is(err, attribution.ErrMultiTenantInvoice) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := resolutionResponse{Resolved: ok, Strategy: strategy}
	if ok {
		resp.ClientID = &clientID
	}

	writeJSON(w, http.StatusOK, resp)
}

type assignClientRequest struct {
	ClientID uuid.UUID `json:"client_id"`
}

func (h *Handler) assignClient(w http.ResponseWriter, r *http.Request) {
	var req assignClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ClientID == uuid.Nil {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.svc.AssignClient(r.Context(), id, req.ClientID); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusConflict)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type response struct {
	ID                string            `json:"id"`
	ReferenceType     string            `json:"reference_type"`
	ReferenceID       string            `json:"reference_id"`
	FeeType           string            `json:"fee_type"`
	RawCostCents      int64             `json:"raw_cost_cents"`
	CostCents         int64             `json:"cost_cents"`
	TaxCorrected      bool              `json:"tax_corrected"`
	BaseCostCents     *int64            `json:"base_cost_cents,omitempty"`
	SurchargeCents    *int64            `json:"surcharge_cents,omitempty"`
	Taxes             []transaction.Tax `json:"taxes,omitempty"`
	ClientID          *uuid.UUID        `json:"client_id,omitempty"`
	ChargeDate        time.Time         `json:"charge_date"`
	TrackingNumber    string            `json:"tracking_number,omitempty"`
	Comment           string            `json:"comment,omitempty"`
	FacilityCountry   string            `json:"facility_country,omitempty"`
	ProviderInvoiceID *string           `json:"provider_invoice_id,omitempty"`
	InvoiceID         *uuid.UUID        `json:"invoice_id,omitempty"`
	DisputeStatus     *string           `json:"dispute_status,omitempty"`
	Voided            bool              `json:"voided"`
}

func toResponse(tx *transaction.Transaction) response {
	return response{
		ID:                tx.ID,
		ReferenceType:     string(tx.ReferenceType),
		ReferenceID:       tx.ReferenceID,
		FeeType:           string(tx.FeeType),
		RawCostCents:      tx.RawCostCents,
		CostCents:         tx.CostCents,
		TaxCorrected:      tx.TaxCorrected,
		BaseCostCents:     tx.BaseCostCents,
		SurchargeCents:    tx.SurchargeCents,
		Taxes:             tx.Taxes,
		ClientID:          tx.ClientID,
		ChargeDate:        tx.ChargeDate,
		TrackingNumber:    tx.TrackingNumber,
		Comment:           tx.Comment,
		FacilityCountry:   tx.FacilityCountry,
		ProviderInvoiceID: tx.ProviderInvoiceID,
		InvoiceID:         tx.InvoiceID,
		DisputeStatus:     tx.DisputeStatus,
		Voided:            tx.Voided,
	}
}

func toResponseList(txs []*transaction.Transaction) []response {
	out := make([]response, len(txs))
	for i, tx := range txs {
		out[i] = toResponse(tx)
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
