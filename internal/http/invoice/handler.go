package invoice

import (
	"context"
	"encoding/json"
	"errors"
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
	r.Post("/", h.assemble)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.discard)
	r.Post("/{id}/regenerate", h.regenerate)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/send", h.send)
}

type assembleRequest struct {
	ClientID           uuid.UUID `json:"client_id"`
	PeriodStart        string    `json:"period_start,omitempty"`
	PeriodEnd          string    `json:"period_end,omitempty"`
	ProviderInvoiceIDs []string  `json:"provider_invoice_ids,omitempty"`
}

func (h *Handler) assemble(w http.ResponseWriter, r *http.Request) {
	var req assembleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ClientID == uuid.Nil {
		http.Error(w, "client_id is required", http.StatusBadRequest)
		return
	}

	sel := invoice.Selection{ProviderInvoiceIDs: req.ProviderInvoiceIDs}

	if len(req.ProviderInvoiceIDs) == 0 {
		start, err := time.Parse(time.DateOnly, req.PeriodStart)
		if err != nil {
			http.Error(w, "period_start or provider_invoice_ids required", http.StatusBadRequest)
			return
		}

		end, err := time.Parse(time.DateOnly, req.PeriodEnd)
		if err != nil {
			http.Error(w, "period_end is required with period_start", http.StatusBadRequest)
			return
		}

		sel.PeriodStart = start
		sel.PeriodEnd = end
	}

	inv, err := h.assembler.Assemble(r.Context(), req.ClientID, sel)
	if err != nil {
		if errors.Is(err, invoice.ErrNothingToBill) {
			http.Error(w, "no billable transactions in selection", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := invoice.ListFilter{}

	if s := r.URL.Query().Get("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid client_id", http.StatusBadRequest)
			return
		}

		filter.ClientID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		st := invoice.Status(s)
		filter.Status = &st
	}

	invs, err := h.assembler.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]response, len(invs))
	for i, inv := range invs {
		out[i] = toResponse(inv)
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.assembler.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) discard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.assembler.Discard(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		case errors.Is(err, invoice.ErrNotDraft):
			http.Error(w, "only drafts can be discarded", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) regenerate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.assembler.Regenerate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		case errors.Is(err, invoice.ErrNotDraft):
			http.Error(w, "discard drafts instead of regenerating", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.assembler.Approve)
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.assembler.MarkSent)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, invoice.ErrNotFound):
			http.Error(w, "invoice not found", http.StatusNotFound)
		case errors.Is(err, invoice.ErrStatusConflict):
			http.Error(w, "invoice is not in the required status", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type response struct {
	ID            uuid.UUID      `json:"id"`
	Number        string         `json:"invoice_number"`
	ClientID      uuid.UUID      `json:"client_id"`
	PeriodStart   time.Time      `json:"period_start"`
	PeriodEnd     time.Time      `json:"period_end"`
	SubtotalCents int64          `json:"subtotal_cents"`
	MarkupCents   int64          `json:"markup_cents"`
	TotalCents    int64          `json:"total_cents"`
	Status        invoice.Status `json:"status"`
	Version       int            `json:"version"`
	ReplacedBy    *uuid.UUID     `json:"replaced_by,omitempty"`
	Lines         []lineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type lineResponse struct {
	FeeType          string `json:"fee_type"`
	TransactionCount int    `json:"transaction_count"`
	SubtotalCents    int64  `json:"subtotal_cents"`
	MarkupCents      int64  `json:"markup_cents"`
	TotalCents       int64  `json:"total_cents"`
}

func toResponse(inv *invoice.Invoice) response {
	resp := response{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		PeriodStart:   inv.PeriodStart,
		PeriodEnd:     inv.PeriodEnd,
		SubtotalCents: inv.SubtotalCents,
		MarkupCents:   inv.MarkupCents,
		TotalCents:    inv.TotalCents,
		Status:        inv.Status,
		Version:       inv.Version,
		ReplacedBy:    inv.ReplacedBy,
		CreatedAt:     inv.CreatedAt,
	}

	for _, line := range inv.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			FeeType:          string(line.FeeType),
			TransactionCount: line.TransactionCount,
			SubtotalCents:    line.SubtotalCents,
			MarkupCents:      line.MarkupCents,
			TotalCents:       line.TotalCents,
		})
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
