// Package provider talks to the fulfillment provider's billing API. The API
// returns transactions either by explicit date window (pending stream) or by
// settlement invoice (closed stream), both paginated.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

// ErrRateLimited is returned when the API answers 429. Callers are expected
// to cool down before retrying, never to retry immediately.
var ErrRateLimited = errors.New("provider rate limited")

// RawTransaction mirrors the provider's wire format. Amounts arrive as
// decimal numbers; reference_id is opaque until reference_type is read.
type RawTransaction struct {
	TransactionID     string            `json:"transaction_id"`
	ReferenceID       string            `json:"reference_id"`
	ReferenceType     string            `json:"reference_type"`
	TransactionFee    string            `json:"transaction_fee"`
	Amount            json.Number       `json:"amount"`
	ChargeDate        string            `json:"charge_date"`
	InvoiceID         *string           `json:"invoice_id"`
	InvoicedStatus    bool              `json:"invoiced_status"`
	Taxes             []RawTax          `json:"taxes"`
	AdditionalDetails map[string]string `json:"additional_details"`
}

type RawTax struct {
	Name   string      `json:"name"`
	Amount json.Number `json:"amount"`
}

// Page is one page of either stream. Next is the cursor for the following
// page; empty means the stream is drained.
type Page struct {
	Transactions []RawTransaction `json:"transactions"`
	Next         string           `json:"next"`
}

// Client is the paginated transaction stream collaborator. Retry/backoff
// beyond rate-limit signalling is the implementation's concern.
//
//go:generate mockgen -source=provider.go -destination=client_mock.go -package=provider
type Client interface {
	// TransactionsByDate queries the pending stream. The date window is
	// mandatory: the API's defaults are unbounded and non-deterministic.
	TransactionsByDate(ctx context.Context, from, to time.Time, pageToken string) (*Page, error)

	// TransactionsByInvoice queries one settlement invoice's stream.
	TransactionsByInvoice(ctx context.Context, providerInvoiceID, pageToken string) (*Page, error)
}

const chargeDateLayout = "2006-01-02"

// ToTransaction converts a wire record into a store row. The ingested amount
// lands in both RawCostCents and CostCents; the normalizer later converges
// CostCents to pre-tax.
func (r RawTransaction) ToTransaction() (*transaction.Transaction, error) {
	cents, err := toCents(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: parsing amount: %w", r.TransactionID, err)
	}

	chargeDate, err := time.Parse(chargeDateLayout, r.ChargeDate)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: parsing charge date: %w", r.TransactionID, err)
	}

	taxes := make([]transaction.Tax, 0, len(r.Taxes))

	for _, t := range r.Taxes {
		taxCents, err := toCents(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: parsing tax %q: %w", r.TransactionID, t.Name, err)
		}

		taxes = append(taxes, transaction.Tax{Name: t.Name, AmountCents: taxCents})
	}

	tx := &transaction.Transaction{
		ID:                r.TransactionID,
		ReferenceType:     transaction.ReferenceType(r.ReferenceType),
		ReferenceID:       r.ReferenceID,
		FeeType:           transaction.FeeType(r.TransactionFee),
		RawCostCents:      cents,
		CostCents:         cents,
		Taxes:             taxes,
		ChargeDate:        chargeDate,
		TrackingNumber:    r.AdditionalDetails["tracking_number"],
		Comment:           r.AdditionalDetails["comment"],
		FacilityCountry:   r.AdditionalDetails["facility_country"],
		ProviderInvoiceID: r.InvoiceID,
	}

	return tx, nil
}

func toCents(n json.Number) (int64, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
