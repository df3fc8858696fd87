package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// ReferenceType tells how ReferenceID must be interpreted. The provider
// overloads a single reference_id field: it is a shipment id, a return id, a
// receiving-order id or a composite storage key depending on this value.
type ReferenceType string

const (
	ReferenceShipment ReferenceType = "Shipment"
	ReferenceReturn   ReferenceType = "Return"
	ReferenceWRO      ReferenceType = "WRO"
	ReferenceFC       ReferenceType = "FC"
	ReferenceDefault  ReferenceType = "Default"
)

// FeeType categorizes the charge. It drives markup-rule selection, invoice
// line bucketing and the per-category tax policy.
type FeeType string

const (
	FeeShipping     FeeType = "Shipping"
	FeeStorage      FeeType = "Storage"
	FeeWarehousing  FeeType = "Warehousing Fee"
	FeeCredit       FeeType = "Credit"
	FeeWROReceiving FeeType = "WRO Receiving Fee"
	FeeDefault      FeeType = "Default"
)

// Tax is one itemized tax line. Taxes are additive on top of the pre-tax
// cost; they are never part of CostCents once normalization has run.
type Tax struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// Transaction is a normalized provider billing record. ID is assigned by the
// provider and is monotonically sortable, so it doubles as ingestion order.
type Transaction struct {
	ID            string
	ReferenceType ReferenceType
	ReferenceID   string
	FeeType       FeeType

	// RawCostCents is the amount exactly as ingested. CostCents starts equal
	// to it and converges to the pre-tax billable amount once the normalizer
	// has applied the per-category tax policy.
	RawCostCents   int64
	CostCents      int64
	TaxCorrected   bool
	BaseCostCents  *int64 // shipping only, filled from the daily extract
	SurchargeCents *int64
	Taxes          []Tax

	ClientID       *uuid.UUID
	ChargeDate     time.Time
	TrackingNumber string
	Comment        string

	// FacilityCountry is the charging facility's country when the provider
	// reports it; markup sub-rules key on it.
	FacilityCountry string

	// ProviderInvoiceID is the upstream settlement invoice; nullable until
	// the provider closes billing for the period.
	ProviderInvoiceID *string

	// InvoiceID is the generated invoice this row has been billed into. A
	// non-nil value makes the row immutable for billing purposes.
	InvoiceID *uuid.UUID
	Invoiced  bool

	DisputeStatus *string
	Voided        bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TotalTaxCents sums the itemized taxes.
func (t *Transaction) TotalTaxCents() int64 {
	var sum int64
	for _, tax := range t.Taxes {
		sum += tax.AmountCents
	}

	return sum
}

// Billable reports whether the row is eligible for invoice assembly.
func (t *Transaction) Billable() bool {
	return t.ClientID != nil &&
		t.DisputeStatus == nil &&
		!t.Voided &&
		t.InvoiceID == nil
}

// Settled reports whether the provider has closed billing for this row.
func (t *Transaction) Settled() bool {
	return t.ProviderInvoiceID != nil
}
