package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

var (
	ErrNotFound = errors.New("invoice not found")

	// ErrNotDraft is returned when discarding anything past draft; approved
	// and sent invoices are immutable and can only be superseded by a new
	// version.
	ErrNotDraft = errors.New("invoice is not a draft")

	// ErrNothingToBill means no eligible transactions matched the selection.
	ErrNothingToBill = errors.New("no billable transactions in selection")

	// ErrStatusConflict is returned on a lifecycle transition whose invoice
	// is not in the required current status.
	ErrStatusConflict = errors.New("invoice is not in the required status")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusSent     Status = "sent"
)

// Invoice is a generated, markup-adjusted tenant invoice. Once created its
// recorded totals never change; regeneration produces a new version linked
// through ReplacedBy.
type Invoice struct {
	ID            uuid.UUID
	Number        string
	ClientID      uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	SubtotalCents int64
	MarkupCents   int64
	TotalCents    int64
	Status        Status
	Version       int
	ReplacedBy    *uuid.UUID
	Lines         []Line
	CreatedAt     time.Time
}

// Line is one fee-category bucket on an invoice.
type Line struct {
	ID               uuid.UUID
	InvoiceID        uuid.UUID
	FeeType          transaction.FeeType
	TransactionCount int
	SubtotalCents    int64
	MarkupCents      int64
	TotalCents       int64
}

type MarkupKind string

const (
	MarkupPercentage MarkupKind = "percentage"
	MarkupFlat       MarkupKind = "flat"
)

// MarkupRule is a per-tenant, per-category adjustment. FacilityCountry is an
// optional sub-rule discriminator: a rule with one set only applies to
// transactions charged from that country and wins over the category default.
type MarkupRule struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	FeeType  transaction.FeeType
	Kind     MarkupKind

	// BasisPoints for percentage rules (1500 = 15%); FlatCents is charged
	// per transaction for flat rules.
	BasisPoints     int64
	FlatCents       int64
	FacilityCountry string
}

// ListFilter narrows invoice listings.
type ListFilter struct {
	ClientID *uuid.UUID
	Status   *Status
	Limit    int
}

// Selection picks the transactions an assembly run considers: either an
// explicit charge period or a set of settlement invoices. Exactly one must
// be set.
type Selection struct {
	PeriodStart        time.Time
	PeriodEnd          time.Time
	ProviderInvoiceIDs []string
}

func (s Selection) byPeriod() bool {
	return len(s.ProviderInvoiceIDs) == 0
}
