// Package invoice assembles attributed, normalized, unbilled transactions
// into immutable versioned invoices. Assembly for one tenant is serialized
// through a per-tenant advisory lock held for the whole
// select-price-create-stamp sequence, which is what makes the at-most-once
// billing guarantee structural rather than detected after the fact.
package invoice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

//go:generate mockgen -source=assembler.go -destination=store_mock.go -package=invoice
type Store interface {
	// BeginAssembly opens a database transaction holding the tenant's
	// assembly lock. Everything between selection and stamping happens
	// inside it or not at all.
	BeginAssembly(ctx context.Context, clientID uuid.UUID) (AssemblyTx, error)

	Get(ctx context.Context, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	MarkupRules(ctx context.Context, clientID uuid.UUID) ([]MarkupRule, error)
	AuditReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*AuditReport, error)

	// SetStatus moves an invoice from one lifecycle status to another,
	// guarded on the current status.
	SetStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

type AssemblyTx interface {
	SelectEligible(ctx context.Context, clientID uuid.UUID, sel Selection) ([]*transaction.Transaction, error)
	NextInvoiceNumber(ctx context.Context, clientID uuid.UUID) (string, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	StampTransactions(ctx context.Context, invoiceID uuid.UUID, txIDs []string) (int64, error)

	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	StampedTransactionIDs(ctx context.Context, invoiceID uuid.UUID) ([]string, error)
	ResetTransactions(ctx context.Context, invoiceID uuid.UUID) (int64, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	LinkReplacement(ctx context.Context, oldID, newID uuid.UUID) error

	Commit() error
	Rollback() error
}

type Assembler struct {
	store Store
	log   zerolog.Logger
}

func NewAssembler(store Store, log zerolog.Logger) *Assembler {
	return &Assembler{
		store: store,
		log:   log.With().Str("component", "assembler").Logger(),
	}
}

// Assemble creates a draft invoice for the tenant from the selection and
// stamps exactly the selected transactions, all in one database transaction.
// A concurrent run for the same tenant waits on the lock and then finds
// nothing left to bill.
func (a *Assembler) Assemble(ctx context.Context, clientID uuid.UUID, sel Selection) (*Invoice, error) {
	rules, err := a.store.MarkupRules(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading markup rules: %w", err)
	}

	atx, err := a.store.BeginAssembly(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("beginning assembly: %w", err)
	}
	defer atx.Rollback()

	txs, err := atx.SelectEligible(ctx, clientID, sel)
	if err != nil {
		return nil, fmt.Errorf("selecting eligible transactions: %w", err)
	}

	if len(txs) == 0 {
		return nil, ErrNothingToBill
	}

	inv := buildInvoice(clientID, sel, rules, txs)
	inv.ID = uuid.New()
	inv.Status = StatusDraft
	inv.Version = 1

	number, err := atx.NextInvoiceNumber(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("allocating invoice number: %w", err)
	}

	inv.Number = number

	if err := atx.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	if err := a.stampExactly(ctx, atx, inv.ID, txs); err != nil {
		return nil, err
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("committing assembly: %w", err)
	}

	a.log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("invoice_number", inv.Number).
		Str("client_id", clientID.String()).
		Int("transactions", len(txs)).
		Int64("total_cents", inv.TotalCents).
		Msg("invoice assembled")

	return inv, nil
}

// Discard deletes a draft and resets exactly the transactions it stamped.
// The reset is scoped by invoice id, never by tenant or period: over-broad
// resets have historically re-opened rows months outside the draft.
func (a *Assembler) Discard(ctx context.Context, invoiceID uuid.UUID) error {
	inv, err := a.store.Get(ctx, invoiceID)
	if err != nil {
		return err
	}

	atx, err := a.store.BeginAssembly(ctx, inv.ClientID)
	if err != nil {
		return fmt.Errorf("beginning discard: %w", err)
	}
	defer atx.Rollback()

	// Re-read under the tenant lock; status may have moved since.
	inv, err = atx.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}

	if inv.Status != StatusDraft {
		return ErrNotDraft
	}

	reset, err := atx.ResetTransactions(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("resetting transactions: %w", err)
	}

	if err := atx.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return fmt.Errorf("committing discard: %w", err)
	}

	a.log.Info().
		Str("invoice_id", invoiceID.String()).
		Int64("transactions_reset", reset).
		Msg("draft invoice discarded")

	return nil
}

// Regenerate supersedes an approved or sent invoice: its transactions are
// re-priced under the current markup rules into a new draft version, linked
// via replaced_by. The original's recorded totals are never touched. Drafts
// have no history worth keeping; discard and re-assemble those instead.
func (a *Assembler) Regenerate(ctx context.Context, invoiceID uuid.UUID) (*Invoice, error) {
	old, err := a.store.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if old.Status == StatusDraft {
		return nil, fmt.Errorf("invoice %s: %w: discard drafts instead of regenerating", invoiceID, ErrNotDraft)
	}

	rules, err := a.store.MarkupRules(ctx, old.ClientID)
	if err != nil {
		return nil, fmt.Errorf("loading markup rules: %w", err)
	}

	atx, err := a.store.BeginAssembly(ctx, old.ClientID)
	if err != nil {
		return nil, fmt.Errorf("beginning regeneration: %w", err)
	}
	defer atx.Rollback()

	txIDs, err := atx.StampedTransactionIDs(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading stamped transactions: %w", err)
	}

	if _, err := atx.ResetTransactions(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("unlinking transactions: %w", err)
	}

	txs, err := atx.SelectEligible(ctx, old.ClientID, Selection{
		PeriodStart: old.PeriodStart,
		PeriodEnd:   old.PeriodEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("reselecting transactions: %w", err)
	}

	// Only the rows the old version stamped participate; rows that became
	// eligible since belong to the next regular assembly run.
	txs = filterByID(txs, txIDs)

	next := buildInvoice(old.ClientID, Selection{PeriodStart: old.PeriodStart, PeriodEnd: old.PeriodEnd}, rules, txs)
	next.ID = uuid.New()
	next.Number = old.Number
	next.Status = StatusDraft
	next.Version = old.Version + 1

	if err := atx.CreateInvoice(ctx, next); err != nil {
		return nil, fmt.Errorf("creating replacement invoice: %w", err)
	}

	if err := a.stampExactly(ctx, atx, next.ID, txs); err != nil {
		return nil, err
	}

	if err := atx.LinkReplacement(ctx, invoiceID, next.ID); err != nil {
		return nil, fmt.Errorf("linking replacement: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("committing regeneration: %w", err)
	}

	a.log.Info().
		Str("invoice_id", next.ID.String()).
		Str("replaces", invoiceID.String()).
		Int("version", next.Version).
		Msg("invoice regenerated")

	return next, nil
}

// Approve freezes a draft. From here on the invoice can only be superseded,
// never edited or discarded.
func (a *Assembler) Approve(ctx context.Context, id uuid.UUID) error {
	return a.store.SetStatus(ctx, id, StatusDraft, StatusApproved)
}

// MarkSent records that an approved invoice went out to the tenant.
func (a *Assembler) MarkSent(ctx context.Context, id uuid.UUID) error {
	return a.store.SetStatus(ctx, id, StatusApproved, StatusSent)
}

func (a *Assembler) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return a.store.Get(ctx, id)
}

func (a *Assembler) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return a.store.List(ctx, filter)
}

// Audit builds the reconciliation-audit report: expected vs actual totals
// per settlement invoice per category. It replaces the one-off diagnostic
// scripts this engine grew out of.
func (a *Assembler) Audit(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*AuditReport, error) {
	return a.store.AuditReport(ctx, clientID, from, to)
}

// stampExactly stamps the selected rows and insists every one of them was
// stamped; a shortfall means a concurrent writer slipped past the lock and
// the whole assembly rolls back.
func (a *Assembler) stampExactly(ctx context.Context, atx AssemblyTx, invoiceID uuid.UUID, txs []*transaction.Transaction) error {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}

	stamped, err := atx.StampTransactions(ctx, invoiceID, ids)
	if err != nil {
		return fmt.Errorf("stamping transactions: %w", err)
	}

	if stamped != int64(len(ids)) {
		return fmt.Errorf("stamped %d of %d selected transactions", stamped, len(ids))
	}

	return nil
}

// buildInvoice groups transactions by fee category, applies the tenant's
// markup rules and computes the totals.
func buildInvoice(clientID uuid.UUID, sel Selection, rules []MarkupRule, txs []*transaction.Transaction) *Invoice {
	type bucket struct {
		count    int
		subtotal int64
		markup   int64
	}

	buckets := make(map[transaction.FeeType]*bucket)

	periodStart := sel.PeriodStart
	periodEnd := sel.PeriodEnd

	for _, tx := range txs {
		b := buckets[tx.FeeType]
		if b == nil {
			b = &bucket{}
			buckets[tx.FeeType] = b
		}

		b.count++
		b.subtotal += tx.CostCents
		b.markup += markupCents(pickRule(rules, tx.FeeType, tx.FacilityCountry), tx.CostCents)

		if periodStart.IsZero() || tx.ChargeDate.Before(periodStart) {
			periodStart = tx.ChargeDate
		}

		if periodEnd.IsZero() || tx.ChargeDate.After(periodEnd) {
			periodEnd = tx.ChargeDate
		}
	}

	inv := &Invoice{
		ClientID:    clientID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	feeTypes := make([]transaction.FeeType, 0, len(buckets))
	for fee := range buckets {
		feeTypes = append(feeTypes, fee)
	}

	// Stable line order regardless of selection order.
	sort.Slice(feeTypes, func(i, j int) bool { return feeTypes[i] < feeTypes[j] })

	for _, fee := range feeTypes {
		b := buckets[fee]

		inv.Lines = append(inv.Lines, Line{
			ID:               uuid.New(),
			FeeType:          fee,
			TransactionCount: b.count,
			SubtotalCents:    b.subtotal,
			MarkupCents:      b.markup,
			TotalCents:       b.subtotal + b.markup,
		})

		inv.SubtotalCents += b.subtotal
		inv.MarkupCents += b.markup
	}

	inv.TotalCents = inv.SubtotalCents + inv.MarkupCents

	return inv
}

func filterByID(txs []*transaction.Transaction, ids []string) []*transaction.Transaction {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	out := txs[:0]

	for _, tx := range txs {
		if _, ok := keep[tx.ID]; ok {
			out = append(out, tx)
		}
	}

	return out
}
