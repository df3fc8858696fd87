package invoice

import "github.com/MrJamesThe3rd/rebill/internal/transaction"

// AuditReport reconciles what the provider settled against what has been
// billed onward, per settlement invoice per fee category. A non-zero gap or
// blocked count is something to read, not a reason to write a new script.
type AuditReport struct {
	Rows []AuditRow

	// Blocked counts: rows that cannot reach an invoice yet and why.
	Unattributed int
	Undecomposed int
	Disputed     int
	Voided       int
}

// AuditRow compares one (settlement invoice, fee category) cell.
type AuditRow struct {
	ProviderInvoiceID string
	FeeType           transaction.FeeType
	TransactionCount  int

	// ExpectedCents is the provider's settled pre-tax total; BilledCents is
	// what generated invoices have captured of it.
	ExpectedCents int64
	BilledCents   int64
}

// GapCents is the unbilled remainder for the cell.
func (r AuditRow) GapCents() int64 {
	return r.ExpectedCents - r.BilledCents
}
