package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// assemblyLockKey derives the per-tenant advisory lock key. Two assembler
// runs for the same tenant contend here; different tenants never do.
func assemblyLockKey(clientID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("assembly"))
	h.Write([]byte{0})
	h.Write(clientID[:])

	return int64(h.Sum64())
}

type assemblyTx struct {
	tx *sql.Tx
}

// BeginAssembly opens the assembly transaction and takes the tenant's
// advisory lock. The lock is transaction-scoped, so commit or rollback
// releases it.
func (s *Store) BeginAssembly(ctx context.Context, clientID uuid.UUID) (invoice.AssemblyTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning assembly tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", assemblyLockKey(clientID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring assembly lock: %w", err)
	}

	return &assemblyTx{tx: dbTx}, nil
}

func (atx *assemblyTx) Commit() error   { return atx.tx.Commit() }
func (atx *assemblyTx) Rollback() error { return atx.tx.Rollback() }

const selectInvoiceColumns = `
	i.id, i.invoice_number, i.client_id, i.period_start, i.period_end,
	i.subtotal_cents, i.markup_cents, i.total_cents,
	i.status, i.version, i.replaced_by, i.created_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var status string

	if err := s.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.PeriodStart, &inv.PeriodEnd,
		&inv.SubtotalCents, &inv.MarkupCents, &inv.TotalCents,
		&status, &inv.Version, &inv.ReplacedBy, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(status)

	return &inv, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, err := getInvoice(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	lines, err := loadLines(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	inv.Lines = lines

	return inv, nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getInvoice(ctx context.Context, q querier, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices i WHERE i.id = $1`

	inv, err := scanInvoice(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func loadLines(ctx context.Context, q querier, invoiceID uuid.UUID) ([]invoice.Line, error) {
	query := `
		SELECT id, invoice_id, fee_type, transaction_count, subtotal_cents, markup_cents, total_cents
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY fee_type ASC
	`

	rows, err := q.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("loading invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []invoice.Line

	for rows.Next() {
		var line invoice.Line

		var feeType string

		if err := rows.Scan(
			&line.ID, &line.InvoiceID, &feeType, &line.TransactionCount,
			&line.SubtotalCents, &line.MarkupCents, &line.TotalCents,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice line: %w", err)
		}

		line.FeeType = transaction.FeeType(feeType)
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice lines: %w", err)
	}

	return lines, nil
}

func (s *Store) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices i WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND i.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND i.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY i.created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invs, nil
}

func (s *Store) MarkupRules(ctx context.Context, clientID uuid.UUID) ([]invoice.MarkupRule, error) {
	query := `
		SELECT id, client_id, fee_type, kind, basis_points, flat_cents, COALESCE(facility_country, '')
		FROM markup_rules
		WHERE client_id = $1
		ORDER BY fee_type ASC, facility_country ASC NULLS LAST
	`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading markup rules: %w", err)
	}
	defer rows.Close()

	var rules []invoice.MarkupRule

	for rows.Next() {
		var rule invoice.MarkupRule

		var feeType, kind string

		if err := rows.Scan(
			&rule.ID, &rule.ClientID, &feeType, &kind,
			&rule.BasisPoints, &rule.FlatCents, &rule.FacilityCountry,
		); err != nil {
			return nil, fmt.Errorf("scanning markup rule: %w", err)
		}

		rule.FeeType = transaction.FeeType(feeType)
		rule.Kind = invoice.MarkupKind(kind)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating markup rules: %w", err)
	}

	return rules, nil
}

// SetStatus transitions the invoice's lifecycle status, guarded on the
// current one. A missed guard distinguishes a missing invoice from one in
// the wrong status.
func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, from, to invoice.Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := getInvoice(ctx, s.db, id); err != nil {
			return err
		}

		return invoice.ErrStatusConflict
	}

	return nil
}

// SelectEligible picks the billable rows for the selection, locking them for
// the duration of the assembly transaction. Eligibility requires full
// normalization: tax policy applied (or no taxes to apply) and, for
// shipping, the decomposition filled. Blocked rows hold back only
// themselves.
func (atx *assemblyTx) SelectEligible(ctx context.Context, clientID uuid.UUID, sel invoice.Selection) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, fee_type, cost_cents, facility_country, charge_date
		FROM transactions
		WHERE client_id = $1
		  AND dispute_status IS NULL
		  AND NOT voided
		  AND invoice_id IS NULL
		  AND (tax_corrected OR jsonb_array_length(taxes) = 0)
		  AND (fee_type <> $2 OR base_cost_cents IS NOT NULL)
	`

	args := []any{clientID, transaction.FeeShipping}

	if len(sel.ProviderInvoiceIDs) > 0 {
		query += " AND provider_invoice_id = ANY($3)"

		args = append(args, sel.ProviderInvoiceIDs)
	} else {
		query += " AND charge_date >= $3 AND charge_date <= $4"

		args = append(args, sel.PeriodStart, sel.PeriodEnd)
	}

	query += " ORDER BY charge_date ASC, id ASC FOR UPDATE"

	rows, err := atx.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting eligible transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		var tx transaction.Transaction

		var feeType string

		var facilityCountry sql.NullString

		if err := rows.Scan(&tx.ID, &feeType, &tx.CostCents, &facilityCountry, &tx.ChargeDate); err != nil {
			return nil, fmt.Errorf("scanning eligible transaction: %w", err)
		}

		tx.FeeType = transaction.FeeType(feeType)
		tx.FacilityCountry = facilityCountry.String
		tx.ClientID = &clientID

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating eligible transactions: %w", err)
	}

	return txs, nil
}

// NextInvoiceNumber increments the tenant's sequence row and formats the
// human-readable number. The increment happens inside the assembly
// transaction, so numbers stay monotonic per tenant.
func (atx *assemblyTx) NextInvoiceNumber(ctx context.Context, clientID uuid.UUID) (string, error) {
	query := `
		INSERT INTO invoice_sequences (client_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (client_id) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value
	`

	var seq int64
	if err := atx.tx.QueryRowContext(ctx, query, clientID).Scan(&seq); err != nil {
		return "", fmt.Errorf("advancing invoice sequence: %w", err)
	}

	prefix := clientID.String()[:8]

	return fmt.Sprintf("INV-%s-%04d", prefix, seq), nil
}

func (atx *assemblyTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, invoice_number, client_id, period_start, period_end,
			subtotal_cents, markup_cents, total_cents, status, version, replaced_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`

	err := atx.tx.QueryRowContext(ctx, query,
		inv.ID, inv.Number, inv.ClientID, inv.PeriodStart, inv.PeriodEnd,
		inv.SubtotalCents, inv.MarkupCents, inv.TotalCents,
		inv.Status, inv.Version, inv.ReplacedBy,
	).Scan(&inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	lineQuery := `
		INSERT INTO invoice_lines (id, invoice_id, fee_type, transaction_count, subtotal_cents, markup_cents, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.InvoiceID = inv.ID

		_, err := atx.tx.ExecContext(ctx, lineQuery,
			line.ID, line.InvoiceID, line.FeeType, line.TransactionCount,
			line.SubtotalCents, line.MarkupCents, line.TotalCents,
		)
		if err != nil {
			return fmt.Errorf("inserting invoice line %s: %w", line.FeeType, err)
		}
	}

	return nil
}

// StampTransactions links the selected rows to the invoice. The invoice_id
// guard means a row another assembly grabbed first simply is not stamped;
// the caller compares the count and rolls back on a shortfall.
func (atx *assemblyTx) StampTransactions(ctx context.Context, invoiceID uuid.UUID, txIDs []string) (int64, error) {
	query := `
		UPDATE transactions
		SET invoice_id = $1, invoiced = TRUE, updated_at = NOW()
		WHERE id = ANY($2) AND invoice_id IS NULL
	`

	res, err := atx.tx.ExecContext(ctx, query, invoiceID, txIDs)
	if err != nil {
		return 0, fmt.Errorf("stamping transactions: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (atx *assemblyTx) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	return getInvoice(ctx, atx.tx, id)
}

func (atx *assemblyTx) StampedTransactionIDs(ctx context.Context, invoiceID uuid.UUID) ([]string, error) {
	query := `SELECT id FROM transactions WHERE invoice_id = $1 ORDER BY id ASC`

	rows, err := atx.tx.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing stamped transactions: %w", err)
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning stamped transaction id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stamped transaction ids: %w", err)
	}

	return ids, nil
}

// ResetTransactions unlinks exactly the rows stamped with this invoice id.
// Scoping by invoice id, not by tenant or period, is what keeps discards
// from re-opening unrelated history.
func (atx *assemblyTx) ResetTransactions(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	query := `
		UPDATE transactions
		SET invoice_id = NULL, invoiced = FALSE, updated_at = NOW()
		WHERE invoice_id = $1
	`

	res, err := atx.tx.ExecContext(ctx, query, invoiceID)
	if err != nil {
		return 0, fmt.Errorf("resetting transactions: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (atx *assemblyTx) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := atx.tx.ExecContext(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, id); err != nil {
		return fmt.Errorf("deleting invoice lines: %w", err)
	}

	if _, err := atx.tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

func (atx *assemblyTx) LinkReplacement(ctx context.Context, oldID, newID uuid.UUID) error {
	query := `UPDATE invoices SET replaced_by = $1 WHERE id = $2`

	if _, err := atx.tx.ExecContext(ctx, query, newID, oldID); err != nil {
		return fmt.Errorf("linking replacement: %w", err)
	}

	return nil
}

// AuditReport aggregates expected (provider-settled) vs billed totals per
// settlement invoice per fee category, plus counts of rows blocked from
// billing.
func (s *Store) AuditReport(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*invoice.AuditReport, error) {
	query := `
		SELECT provider_invoice_id, fee_type,
		       COUNT(*),
		       COALESCE(SUM(cost_cents), 0),
		       COALESCE(SUM(cost_cents) FILTER (WHERE invoice_id IS NOT NULL), 0)
		FROM transactions
		WHERE client_id = $1
		  AND provider_invoice_id IS NOT NULL
		  AND NOT voided
		  AND charge_date >= $2 AND charge_date <= $3
		GROUP BY provider_invoice_id, fee_type
		ORDER BY provider_invoice_id ASC, fee_type ASC
	`

	rows, err := s.db.QueryContext(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("building audit report: %w", err)
	}
	defer rows.Close()

	var report invoice.AuditReport

	for rows.Next() {
		var row invoice.AuditRow

		var feeType string

		if err := rows.Scan(&row.ProviderInvoiceID, &feeType, &row.TransactionCount, &row.ExpectedCents, &row.BilledCents); err != nil {
			return nil, fmt.Errorf("scanning audit row: %w", err)
		}

		row.FeeType = transaction.FeeType(feeType)
		report.Rows = append(report.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit rows: %w", err)
	}

	countQuery := `
		SELECT
			COUNT(*) FILTER (WHERE client_id IS NULL AND NOT voided),
			COUNT(*) FILTER (WHERE fee_type = $4 AND base_cost_cents IS NULL AND NOT voided),
			COUNT(*) FILTER (WHERE dispute_status IS NOT NULL),
			COUNT(*) FILTER (WHERE voided)
		FROM transactions
		WHERE charge_date >= $2 AND charge_date <= $3
		  AND (client_id = $1 OR client_id IS NULL)
	`

	err = s.db.QueryRowContext(ctx, countQuery, clientID, from, to, transaction.FeeShipping).
		Scan(&report.Unattributed, &report.Undecomposed, &report.Disputed, &report.Voided)
	if err != nil {
		return nil, fmt.Errorf("counting blocked transactions: %w", err)
	}

	return &report, nil
}
