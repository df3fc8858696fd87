package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.reference_type, t.reference_id, t.fee_type,
	t.raw_cost_cents, t.cost_cents, t.tax_corrected,
	t.base_cost_cents, t.surcharge_cents, t.taxes,
	t.client_id, t.charge_date, t.tracking_number, t.comment, t.facility_country,
	t.provider_invoice_id, t.invoice_id, t.invoiced,
	t.dispute_status, t.voided, t.created_at, t.updated_at
`

// scanTransaction reads a transaction row in selectTransactionColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var (
		refType, feeType string
		taxesJSON        []byte
		baseCost         sql.NullInt64
		surcharge        sql.NullInt64
		clientID         *uuid.UUID
		tracking         sql.NullString
		comment          sql.NullString
		facilityCountry  sql.NullString
		providerInvoice  sql.NullString
		invoiceID        *uuid.UUID
		disputeStatus    sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &refType, &tx.ReferenceID, &feeType,
		&tx.RawCostCents, &tx.CostCents, &tx.TaxCorrected,
		&baseCost, &surcharge, &taxesJSON,
		&clientID, &tx.ChargeDate, &tracking, &comment, &facilityCountry,
		&providerInvoice, &invoiceID, &tx.Invoiced,
		&disputeStatus, &tx.Voided, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.ReferenceType = transaction.ReferenceType(refType)
	tx.FeeType = transaction.FeeType(feeType)
	tx.TrackingNumber = tracking.String
	tx.Comment = comment.String
	tx.FacilityCountry = facilityCountry.String
	tx.ClientID = clientID
	tx.InvoiceID = invoiceID

	if baseCost.Valid {
		tx.BaseCostCents = &baseCost.Int64
	}

	if surcharge.Valid {
		tx.SurchargeCents = &surcharge.Int64
	}

	if providerInvoice.Valid {
		tx.ProviderInvoiceID = &providerInvoice.String
	}

	if disputeStatus.Valid {
		tx.DisputeStatus = &disputeStatus.String
	}

	if len(taxesJSON) > 0 {
		if err := json.Unmarshal(taxesJSON, &tx.Taxes); err != nil {
			return nil, fmt.Errorf("decoding taxes: %w", err)
		}
	}

	return &tx, nil
}

// UpsertBatch writes one ingestion page in a single database transaction.
// Conflicts on the provider transaction id only refresh the settlement
// invoice reference: a row observed pending today may settle days later, and
// nothing else about an already-ingested row may drift on re-ingestion.
func (s *Store) UpsertBatch(ctx context.Context, txs []*transaction.Transaction) (transaction.UpsertStats, error) {
	var stats transaction.UpsertStats

	if len(txs) == 0 {
		return stats, nil
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("beginning upsert tx: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (
			id, reference_type, reference_id, fee_type,
			raw_cost_cents, cost_cents, taxes,
			charge_date, tracking_number, comment, facility_country,
			provider_invoice_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			provider_invoice_id = COALESCE(EXCLUDED.provider_invoice_id, transactions.provider_invoice_id),
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	for _, tx := range txs {
		taxesJSON, err := json.Marshal(tx.Taxes)
		if err != nil {
			return stats, fmt.Errorf("encoding taxes for %s: %w", tx.ID, err)
		}

		var inserted bool

		err = dbTx.QueryRowContext(ctx, query,
			tx.ID,
			tx.ReferenceType,
			tx.ReferenceID,
			tx.FeeType,
			tx.RawCostCents,
			tx.CostCents,
			taxesJSON,
			tx.ChargeDate,
			nullString(tx.TrackingNumber),
			nullString(tx.Comment),
			nullString(tx.FacilityCountry),
			tx.ProviderInvoiceID,
		).Scan(&inserted)
		if err != nil {
			return stats, fmt.Errorf("upserting transaction %s: %w", tx.ID, err)
		}

		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}

	if err := dbTx.Commit(); err != nil {
		return stats, fmt.Errorf("committing upsert: %w", err)
	}

	return stats, nil
}

func (s *Store) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND t.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.FeeType != nil {
		query += fmt.Sprintf(" AND t.fee_type = $%d", argIdx)

		args = append(args, *filter.FeeType)
		argIdx++
	}

	if filter.ProviderInvoiceID != nil {
		query += fmt.Sprintf(" AND t.provider_invoice_id = $%d", argIdx)

		args = append(args, *filter.ProviderInvoiceID)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND t.charge_date >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND t.charge_date <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	if filter.Unattributed {
		query += " AND t.client_id IS NULL AND NOT t.voided"
	}

	if filter.Unbilled {
		query += " AND t.invoice_id IS NULL AND NOT t.voided"
	}

	if filter.MissingDecomposition {
		query += fmt.Sprintf(" AND t.fee_type = '%s' AND t.base_cost_cents IS NULL AND NOT t.voided", transaction.FeeShipping)
	}

	if filter.NeedsTaxCorrection {
		query += " AND NOT t.tax_corrected AND jsonb_array_length(t.taxes) > 0 AND t.invoice_id IS NULL AND NOT t.voided"
	}

	query += " ORDER BY t.charge_date ASC, t.id ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// SetClient attributes a row to a tenant. Billed rows are immutable, so the
// update is guarded on invoice_id.
func (s *Store) SetClient(ctx context.Context, id string, clientID uuid.UUID) error {
	query := `
		UPDATE transactions
		SET client_id = $1, updated_at = NOW()
		WHERE id = $2 AND invoice_id IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, clientID, id)
	if err != nil {
		return fmt.Errorf("setting client: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// SetCost stores the tax-corrected pre-tax cost. The tax_corrected guard
// makes re-runs of the normalizer no-ops.
func (s *Store) SetCost(ctx context.Context, id string, costCents int64) error {
	query := `
		UPDATE transactions
		SET cost_cents = $1, tax_corrected = TRUE, updated_at = NOW()
		WHERE id = $2 AND invoice_id IS NULL AND NOT tax_corrected
	`

	if _, err := s.db.ExecContext(ctx, query, costCents, id); err != nil {
		return fmt.Errorf("setting cost: %w", err)
	}

	return nil
}

// FillDecomposition matches a shipping row by (shipment, tracking, charge
// date) and writes the base/surcharge split. The raw_cost_cents guard keeps
// the conservation invariant: the split must sum to the cost as ingested.
// Rows already decomposed are left alone.
func (s *Store) FillDecomposition(ctx context.Context, params transaction.DecompositionParams) (bool, error) {
	query := `
		UPDATE transactions
		SET base_cost_cents = $1, surcharge_cents = $2, updated_at = NOW()
		WHERE fee_type = $3
		  AND reference_id = $4
		  AND tracking_number = $5
		  AND charge_date = $6
		  AND base_cost_cents IS NULL
		  AND NOT voided
		  AND raw_cost_cents = $1 + $2
	`

	res, err := s.db.ExecContext(ctx, query,
		params.BaseCents,
		params.SurchargeCents,
		transaction.FeeShipping,
		params.ReferenceID,
		params.TrackingNumber,
		params.ChargeDate,
	)
	if err != nil {
		return false, fmt.Errorf("filling decomposition: %w", err)
	}

	n, _ := res.RowsAffected()

	return n > 0, nil
}

// VoidDuplicates voids all but the first charge, ordered by charge_date
// descending, for every (reference_id, tracking, settlement invoice) triple
// in the window. Only settled rows can be duplicates: the triple is not
// meaningful until the provider assigns the settlement invoice.
func (s *Store) VoidDuplicates(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET voided = TRUE, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY reference_id, tracking_number, provider_invoice_id
					ORDER BY charge_date DESC, id DESC
				) AS rn
				FROM transactions
				WHERE provider_invoice_id IS NOT NULL
				  AND NOT voided
				  AND invoice_id IS NULL
				  AND charge_date >= $1 AND charge_date <= $2
			) ranked
			WHERE ranked.rn > 1
		)
	`

	res, err := s.db.ExecContext(ctx, query, from, to)
	if err != nil {
		return 0, fmt.Errorf("voiding duplicates: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

// ClientsOnProviderInvoice returns the distinct resolved tenants appearing on
// one settlement invoice. Sibling attribution only trusts the answer when it
// is a single tenant.
func (s *Store) ClientsOnProviderInvoice(ctx context.Context, providerInvoiceID string) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT client_id
		FROM transactions
		WHERE provider_invoice_id = $1 AND client_id IS NOT NULL AND NOT voided
	`

	return s.queryClientIDs(ctx, query, providerInvoiceID)
}

// BillableClients lists tenants with at least one assembly-eligible row in
// the window.
func (s *Store) BillableClients(ctx context.Context, from, to time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT client_id
		FROM transactions
		WHERE client_id IS NOT NULL
		  AND dispute_status IS NULL
		  AND NOT voided
		  AND invoice_id IS NULL
		  AND charge_date >= $1 AND charge_date <= $2
	`

	return s.queryClientIDs(ctx, query, from, to)
}

func (s *Store) queryClientIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying client ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning client id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client ids: %w", err)
	}

	return ids, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
