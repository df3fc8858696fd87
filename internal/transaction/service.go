package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	// UpsertBatch writes one ingestion page atomically, keyed on the
	// provider transaction id. Conflicting rows only refresh their
	// settlement fields; normalized costs and attribution are left alone.
	UpsertBatch(ctx context.Context, txs []*Transaction) (UpsertStats, error)

	Get(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	SetClient(ctx context.Context, id string, clientID uuid.UUID) error
	SetCost(ctx context.Context, id string, costCents int64) error
	FillDecomposition(ctx context.Context, params DecompositionParams) (bool, error)

	VoidDuplicates(ctx context.Context, from, to time.Time) (int64, error)

	ClientsOnProviderInvoice(ctx context.Context, providerInvoiceID string) ([]uuid.UUID, error)
	BillableClients(ctx context.Context, from, to time.Time) ([]uuid.UUID, error)
}

// UpsertStats reports the net effect of one page upsert.
type UpsertStats struct {
	Inserted int
	Updated  int
}

// ListFilter narrows List queries. Nil/zero fields are ignored.
type ListFilter struct {
	ClientID             *uuid.UUID
	FeeType              *FeeType
	ProviderInvoiceID    *string
	From                 *time.Time
	To                   *time.Time
	Unattributed         bool
	Unbilled             bool
	MissingDecomposition bool
	NeedsTaxCorrection   bool
	Limit                int
}

// DecompositionParams locates a single shipping transaction by its
// (shipment, tracking, charge date) key and supplies the split. Matching on
// tracking as well as shipment is load-bearing: a reshipment produces two
// shipping rows for the same shipment id.
type DecompositionParams struct {
	ReferenceID    string
	TrackingNumber string
	ChargeDate     time.Time
	BaseCents      int64
	SurchargeCents int64
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.List(ctx, filter)
}

// ListUnattributed returns rows still waiting on a tenant, oldest first.
func (s *Service) ListUnattributed(ctx context.Context, limit int) ([]*Transaction, error) {
	return s.repo.List(ctx, ListFilter{Unattributed: true, Limit: limit})
}

// AssignClient sets the owning tenant on a row that does not have one yet.
// Rows already billed or voided are refused: client_id is write-once.
func (s *Service) AssignClient(ctx context.Context, id string, clientID uuid.UUID) error {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if tx.InvoiceID != nil {
		return fmt.Errorf("transaction %s is already billed", id)
	}

	if tx.Voided {
		return fmt.Errorf("transaction %s is voided", id)
	}

	if tx.ClientID != nil && *tx.ClientID != clientID {
		return fmt.Errorf("transaction %s is already attributed to another client", id)
	}

	return s.repo.SetClient(ctx, id, clientID)
}

// VoidDuplicates enforces the at-most-one-charge invariant per
// (reference_id, tracking, settlement invoice) triple inside the window.
// It returns the number of rows voided.
func (s *Service) VoidDuplicates(ctx context.Context, from, to time.Time) (int64, error) {
	return s.repo.VoidDuplicates(ctx, from, to)
}

// BillableClients lists tenants that have eligible rows in the window; the
// pipeline fans out over this set.
func (s *Service) BillableClients(ctx context.Context, from, to time.Time) ([]uuid.UUID, error) {
	return s.repo.BillableClients(ctx, from, to)
}
