// Package attribution assigns owning tenants to transactions that did not
// arrive with one. Strategies run in a fixed order and the first success
// wins, so resolution is deterministic for a given anchor snapshot. Rows no
// strategy can place stay unattributed and are surfaced for manual review;
// they are never invoiced.
package attribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

//go:generate mockgen -source=resolver.go -destination=resolver_mock.go -package=attribution
type Store interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	SetClient(ctx context.Context, id string, clientID uuid.UUID) error
}

// Result summarizes one resolution pass. Unresolved is a reviewable count,
// not an error; Conflicts counts rows excluded by data inconsistencies such
// as multi-tenant settlement invoices.
type Result struct {
	Resolved   int
	Unresolved int
	Conflicts  int
}

type Resolver struct {
	store      Store
	strategies []Strategy
	log        zerolog.Logger
}

// NewResolver wires the strategy chain in its fixed fallback order: direct
// anchor lookup, then sibling-invoice adoption, then free-text parsing.
func NewResolver(store Store, anchors Anchors, siblings Siblings, log zerolog.Logger) *Resolver {
	return &Resolver{
		store: store,
		strategies: []Strategy{
			anchorStrategy{anchors: anchors},
			siblingStrategy{siblings: siblings},
			freeTextStrategy{anchors: anchors},
		},
		log: log.With().Str("component", "attribution").Logger(),
	}
}

// ResolveWindow attempts to attribute every unattributed transaction in the
// window. Per-row failures are logged and counted; they never abort the
// pass.
func (r *Resolver) ResolveWindow(ctx context.Context, from, to time.Time) (*Result, error) {
	txs, err := r.store.List(ctx, transaction.ListFilter{
		Unattributed: true,
		From:         &from,
		To:           &to,
	})
	if err != nil {
		return nil, fmt.Errorf("listing unattributed transactions: %w", err)
	}

	var result Result

	for _, tx := range txs {
		clientID, strategy, ok, err := r.resolve(ctx, tx)

		switch {
		case errors.Is(err, ErrMultiTenantInvoice):
			result.Conflicts++

			r.log.Warn().
				Str("transaction_id", tx.ID).
				Str("provider_invoice_id", deref(tx.ProviderInvoiceID)).
				Msg("sibling attribution conflict, needs manual resolution")

			continue

		case err != nil:
			return nil, fmt.Errorf("resolving transaction %s: %w", tx.ID, err)

		case !ok:
			result.Unresolved++
			continue
		}

		if err := r.store.SetClient(ctx, tx.ID, clientID); err != nil {
			return nil, fmt.Errorf("attributing transaction %s: %w", tx.ID, err)
		}

		result.Resolved++

		r.log.Debug().
			Str("transaction_id", tx.ID).
			Str("client_id", clientID.String()).
			Str("strategy", strategy).
			Msg("transaction attributed")
	}

	r.log.Info().
		Int("resolved", result.Resolved).
		Int("unresolved", result.Unresolved).
		Int("conflicts", result.Conflicts).
		Msg("attribution pass done")

	return &result, nil
}

// Resolve runs the strategy chain for a single transaction without writing
// anything. Exposed for review tooling.
func (r *Resolver) Resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, string, bool, error) {
	return r.resolve(ctx, tx)
}

func (r *Resolver) resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, string, bool, error) {
	for _, strategy := range r.strategies {
		clientID, ok, err := strategy.Resolve(ctx, tx)
		if err != nil {
			return uuid.Nil, strategy.Name(), false, err
		}

		if ok {
			return clientID, strategy.Name(), true, nil
		}
	}

	return uuid.Nil, "", false, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
