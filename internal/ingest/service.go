// Package ingest pulls provider transactions into the transaction store.
// Both streams are merged by transaction id through idempotent upserts, so
// re-running any window is safe: the only net change a re-run may produce is
// a pending row picking up its settlement invoice.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MrJamesThe3rd/rebill/internal/provider"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ingest
type Store interface {
	UpsertBatch(ctx context.Context, txs []*transaction.Transaction) (transaction.UpsertStats, error)
	VoidDuplicates(ctx context.Context, from, to time.Time) (int64, error)
}

// Options tune the throttle between paginated calls. The billing API
// enforces a request-rate ceiling; a 429 gets a cooldown, not an immediate
// retry.
type Options struct {
	PageDelay       time.Duration
	RateLimitPause  time.Duration
	MaxPageAttempts int
}

func (o *Options) withDefaults() Options {
	opts := *o

	if opts.RateLimitPause <= 0 {
		opts.RateLimitPause = 30 * time.Second
	}

	if opts.MaxPageAttempts <= 0 {
		opts.MaxPageAttempts = 3
	}

	return opts
}

// Result summarizes one ingestion run.
type Result struct {
	Pages     int
	Inserted  int
	Updated   int
	Malformed int
	Voided    int64
}

type Service struct {
	client provider.Client
	store  Store
	opts   Options
	log    zerolog.Logger
}

func NewService(client provider.Client, store Store, opts Options, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		opts:   opts.withDefaults(),
		log:    log.With().Str("component", "ingest").Logger(),
	}
}

// IngestWindow drains the pending stream for the window, upserting each page
// in its own database transaction. A failed page aborts the window; pages
// already committed stay valid. After the drain it voids duplicate charges
// inside the window.
func (s *Service) IngestWindow(ctx context.Context, from, to time.Time) (*Result, error) {
	result, err := s.drain(ctx, func(ctx context.Context, pageToken string) (*provider.Page, error) {
		return s.client.TransactionsByDate(ctx, from, to, pageToken)
	})
	if err != nil {
		return nil, fmt.Errorf("ingesting window %s..%s: %w",
			from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	voided, err := s.store.VoidDuplicates(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("voiding duplicates: %w", err)
	}

	result.Voided = voided

	s.log.Info().
		Int("pages", result.Pages).
		Int("inserted", result.Inserted).
		Int("updated", result.Updated).
		Int("malformed", result.Malformed).
		Int64("voided", voided).
		Msg("window ingested")

	return result, nil
}

// IngestSettlementInvoice drains one closed settlement invoice's stream. The
// settled copies carry the provider invoice id, which wins over pending
// copies already in the store.
func (s *Service) IngestSettlementInvoice(ctx context.Context, providerInvoiceID string) (*Result, error) {
	result, err := s.drain(ctx, func(ctx context.Context, pageToken string) (*provider.Page, error) {
		return s.client.TransactionsByInvoice(ctx, providerInvoiceID, pageToken)
	})
	if err != nil {
		return nil, fmt.Errorf("ingesting settlement invoice %s: %w", providerInvoiceID, err)
	}

	s.log.Info().
		Str("provider_invoice_id", providerInvoiceID).
		Int("pages", result.Pages).
		Int("inserted", result.Inserted).
		Int("updated", result.Updated).
		Msg("settlement invoice ingested")

	return result, nil
}

type pageFetch func(ctx context.Context, pageToken string) (*provider.Page, error)

// drain follows the cursor until it is absent. A truncated drain is a
// correctness bug, so every page must be fetched or the whole run errors.
func (s *Service) drain(ctx context.Context, fetch pageFetch) (*Result, error) {
	var result Result

	pageToken := ""

	for {
		page, err := s.fetchWithCooldown(ctx, fetch, pageToken)
		if err != nil {
			return nil, err
		}

		result.Pages++

		txs := make([]*transaction.Transaction, 0, len(page.Transactions))

		for _, raw := range page.Transactions {
			tx, err := raw.ToTransaction()
			if err != nil {
				// A single malformed record must not abort the batch.
				result.Malformed++

				s.log.Warn().Err(err).Str("transaction_id", raw.TransactionID).Msg("skipping malformed transaction")

				continue
			}

			txs = append(txs, tx)
		}

		stats, err := s.store.UpsertBatch(ctx, txs)
		if err != nil {
			return nil, fmt.Errorf("upserting page %d: %w", result.Pages, err)
		}

		result.Inserted += stats.Inserted
		result.Updated += stats.Updated

		if page.Next == "" {
			return &result, nil
		}

		pageToken = page.Next

		if err := sleep(ctx, s.opts.PageDelay); err != nil {
			return nil, err
		}
	}
}

func (s *Service) fetchWithCooldown(ctx context.Context, fetch pageFetch, pageToken string) (*provider.Page, error) {
	for attempt := 1; ; attempt++ {
		page, err := fetch(ctx, pageToken)
		if err == nil {
			return page, nil
		}

		if !errors.Is(err, provider.ErrRateLimited) || attempt >= s.opts.MaxPageAttempts {
			return nil, err
		}

		s.log.Warn().
			Int("attempt", attempt).
			Dur("pause", s.opts.RateLimitPause).
			Msg("rate limited, cooling down")

		if err := sleep(ctx, s.opts.RateLimitPause); err != nil {
			return nil, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
