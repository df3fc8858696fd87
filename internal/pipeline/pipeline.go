// Package pipeline runs one reconciliation batch end to end: ingest the
// window, apply daily extracts, attribute tenants, normalize taxes and
// assemble per-tenant invoices. Ingestion and attribution are window-global;
// the billing stages fan out per tenant with a bounded worker pool, each
// tenant serialized behind its own assembly lock.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/extract"
	"github.com/MrJamesThe3rd/rebill/internal/ingest"
	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	"github.com/MrJamesThe3rd/rebill/internal/normalize"
)

//go:generate mockgen -source=pipeline.go -destination=pipeline_mock.go -package=pipeline
type Ingestor interface {
	IngestWindow(ctx context.Context, from, to time.Time) (*ingest.Result, error)
}

type Attributor interface {
	ResolveWindow(ctx context.Context, from, to time.Time) (*attribution.Result, error)
}

type Normalizer interface {
	CorrectTaxes(ctx context.Context, clientID *uuid.UUID, from, to time.Time) (*normalize.TaxResult, error)
	ApplyExtract(ctx context.Context, file *extract.File) (*normalize.ExtractResult, error)
}

type Assembler interface {
	Assemble(ctx context.Context, clientID uuid.UUID, sel invoice.Selection) (*invoice.Invoice, error)
}

type Clients interface {
	BillableClients(ctx context.Context, from, to time.Time) ([]uuid.UUID, error)
}

// Options configure one run.
type Options struct {
	From, To time.Time

	// ExtractDir holds the provider's daily shipping-cost extracts. Empty
	// skips the extract stage.
	ExtractDir string

	// Workers bounds the per-tenant fan-out.
	Workers int

	// SkipAssembly stops after normalization, leaving everything reviewable
	// but unbilled.
	SkipAssembly bool
}

// Result aggregates the stage summaries of one run.
type Result struct {
	Ingest      *ingest.Result
	Extracts    normalize.ExtractResult
	Attribution *attribution.Result
	Taxes       normalize.TaxResult

	Invoices       []*invoice.Invoice
	EmptySelection int
}

type Runner struct {
	ingestor   Ingestor
	parser     *extract.Parser
	normalizer Normalizer
	attributor Attributor
	assembler  Assembler
	clients    Clients
	log        zerolog.Logger
}

func NewRunner(
	ingestor Ingestor,
	parser *extract.Parser,
	normalizer Normalizer,
	attributor Attributor,
	assembler Assembler,
	clients Clients,
	log zerolog.Logger,
) *Runner {
	return &Runner{
		ingestor:   ingestor,
		parser:     parser,
		normalizer: normalizer,
		attributor: attributor,
		assembler:  assembler,
		clients:    clients,
		log:        log.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes one batch. Every stage is idempotent, so a run that fails
// partway can simply be repeated for the same window.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.From.IsZero() || opts.To.IsZero() {
		return nil, errors.New("a charge window is required")
	}

	result := &Result{}

	ingested, err := r.ingestor.IngestWindow(ctx, opts.From, opts.To)
	if err != nil {
		return nil, fmt.Errorf("ingest stage: %w", err)
	}

	result.Ingest = ingested

	if opts.ExtractDir != "" {
		if err := r.applyExtracts(ctx, opts.ExtractDir, result); err != nil {
			return nil, fmt.Errorf("extract stage: %w", err)
		}
	}

	resolved, err := r.attributor.ResolveWindow(ctx, opts.From, opts.To)
	if err != nil {
		return nil, fmt.Errorf("attribution stage: %w", err)
	}

	result.Attribution = resolved

	if err := r.billTenants(ctx, opts, result); err != nil {
		return nil, err
	}

	r.log.Info().
		Time("from", opts.From).
		Time("to", opts.To).
		Int("invoices", len(result.Invoices)).
		Msg("reconciliation run done")

	return result, nil
}

// applyExtracts parses every CSV in the directory in name order and applies
// it. A file that fails to parse is logged and skipped; its rows surface
// later as undecomposed shipping transactions.
func (r *Runner) applyExtracts(ctx context.Context, dir string, result *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading extract dir: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	for _, name := range names {
		file, err := r.parser.ParseFile(filepath.Join(dir, name))
		if err != nil {
			r.log.Warn().Err(err).Str("file", name).Msg("skipping unparseable extract")
			continue
		}

		applied, err := r.normalizer.ApplyExtract(ctx, file)
		if err != nil {
			return fmt.Errorf("applying extract %s: %w", name, err)
		}

		result.Extracts.Matched += applied.Matched
		result.Extracts.Unmatched += applied.Unmatched
	}

	return nil
}

// billTenants runs tax correction and assembly for every billable tenant,
// at most opts.Workers tenants at a time. An empty selection for one tenant
// is normal; any other failure aborts the run.
func (r *Runner) billTenants(ctx context.Context, opts Options, result *Result) error {
	clients, err := r.clients.BillableClients(ctx, opts.From, opts.To)
	if err != nil {
		return fmt.Errorf("listing billable clients: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)

	if opts.Workers > 0 {
		group.SetLimit(opts.Workers)
	}

	var mu sync.Mutex

	for _, clientID := range clients {
		clientID := clientID
		group.Go(func() error {
			taxes, err := r.normalizer.CorrectTaxes(ctx, &clientID, opts.From, opts.To)
			if err != nil {
				return fmt.Errorf("correcting taxes for client %s: %w", clientID, err)
			}

			mu.Lock()
			result.Taxes.Corrected += taxes.Corrected
			result.Taxes.Confirmed += taxes.Confirmed
			mu.Unlock()

			if opts.SkipAssembly {
				return nil
			}

			inv, err := r.assembler.Assemble(ctx, clientID, invoice.Selection{
				PeriodStart: opts.From,
				PeriodEnd:   opts.To,
			})
			if errors.Is(err, invoice.ErrNothingToBill) {
				mu.Lock()
				result.EmptySelection++
				mu.Unlock()

				return nil
			}

			if err != nil {
				return fmt.Errorf("assembling invoice for client %s: %w", clientID, err)
			}

			mu.Lock()
			result.Invoices = append(result.Invoices, inv)
			mu.Unlock()

			return nil
		})
	}

	return group.Wait()
}
