// Command reconcile runs one reconciliation batch from the terminal. It is
// the backfill and cron entrypoint; the API server exposes the same run for
// ad-hoc use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rebill/internal/anchor"
	anchorStore "github.com/MrJamesThe3rd/rebill/internal/anchor/store"
	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/config"
	"github.com/MrJamesThe3rd/rebill/internal/database"
	"github.com/MrJamesThe3rd/rebill/internal/extract"
	"github.com/MrJamesThe3rd/rebill/internal/ingest"
	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/rebill/internal/invoice/store"
	"github.com/MrJamesThe3rd/rebill/internal/logging"
	"github.com/MrJamesThe3rd/rebill/internal/normalize"
	"github.com/MrJamesThe3rd/rebill/internal/pipeline"
	"github.com/MrJamesThe3rd/rebill/internal/provider"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
	txStore "github.com/MrJamesThe3rd/rebill/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	var (
		fromFlag       = flag.String("from", "", "window start (YYYY-MM-DD)")
		toFlag         = flag.String("to", "", "window end (YYYY-MM-DD)")
		settlementFlag = flag.String("settlement-invoice", "", "drain one settlement invoice instead of running a window")
		extractDirFlag = flag.String("extract-dir", "", "override the extract directory")
		skipAssembly   = flag.Bool("skip-assembly", false, "stop after normalization, do not assemble invoices")
	)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.App.Env, cfg.Log.Level)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transactions := txStore.New(db)
	providerClient := provider.NewHTTPClient(cfg.Provider.BaseURL, cfg.Provider.Token)

	ingestService := ingest.NewService(providerClient, transactions, ingest.Options{
		PageDelay:       cfg.Provider.PageDelay,
		RateLimitPause:  cfg.Provider.RateLimitPause,
		MaxPageAttempts: cfg.Provider.MaxPageAttempts,
	}, logger)

	if *settlementFlag != "" {
		result, err := ingestService.IngestSettlementInvoice(ctx, *settlementFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("settlement ingest failed")
		}

		logger.Info().
			Int("inserted", result.Inserted).
			Int("updated", result.Updated).
			Msg("settlement invoice drained")

		return
	}

	from, err := time.Parse(time.DateOnly, *fromFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "-from is required (YYYY-MM-DD)")
		os.Exit(2)
	}

	to, err := time.Parse(time.DateOnly, *toFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "-to is required (YYYY-MM-DD)")
		os.Exit(2)
	}

	extractDir := cfg.Extract.Dir
	if *extractDirFlag != "" {
		extractDir = *extractDirFlag
	}

	anchorService := anchor.NewService(anchorStore.New(db), anchor.NopSyncer{})
	resolver := attribution.NewResolver(transactions, anchorService, transactions, logger)
	normalizeService := normalize.NewService(transactions, logger)
	assembler := invoice.NewAssembler(invoiceStore.New(db), logger)

	runner := pipeline.NewRunner(
		ingestService, extract.NewParser(), normalizeService,
		resolver, assembler, transaction.NewService(transactions), logger,
	)

	result, err := runner.Run(ctx, pipeline.Options{
		From:         from,
		To:           to,
		ExtractDir:   extractDir,
		Workers:      cfg.Pipeline.Workers,
		SkipAssembly: *skipAssembly,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("reconciliation run failed")
	}

	logger.Info().
		Int("inserted", result.Ingest.Inserted).
		Int("updated", result.Ingest.Updated).
		Int("resolved", result.Attribution.Resolved).
		Int("unresolved", result.Attribution.Unresolved).
		Int("conflicts", result.Attribution.Conflicts).
		Int("tax_corrected", result.Taxes.Corrected).
		Int("extract_matched", result.Extracts.Matched).
		Int("invoices", len(result.Invoices)).
		Msg("reconciliation run finished")

	for _, inv := range result.Invoices {
		fmt.Printf("%s  %s  v%d  total %d cents\n", inv.Number, inv.ClientID, inv.Version, inv.TotalCents)
	}
}
