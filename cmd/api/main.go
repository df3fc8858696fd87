package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rebill/internal/anchor"
	anchorStore "github.com/MrJamesThe3rd/rebill/internal/anchor/store"
	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/config"
	"github.com/MrJamesThe3rd/rebill/internal/database"
	rebillHttp "github.com/MrJamesThe3rd/rebill/internal/http"
	auditHandler "github.com/MrJamesThe3rd/rebill/internal/http/audit"
	invoiceHandler "github.com/MrJamesThe3rd/rebill/internal/http/invoice"
	runHandler "github.com/MrJamesThe3rd/rebill/internal/http/run"
	txHandler "github.com/MrJamesThe3rd/rebill/internal/http/transaction"
	"github.com/MrJamesThe3rd/rebill/internal/ingest"
	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/rebill/internal/invoice/store"
	"github.com/MrJamesThe3rd/rebill/internal/logging"
	"github.com/MrJamesThe3rd/rebill/internal/normalize"
	"github.com/MrJamesThe3rd/rebill/internal/pipeline"
	"github.com/MrJamesThe3rd/rebill/internal/provider"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
	txStore "github.com/MrJamesThe3rd/rebill/internal/transaction/store"

	"github.com/MrJamesThe3rd/rebill/internal/extract"
)

func main() {
	_ = godotenv.Load()

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

	transactions := txStore.New(db)
	anchors := anchorStore.New(db)
	invoices := invoiceStore.New(db)

	providerClient := provider.NewHTTPClient(cfg.Provider.BaseURL, cfg.Provider.Token)

	var (
		transactionService = transaction.NewService(transactions)
		anchorService      = anchor.NewService(anchors, anchor.NopSyncer{})
		resolver           = attribution.NewResolver(transactions, anchorService, transactions, logger)
		normalizeService   = normalize.NewService(transactions, logger)
		ingestService      = ingest.NewService(providerClient, transactions, ingest.Options{
			PageDelay:       cfg.Provider.PageDelay,
			RateLimitPause:  cfg.Provider.RateLimitPause,
			MaxPageAttempts: cfg.Provider.MaxPageAttempts,
		}, logger)
		assembler = invoice.NewAssembler(invoices, logger)
		runner    = pipeline.NewRunner(
			ingestService, extract.NewParser(), normalizeService,
			resolver, assembler, transactionService, logger,
		)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService, resolver)
		invoiceH     = invoiceHandler.NewHandler(assembler)
		runH         = runHandler.NewHandler(runner, ingestService, cfg.Extract.Dir, cfg.Pipeline.Workers)
		auditH       = auditHandler.NewHandler(assembler)
	)

	router := rebillHttp.New(transactionH, invoiceH, runH, auditH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info().Str("port", port).Msg("starting server")

	if err := http.ListenAndServe(port, router); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
