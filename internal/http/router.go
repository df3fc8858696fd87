package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/rebill/internal/http/audit"
	"github.com/MrJamesThe3rd/rebill/internal/http/invoice"
	"github.com/MrJamesThe3rd/rebill/internal/http/run"
	"github.com/MrJamesThe3rd/rebill/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	invoicesV1 *invoice.Handler,
	runsV1 *run.Handler,
	auditV1 *audit.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			transactionsV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})

		r.Route("/runs", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			runsV1.Routes(r)
		})

		r.Route("/audit", auditV1.Routes)
	})

	return router
}
