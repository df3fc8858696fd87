package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rebill/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/rebill/internal/anchor"
	anchorStore "github.com/MrJamesThe3rd/rebill/internal/anchor/store"
	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/config"
	"github.com/MrJamesThe3rd/rebill/internal/database"
	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/rebill/internal/invoice/store"
	"github.com/MrJamesThe3rd/rebill/internal/logging"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
	txStore "github.com/MrJamesThe3rd/rebill/internal/transaction/store"
)

type model struct {
	txService *transaction.Service
	resolver  *attribution.Resolver
	assembler *invoice.Assembler

	currentView View

	reviewView   view.ReviewModel
	invoicesView view.InvoicesModel
	auditView    view.AuditModel
}

type View int

const (
	ViewMenu     View = 0
	ViewReview   View = 1
	ViewInvoices View = 2
	ViewAudit    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.App.Env, "error")

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}

	transactions := txStore.New(db)

	txSvc := transaction.NewService(transactions)
	anchorSvc := anchor.NewService(anchorStore.New(db), anchor.NopSyncer{})
	resolver := attribution.NewResolver(transactions, anchorSvc, transactions, logger)
	assembler := invoice.NewAssembler(invoiceStore.New(db), logger)

	return model{
		txService:    txSvc,
		resolver:     resolver,
		assembler:    assembler,
		currentView:  ViewMenu,
		reviewView:   view.NewReviewModel(txSvc, resolver),
		invoicesView: view.NewInvoicesModel(assembler),
		auditView:    view.NewAuditModel(assembler),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.txService, m.resolver)

				return m, m.reviewView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.assembler)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewAudit
				m.auditView = view.NewAuditModel(m.assembler)

				return m, m.auditView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewAudit:
		var newModel tea.Model
		newModel, cmd = m.auditView.Update(msg)
		m.auditView = newModel.(view.AuditModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Rebill TUI\n\n" +
				"1. Review Unattributed Transactions\n" +
				"2. Manage Invoices\n" +
				"3. Audit Report\n\n" +
				"q. Quit",
		)
	case ViewReview:
		return m.reviewView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewAudit:
		return m.auditView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to run TUI:", err)
		os.Exit(1)
	}
}
