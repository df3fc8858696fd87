package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/invoice"
)

type invoicesState int

const (
	invoicesStateList invoicesState = iota
	invoicesStateConfirmDiscard
)

// InvoicesModel lists generated invoices and drives their lifecycle:
// approve, mark sent, discard drafts, regenerate superseded versions.
type InvoicesModel struct {
	CommonModel
	assembler *invoice.Assembler

	state invoicesState
	table table.Model
	form  *huh.Form

	invoices       []*invoice.Invoice
	confirmDiscard bool

	status  string
	loading bool
}

func NewInvoicesModel(assembler *invoice.Assembler) InvoicesModel {
	columns := []table.Column{
		{Title: "Number", Width: 18},
		{Title: "Client", Width: 10},
		{Title: "Period", Width: 23},
		{Title: "Total", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Ver", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return InvoicesModel{
		assembler: assembler,
		table:     t,
		loading:   true,
		status:    "Loading invoices...",
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.state == invoicesStateConfirmDiscard {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "R":
			m.loading = true
			m.status = "Reloading..."

			return m, m.loadInvoicesCmd()
		case "a":
			if inv := m.selected(); inv != nil {
				return m, m.transitionCmd(inv.ID, m.assembler.Approve, "approved")
			}
		case "s":
			if inv := m.selected(); inv != nil {
				return m, m.transitionCmd(inv.ID, m.assembler.MarkSent, "marked sent")
			}
		case "d":
			if inv := m.selected(); inv != nil {
				m.confirmDiscard = false
				m.form = discardForm(&m.confirmDiscard, inv.Number)
				m.state = invoicesStateConfirmDiscard
				m.table.Blur()

				return m, m.form.Init()
			}
		case "r":
			if inv := m.selected(); inv != nil {
				return m, m.regenerateCmd(inv.ID)
			}
		}

	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}

		m.invoices = msg.invoices
		m.setRows()
		m.status = fmt.Sprintf("%d invoices", len(m.invoices))

	case invoiceActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}

		m.status = msg.done
		m.loading = true

		return m, m.loadInvoicesCmd()
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = invoicesStateList
		m.table.Focus()

		if m.confirmDiscard {
			if inv := m.selected(); inv != nil {
				return m, m.discardCmd(inv.ID)
			}
		}

		return m, nil
	}

	return m, cmd
}

func (m InvoicesModel) View() string {
	if m.state == invoicesStateConfirmDiscard {
		return lipgloss.NewStyle().Padding(2).Render(m.form.View())
	}

	help := "a approve / s send / d discard / r regenerate / R reload / esc back"

	return lipgloss.NewStyle().Padding(1).Render(
		fmt.Sprintf("%s\n\n%s\n\n%s", m.status, m.table.View(), help),
	)
}

func (m *InvoicesModel) setRows() {
	rows := make([]table.Row, 0, len(m.invoices))

	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Number,
			inv.ClientID.String()[:8],
			fmt.Sprintf("%s..%s", FormatDate(inv.PeriodStart), FormatDate(inv.PeriodEnd)),
			FormatAmount(inv.TotalCents),
			string(inv.Status),
			fmt.Sprintf("%d", inv.Version),
		})
	}

	m.table.SetRows(rows)
}

func (m InvoicesModel) selected() *invoice.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}

	return m.invoices[idx]
}

func discardForm(confirm *bool, number string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Discard draft %s?", number)).
				Description("Its transactions become billable again.").
				Value(confirm),
		),
	).WithWidth(45).WithShowHelp(false)
}

type invoicesLoadedMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invs, err := m.assembler.List(ctx, invoice.ListFilter{})

		return invoicesLoadedMsg{invoices: invs, err: err}
	}
}

type invoiceActionMsg struct {
	done string
	err  error
}

func (m InvoicesModel) transitionCmd(id uuid.UUID, apply func(ctx context.Context, id uuid.UUID) error, done string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceActionMsg{done: done, err: apply(ctx, id)}
	}
}

func (m InvoicesModel) discardCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceActionMsg{done: "draft discarded", err: m.assembler.Discard(ctx, id)}
	}
}

func (m InvoicesModel) regenerateCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		next, err := m.assembler.Regenerate(ctx, id)
		if err != nil {
			return invoiceActionMsg{err: err}
		}

		return invoiceActionMsg{done: fmt.Sprintf("regenerated as v%d", next.Version)}
	}
}
