package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/invoice"
)

type auditState int

const (
	auditStateForm auditState = iota
	auditStateReport
)

// AuditModel asks for a tenant and window, then renders the expected-vs-
// billed reconciliation report.
type AuditModel struct {
	CommonModel
	assembler *invoice.Assembler

	state auditState
	form  *huh.Form

	formClient string
	formFrom   string
	formTo     string

	report *invoice.AuditReport
	status string
}

func NewAuditModel(assembler *invoice.Assembler) AuditModel {
	m := AuditModel{assembler: assembler}
	m.form = m.newForm()

	return m
}

func (m *AuditModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("client").
				Title("Client UUID").
				Value(&m.formClient).
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a valid UUID")
					}
					return nil
				}),

			huh.NewInput().
				Key("from").
				Title("From").
				Placeholder("YYYY-MM-DD").
				Value(&m.formFrom),

			huh.NewInput().
				Key("to").
				Title("To").
				Placeholder("YYYY-MM-DD").
				Value(&m.formTo),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m AuditModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			if m.state == auditStateReport {
				m.state = auditStateForm
				m.form = m.newForm()

				return m, m.form.Init()
			}

			return m, Back
		}

	case auditLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}

		m.report = msg.report
		m.state = auditStateReport
		m.status = ""
	}

	if m.state == auditStateForm {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			return m, m.loadReportCmd()
		}

		return m, cmd
	}

	return m, nil
}

func (m AuditModel) View() string {
	if m.state == auditStateForm {
		content := m.form.View()
		if m.status != "" {
			content += "\n" + m.status
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-20s %-20s %6s %12s %12s %12s\n",
		"Settlement", "Fee", "Count", "Expected", "Billed", "Gap"))

	for _, row := range m.report.Rows {
		b.WriteString(fmt.Sprintf("%-20s %-20s %6d %12s %12s %12s\n",
			row.ProviderInvoiceID,
			row.FeeType,
			row.TransactionCount,
			FormatAmount(row.ExpectedCents),
			FormatAmount(row.BilledCents),
			FormatAmount(row.GapCents()),
		))
	}

	b.WriteString(fmt.Sprintf(
		"\nBlocked: %d unattributed, %d undecomposed, %d disputed, %d voided\n\n(Esc to back)",
		m.report.Unattributed, m.report.Undecomposed, m.report.Disputed, m.report.Voided,
	))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

type auditLoadedMsg struct {
	report *invoice.AuditReport
	err    error
}

func (m AuditModel) loadReportCmd() tea.Cmd {
	return func() tea.Msg {
		clientID, err := uuid.Parse(strings.TrimSpace(m.formClient))
		if err != nil {
			return auditLoadedMsg{err: err}
		}

		from, err := time.Parse(time.DateOnly, strings.TrimSpace(m.formFrom))
		if err != nil {
			return auditLoadedMsg{err: fmt.Errorf("from: %w", err)}
		}

		to, err := time.Parse(time.DateOnly, strings.TrimSpace(m.formTo))
		if err != nil {
			return auditLoadedMsg{err: fmt.Errorf("to: %w", err)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.assembler.Audit(ctx, clientID, from, to)

		return auditLoadedMsg{report: report, err: err}
	}
}
