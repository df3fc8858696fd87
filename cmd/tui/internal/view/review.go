package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

// ReviewModel walks the unattributed queue one transaction at a time. Each
// row is shown with the resolver's dry-run suggestion prefilled; enter
// assigns the entered tenant, "s" skips without writing.
type ReviewModel struct {
	CommonModel
	txService *transaction.Service
	resolver  *attribution.Resolver

	queue     []*transaction.Transaction
	currentTx *transaction.Transaction

	clientInput textinput.Model

	suggestedBy string
	status      string
	loading     bool
	totalCount  int
}

func NewReviewModel(txSvc *transaction.Service, resolver *attribution.Resolver) ReviewModel {
	ti := textinput.New()
	ti.Placeholder = "client UUID"
	ti.Width = 40

	return ReviewModel{
		txService:   txSvc,
		resolver:    resolver,
		clientInput: ti,
		status:      "Loading unattributed transactions...",
		loading:     true,
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "enter":
			if m.currentTx != nil {
				return m, m.assignCmd(m.clientInput.Value())
			}
		case "ctrl+s":
			if m.currentTx != nil {
				m.nextTx()
				return m, m.suggestCmd()
			}
		}

	case queueLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading queue: %v", msg.err)
			break
		}

		m.queue = msg.txs
		m.totalCount = len(m.queue)

		if len(m.queue) > 0 {
			m.nextTx()
			return m, tea.Batch(textinput.Blink, m.suggestCmd())
		}

		m.status = "No unattributed transactions."

	case suggestionMsg:
		if msg.txID == currentID(m.currentTx) && msg.resolved {
			m.clientInput.SetValue(msg.clientID.String())
			m.suggestedBy = msg.strategy
		}

	case assignResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error assigning: %v", msg.err)
			break
		}

		if len(m.queue) > 0 {
			m.nextTx()
			return m, tea.Batch(textinput.Blink, m.suggestCmd())
		}

		m.currentTx = nil
		m.status = "All done!"
		m.clientInput.SetValue("")
	}

	m.clientInput, cmd = m.clientInput.Update(msg)

	return m, cmd
}

func (m ReviewModel) View() string {
	content := ""

	switch {
	case m.loading:
		content = "Loading unattributed transactions..."
	case m.currentTx != nil:
		tx := m.currentTx

		info := fmt.Sprintf(
			"Date:      %s\nFee:       %s\nReference: %s %s\nCost:      %s\nComment:   %s\n",
			FormatDate(tx.ChargeDate),
			tx.FeeType,
			tx.ReferenceType,
			tx.ReferenceID,
			FormatAmount(tx.CostCents),
			tx.Comment,
		)

		suggestion := ""
		if m.suggestedBy != "" {
			suggestion = fmt.Sprintf(" (suggested by %s)", m.suggestedBy)
		}

		content = fmt.Sprintf(
			"%s\n%s\nAssign client%s:\n%s\n\n(Enter to assign, Ctrl+S to skip, Esc to back)",
			m.status, info, suggestion, m.clientInput.View(),
		)
	default:
		content = m.status + "\n\n(Esc to back)"
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type queueLoadedMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ReviewModel) loadQueueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.ListUnattributed(ctx, 0)

		return queueLoadedMsg{txs: txs, err: err}
	}
}

type suggestionMsg struct {
	txID     string
	clientID uuid.UUID
	strategy string
	resolved bool
}

// suggestCmd runs the attribution chain dry for the current transaction; a
// conflict or miss just leaves the input empty.
func (m ReviewModel) suggestCmd() tea.Cmd {
	tx := m.currentTx

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		clientID, strategy, ok, err := m.resolver.Resolve(ctx, tx)
		if err != nil {
			return suggestionMsg{txID: tx.ID}
		}

		return suggestionMsg{txID: tx.ID, clientID: clientID, strategy: strategy, resolved: ok}
	}
}

type assignResultMsg struct {
	err error
}

func (m ReviewModel) assignCmd(value string) tea.Cmd {
	tx := m.currentTx

	return func() tea.Msg {
		clientID, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return assignResultMsg{err: fmt.Errorf("invalid client UUID")}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		return assignResultMsg{err: m.txService.AssignClient(ctx, tx.ID, clientID)}
	}
}

func (m *ReviewModel) nextTx() {
	if len(m.queue) == 0 {
		m.currentTx = nil
		m.status = "All done! Queue is empty."
		m.clientInput.Blur()

		return
	}

	m.currentTx = m.queue[0]
	m.queue = m.queue[1:]
	m.suggestedBy = ""
	m.clientInput.SetValue("")
	m.clientInput.Focus()

	currentIdx := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", currentIdx, m.totalCount)
}

func currentID(tx *transaction.Transaction) string {
	if tx == nil {
		return ""
	}

	return tx.ID
}
