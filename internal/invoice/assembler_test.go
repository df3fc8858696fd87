package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

var (
	periodStart = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func TestAssembler_Assemble(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	sel := invoice.Selection{PeriodStart: periodStart, PeriodEnd: periodEnd}

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	rules := []invoice.MarkupRule{
		{ClientID: clientID, FeeType: transaction.FeeShipping, Kind: invoice.MarkupPercentage, BasisPoints: 1500},
		{ClientID: clientID, FeeType: transaction.FeeStorage, Kind: invoice.MarkupFlat, FlatCents: 25},
	}

	txs := []*transaction.Transaction{
		{ID: "t1", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", FeeType: transaction.FeeShipping, CostCents: 2000, ChargeDate: time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC)},
		{ID: "t3", FeeType: transaction.FeeStorage, CostCents: 500, ChargeDate: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)},
	}

	store.EXPECT().MarkupRules(gomock.Any(), clientID).Return(rules, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)

	atx.EXPECT().SelectEligible(gomock.Any(), clientID, sel).Return(txs, nil)
	atx.EXPECT().NextInvoiceNumber(gomock.Any(), clientID).Return("INV-aaaaaaaa-0001", nil)

	var created *invoice.Invoice
	atx.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			created = inv
			return nil
		})
	atx.EXPECT().
		StampTransactions(gomock.Any(), gomock.Any(), []string{"t1", "t2", "t3"}).
		Return(int64(3), nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(errors.New("tx done")).AnyTimes()

	a := invoice.NewAssembler(store, zerolog.Nop())

	inv, err := a.Assemble(context.Background(), clientID, sel)
	require.NoError(t, err)
	require.Same(t, created, inv)

	assert.Equal(t, "INV-aaaaaaaa-0001", inv.Number)
	assert.Equal(t, invoice.StatusDraft, inv.Status)
	assert.Equal(t, 1, inv.Version)
	assert.Equal(t, periodStart, inv.PeriodStart)
	assert.Equal(t, periodEnd, inv.PeriodEnd)

	// One line per fee category, sorted by category name.
	require.Len(t, inv.Lines, 2)

	shipping := inv.Lines[0]
	assert.Equal(t, transaction.FeeShipping, shipping.FeeType)
	assert.Equal(t, 2, shipping.TransactionCount)
	assert.Equal(t, int64(3000), shipping.SubtotalCents)
	assert.Equal(t, int64(450), shipping.MarkupCents)
	assert.Equal(t, int64(3450), shipping.TotalCents)

	storage := inv.Lines[1]
	assert.Equal(t, transaction.FeeStorage, storage.FeeType)
	assert.Equal(t, 1, storage.TransactionCount)
	assert.Equal(t, int64(500), storage.SubtotalCents)
	assert.Equal(t, int64(25), storage.MarkupCents)

	assert.Equal(t, int64(3500), inv.SubtotalCents)
	assert.Equal(t, int64(475), inv.MarkupCents)
	assert.Equal(t, int64(3975), inv.TotalCents)
}

func TestAssembler_Assemble_DerivesPeriodFromCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	sel := invoice.Selection{ProviderInvoiceIDs: []string{"SB-100"}}

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	store.EXPECT().MarkupRules(gomock.Any(), clientID).Return(nil, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)

	atx.EXPECT().SelectEligible(gomock.Any(), clientID, sel).Return([]*transaction.Transaction{
		{ID: "t1", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)},
	}, nil)
	atx.EXPECT().NextInvoiceNumber(gomock.Any(), clientID).Return("INV-aaaaaaaa-0002", nil)
	atx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().StampTransactions(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(int64(2), nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(errors.New("tx done")).AnyTimes()

	a := invoice.NewAssembler(store, zerolog.Nop())

	inv, err := a.Assemble(context.Background(), clientID, sel)
	require.NoError(t, err)

	// Settlement-invoice selections have no declared period; the invoice
	// covers the span of the charges it contains.
	assert.Equal(t, time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC), inv.PeriodStart)
	assert.Equal(t, time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC), inv.PeriodEnd)
	// No markup rules: everything passes through at cost.
	assert.Equal(t, int64(0), inv.MarkupCents)
	assert.Equal(t, int64(2000), inv.TotalCents)
}

func TestAssembler_Assemble_NothingToBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	store.EXPECT().MarkupRules(gomock.Any(), clientID).Return(nil, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)
	atx.EXPECT().SelectEligible(gomock.Any(), clientID, gomock.Any()).Return(nil, nil)
	atx.EXPECT().Rollback().Return(nil)

	a := invoice.NewAssembler(store, zerolog.Nop())

	_, err := a.Assemble(context.Background(), clientID, invoice.Selection{PeriodStart: periodStart, PeriodEnd: periodEnd})
	assert.ErrorIs(t, err, invoice.ErrNothingToBill)
}

func TestAssembler_Assemble_StampShortfallRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	store.EXPECT().MarkupRules(gomock.Any(), clientID).Return(nil, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)
	atx.EXPECT().SelectEligible(gomock.Any(), clientID, gomock.Any()).Return([]*transaction.Transaction{
		{ID: "t1", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: periodStart},
		{ID: "t2", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: periodStart},
	}, nil)
	atx.EXPECT().NextInvoiceNumber(gomock.Any(), clientID).Return("INV-aaaaaaaa-0003", nil)
	atx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)

	// One of the two rows got stamped by someone else: abort, no commit.
	atx.EXPECT().StampTransactions(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(int64(1), nil)
	atx.EXPECT().Rollback().Return(nil)

	a := invoice.NewAssembler(store, zerolog.Nop())

	_, err := a.Assemble(context.Background(), clientID, invoice.Selection{PeriodStart: periodStart, PeriodEnd: periodEnd})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stamped 1 of 2")
}

func TestAssembler_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	invoiceID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	draft := &invoice.Invoice{ID: invoiceID, ClientID: clientID, Status: invoice.StatusDraft}

	store.EXPECT().Get(gomock.Any(), invoiceID).Return(draft, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)
	atx.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(draft, nil)
	atx.EXPECT().ResetTransactions(gomock.Any(), invoiceID).Return(int64(4), nil)
	atx.EXPECT().DeleteInvoice(gomock.Any(), invoiceID).Return(nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(errors.New("tx done")).AnyTimes()

	a := invoice.NewAssembler(store, zerolog.Nop())

	assert.NoError(t, a.Discard(context.Background(), invoiceID))
}

func TestAssembler_Discard_RefusesApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	invoiceID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	store.EXPECT().Get(gomock.Any(), invoiceID).
		Return(&invoice.Invoice{ID: invoiceID, ClientID: clientID, Status: invoice.StatusDraft}, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)

	// Approved between the first read and taking the tenant lock.
	atx.EXPECT().GetInvoice(gomock.Any(), invoiceID).
		Return(&invoice.Invoice{ID: invoiceID, ClientID: clientID, Status: invoice.StatusApproved}, nil)
	atx.EXPECT().Rollback().Return(nil)

	a := invoice.NewAssembler(store, zerolog.Nop())

	assert.ErrorIs(t, a.Discard(context.Background(), invoiceID), invoice.ErrNotDraft)
}

func TestAssembler_Regenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	oldID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	atx := invoice.NewMockAssemblyTx(ctrl)

	old := &invoice.Invoice{
		ID:          oldID,
		Number:      "INV-aaaaaaaa-0001",
		ClientID:    clientID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      invoice.StatusApproved,
		Version:     1,
	}

	rules := []invoice.MarkupRule{
		{ClientID: clientID, FeeType: transaction.FeeShipping, Kind: invoice.MarkupPercentage, BasisPoints: 2000},
	}

	store.EXPECT().Get(gomock.Any(), oldID).Return(old, nil)
	store.EXPECT().MarkupRules(gomock.Any(), clientID).Return(rules, nil)
	store.EXPECT().BeginAssembly(gomock.Any(), clientID).Return(atx, nil)

	atx.EXPECT().StampedTransactionIDs(gomock.Any(), oldID).Return([]string{"t1", "t2"}, nil)
	atx.EXPECT().ResetTransactions(gomock.Any(), oldID).Return(int64(2), nil)

	// t3 became eligible after the original run; it stays out of the
	// replacement and waits for the next regular assembly.
	atx.EXPECT().
		SelectEligible(gomock.Any(), clientID, invoice.Selection{PeriodStart: periodStart, PeriodEnd: periodEnd}).
		Return([]*transaction.Transaction{
			{ID: "t1", FeeType: transaction.FeeShipping, CostCents: 1000, ChargeDate: periodStart},
			{ID: "t2", FeeType: transaction.FeeShipping, CostCents: 2000, ChargeDate: periodStart},
			{ID: "t3", FeeType: transaction.FeeShipping, CostCents: 9000, ChargeDate: periodStart},
		}, nil)

	var created *invoice.Invoice
	atx.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			created = inv
			return nil
		})
	atx.EXPECT().
		StampTransactions(gomock.Any(), gomock.Any(), []string{"t1", "t2"}).
		Return(int64(2), nil)
	atx.EXPECT().
		LinkReplacement(gomock.Any(), oldID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, newID uuid.UUID) error {
			assert.Equal(t, created.ID, newID)
			return nil
		})
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(errors.New("tx done")).AnyTimes()

	a := invoice.NewAssembler(store, zerolog.Nop())

	next, err := a.Regenerate(context.Background(), oldID)
	require.NoError(t, err)

	assert.Equal(t, old.Number, next.Number)
	assert.Equal(t, 2, next.Version)
	assert.Equal(t, invoice.StatusDraft, next.Status)
	assert.NotEqual(t, oldID, next.ID)

	// Re-priced under the current 20% rule.
	assert.Equal(t, int64(3000), next.SubtotalCents)
	assert.Equal(t, int64(600), next.MarkupCents)
	assert.Equal(t, int64(3600), next.TotalCents)
}

func TestAssembler_Regenerate_RefusesDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), invoiceID).
		Return(&invoice.Invoice{ID: invoiceID, Status: invoice.StatusDraft}, nil)

	a := invoice.NewAssembler(store, zerolog.Nop())

	_, err := a.Regenerate(context.Background(), invoiceID)
	assert.ErrorIs(t, err, invoice.ErrNotDraft)
}

func TestAssembler_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()

	store := invoice.NewMockStore(ctrl)
	store.EXPECT().SetStatus(gomock.Any(), invoiceID, invoice.StatusDraft, invoice.StatusApproved).Return(nil)
	store.EXPECT().SetStatus(gomock.Any(), invoiceID, invoice.StatusApproved, invoice.StatusSent).Return(invoice.ErrStatusConflict)

	a := invoice.NewAssembler(store, zerolog.Nop())

	assert.NoError(t, a.Approve(context.Background(), invoiceID))
	assert.ErrorIs(t, a.MarkSent(context.Background(), invoiceID), invoice.ErrStatusConflict)
}
