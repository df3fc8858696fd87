package attribution_test

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

	"github.com/MrJamesThe3rd/rebill/internal/anchor"
	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

func TestResolver_ResolveWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	clientID := uuid.New()
	multiInvoice := "SB-MULTI"

	store := attribution.NewMockStore(ctrl)
	anchors := attribution.NewMockAnchors(ctrl)
	siblings := attribution.NewMockSiblings(ctrl)

	txs := []*transaction.Transaction{
		// Resolves via shipment anchor.
		{ID: "t1", ReferenceType: transaction.ReferenceShipment, ReferenceID: "12001"},
		// Conflict: multi-tenant settlement invoice; pass continues.
		{ID: "t2", ReferenceType: transaction.ReferenceDefault, ReferenceID: "0", ProviderInvoiceID: &multiInvoice},
		// No strategy succeeds.
		{ID: "t3", ReferenceType: transaction.ReferenceDefault, ReferenceID: "", Comment: "misc"},
	}

	store.EXPECT().
		List(gomock.Any(), transaction.ListFilter{Unattributed: true, From: &from, To: &to}).
		Return(txs, nil)

	anchors.EXPECT().
		Shipment(gomock.Any(), "12001").
		Return(&anchor.Shipment{ID: "12001", ClientID: clientID}, nil)
	siblings.EXPECT().
		ClientsOnProviderInvoice(gomock.Any(), multiInvoice).
		Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

	store.EXPECT().
		SetClient(gomock.Any(), "t1", clientID).
		Return(nil)

	r := attribution.NewResolver(store, anchors, siblings, zerolog.Nop())

	result, err := r.ResolveWindow(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, 1, result.Unresolved)
	assert.Equal(t, 1, result.Conflicts)
}

func TestResolver_ResolveWindow_AbortsOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := attribution.NewMockStore(ctrl)
	anchors := attribution.NewMockAnchors(ctrl)
	siblings := attribution.NewMockSiblings(ctrl)

	store.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	r := attribution.NewResolver(store, anchors, siblings, zerolog.Nop())

	_, err := r.ResolveWindow(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}

func TestResolver_ResolveWindow_DeterministicFirstStrategyWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	anchorClient := uuid.New()
	providerInvoice := "SB-100"

	store := attribution.NewMockStore(ctrl)
	anchors := attribution.NewMockAnchors(ctrl)
	siblings := attribution.NewMockSiblings(ctrl)

	// The anchor strategy succeeds, so sibling lookup must never run even
	// though the row carries a settlement invoice.
	store.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return([]*transaction.Transaction{
			{ID: "t1", ReferenceType: transaction.ReferenceShipment, ReferenceID: "12001", ProviderInvoiceID: &providerInvoice},
		}, nil)
	anchors.EXPECT().
		Shipment(gomock.Any(), "12001").
		Return(&anchor.Shipment{ID: "12001", ClientID: anchorClient}, nil)
	store.EXPECT().
		SetClient(gomock.Any(), "t1", anchorClient).
		Return(nil)

	r := attribution.NewResolver(store, anchors, siblings, zerolog.Nop())

	result, err := r.ResolveWindow(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
}
