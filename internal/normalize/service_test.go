package normalize_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rebill/internal/extract"
	"github.com/MrJamesThe3rd/rebill/internal/normalize"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

var (
	from = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func TestTaxInclusive(t *testing.T) {
	assert.True(t, normalize.TaxInclusive(transaction.FeeShipping))
	assert.True(t, normalize.TaxInclusive(transaction.FeeWROReceiving))
	assert.False(t, normalize.TaxInclusive(transaction.FeeStorage))
	assert.False(t, normalize.TaxInclusive(transaction.FeeWarehousing))
	assert.False(t, normalize.TaxInclusive(transaction.FeeCredit))

	// Unknown categories are never adjusted.
	assert.False(t, normalize.TaxInclusive(transaction.FeeType("Mystery Fee")))
}

func TestService_CorrectTaxes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := normalize.NewMockStore(ctrl)

	txs := []*transaction.Transaction{
		{
			ID:           "t-shipping",
			FeeType:      transaction.FeeShipping,
			RawCostCents: 1120,
			Taxes:        []transaction.Tax{{Name: "GST", AmountCents: 120}},
		},
		{
			ID:           "t-storage",
			FeeType:      transaction.FeeStorage,
			RawCostCents: 500,
			Taxes:        []transaction.Tax{{Name: "GST", AmountCents: 25}},
		},
	}

	store.EXPECT().
		List(gomock.Any(), transaction.ListFilter{From: &from, To: &to, NeedsTaxCorrection: true}).
		Return(txs, nil)

	// Shipping is tax-inclusive: cost drops to pre-tax. Storage arrives
	// pre-tax: cost is confirmed unchanged.
	store.EXPECT().SetCost(gomock.Any(), "t-shipping", int64(1000)).Return(nil)
	store.EXPECT().SetCost(gomock.Any(), "t-storage", int64(500)).Return(nil)

	svc := normalize.NewService(store, zerolog.Nop())

	result, err := svc.CorrectTaxes(context.Background(), nil, from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Corrected)
	assert.Equal(t, 1, result.Confirmed)
}

func TestService_ApplyExtract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := normalize.NewMockStore(ctrl)

	file := &extract.File{
		NominalDate: time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		Rows: []extract.Row{
			{ShipmentID: "12001", TrackingNumber: "T1", BaseCents: 1000, SurchargeCents: 50},
			{ShipmentID: "12002", TrackingNumber: "T2", BaseCents: 800, SurchargeCents: 0},
		},
	}

	chargeDate := time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)

	store.EXPECT().
		FillDecomposition(gomock.Any(), transaction.DecompositionParams{
			ReferenceID:    "12001",
			TrackingNumber: "T1",
			ChargeDate:     chargeDate,
			BaseCents:      1000,
			SurchargeCents: 50,
		}).
		Return(true, nil)
	store.EXPECT().
		FillDecomposition(gomock.Any(), transaction.DecompositionParams{
			ReferenceID:    "12002",
			TrackingNumber: "T2",
			ChargeDate:     chargeDate,
			BaseCents:      800,
			SurchargeCents: 0,
		}).
		Return(false, nil)

	svc := normalize.NewService(store, zerolog.Nop())

	result, err := svc.ApplyExtract(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Unmatched)
}

// A reshipment produces two shipping rows for the same shipment id under
// different tracking numbers and charge dates. Each daily extract must only
// reach its own row.
func TestService_ApplyExtract_ReshipmentKeysOnTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := normalize.NewMockStore(ctrl)

	dec23 := &extract.File{
		NominalDate: time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		Rows:        []extract.Row{{ShipmentID: "12001", TrackingNumber: "T1", BaseCents: 1000}},
	}
	dec27 := &extract.File{
		NominalDate: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
		Rows:        []extract.Row{{ShipmentID: "12001", TrackingNumber: "T2", BaseCents: 1100}},
	}

	store.EXPECT().
		FillDecomposition(gomock.Any(), transaction.DecompositionParams{
			ReferenceID:    "12001",
			TrackingNumber: "T1",
			ChargeDate:     time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC),
			BaseCents:      1000,
		}).
		Return(true, nil)
	store.EXPECT().
		FillDecomposition(gomock.Any(), transaction.DecompositionParams{
			ReferenceID:    "12001",
			TrackingNumber: "T2",
			ChargeDate:     time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
			BaseCents:      1100,
		}).
		Return(true, nil)

	svc := normalize.NewService(store, zerolog.Nop())

	for _, file := range []*extract.File{dec23, dec27} {
		result, err := svc.ApplyExtract(context.Background(), file)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Matched)
	}
}
