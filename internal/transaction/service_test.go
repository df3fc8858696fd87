package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

func TestService_AssignClient(t *testing.T) {
	clientID := uuid.New()
	otherClient := uuid.New()
	invoiceID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *transaction.MockRepository)
		wantErr   string
	}

	tests := []testCase{
		{
			name: "Unattributed",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(&transaction.Transaction{ID: "tx-1"}, nil)
				m.EXPECT().
					SetClient(gomock.Any(), "tx-1", clientID).
					Return(nil)
			},
		},
		{
			name: "Reassignable to same client",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(&transaction.Transaction{ID: "tx-1", ClientID: &clientID}, nil)
				m.EXPECT().
					SetClient(gomock.Any(), "tx-1", clientID).
					Return(nil)
			},
		},
		{
			name: "Already billed",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(&transaction.Transaction{ID: "tx-1", InvoiceID: &invoiceID}, nil)
			},
			wantErr: "already billed",
		},
		{
			name: "Voided",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(&transaction.Transaction{ID: "tx-1", Voided: true}, nil)
			},
			wantErr: "voided",
		},
		{
			name: "Attributed to another client",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(&transaction.Transaction{ID: "tx-1", ClientID: &otherClient}, nil)
			},
			wantErr: "another client",
		},
		{
			name: "Not found",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					Get(gomock.Any(), "tx-1").
					Return(nil, transaction.ErrNotFound)
			},
			wantErr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := transaction.NewService(repo)
			err := svc.AssignClient(context.Background(), "tx-1", clientID)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ListUnattributed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), transaction.ListFilter{Unattributed: true, Limit: 50}).
		Return([]*transaction.Transaction{{ID: "a"}, {ID: "b"}}, nil)

	svc := transaction.NewService(repo)

	txs, err := svc.ListUnattributed(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestService_VoidDuplicates(t *testing.T) {
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		VoidDuplicates(gomock.Any(), from, to).
		Return(int64(3), nil)

	svc := transaction.NewService(repo)

	voided, err := svc.VoidDuplicates(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(3), voided)
}

func TestTransaction_TotalTaxCents(t *testing.T) {
	tx := transaction.Transaction{
		Taxes: []transaction.Tax{
			{Name: "GST", AmountCents: 120},
			{Name: "PST", AmountCents: 80},
		},
	}

	assert.Equal(t, int64(200), tx.TotalTaxCents())
}

func TestService_BillableClients(t *testing.T) {
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	want := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		BillableClients(gomock.Any(), from, to).
		Return(want, nil)

	svc := transaction.NewService(repo)

	got, err := svc.BillableClients(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.EXPECT().
		BillableClients(gomock.Any(), from, to).
		Return(nil, errors.New("db down"))

	_, err = svc.BillableClients(context.Background(), from, to)
	assert.Error(t, err)
}
