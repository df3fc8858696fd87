package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rebill/internal/provider"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

func TestRawTransaction_ToTransaction(t *testing.T) {
	invoiceID := "SB-100"

	raw := provider.RawTransaction{
		TransactionID:  "t1",
		ReferenceID:    "12001",
		ReferenceType:  "Shipment",
		TransactionFee: "Shipping",
		Amount:         json.Number("11.20"),
		ChargeDate:     "2024-12-05",
		InvoiceID:      &invoiceID,
		Taxes: []provider.RawTax{
			{Name: "GST", Amount: json.Number("0.56")},
			{Name: "QST", Amount: json.Number("1.12")},
		},
		AdditionalDetails: map[string]string{
			"tracking_number":  "1Z999AA10123456784",
			"comment":          "reship",
			"facility_country": "CA",
		},
	}

	tx, err := raw.ToTransaction()
	require.NoError(t, err)

	assert.Equal(t, "t1", tx.ID)
	assert.Equal(t, transaction.ReferenceShipment, tx.ReferenceType)
	assert.Equal(t, transaction.FeeShipping, tx.FeeType)

	// The raw amount lands in both cost fields until tax correction runs.
	assert.Equal(t, int64(1120), tx.RawCostCents)
	assert.Equal(t, int64(1120), tx.CostCents)

	require.Len(t, tx.Taxes, 2)
	assert.Equal(t, transaction.Tax{Name: "GST", AmountCents: 56}, tx.Taxes[0])
	assert.Equal(t, transaction.Tax{Name: "QST", AmountCents: 112}, tx.Taxes[1])

	assert.Equal(t, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC), tx.ChargeDate)
	assert.Equal(t, "1Z999AA10123456784", tx.TrackingNumber)
	assert.Equal(t, "reship", tx.Comment)
	assert.Equal(t, "CA", tx.FacilityCountry)

	require.NotNil(t, tx.ProviderInvoiceID)
	assert.Equal(t, "SB-100", *tx.ProviderInvoiceID)
}

func TestRawTransaction_ToTransaction_NegativeCredit(t *testing.T) {
	raw := provider.RawTransaction{
		TransactionID:  "t1",
		TransactionFee: "Credit",
		Amount:         json.Number("-4.50"),
		ChargeDate:     "2024-12-05",
	}

	tx, err := raw.ToTransaction()
	require.NoError(t, err)
	assert.Equal(t, int64(-450), tx.CostCents)
}

func TestRawTransaction_ToTransaction_Errors(t *testing.T) {
	type testCase struct {
		name    string
		raw     provider.RawTransaction
		wantErr string
	}

	tests := []testCase{
		{
			name:    "Bad amount",
			raw:     provider.RawTransaction{TransactionID: "t1", Amount: json.Number("abc"), ChargeDate: "2024-12-05"},
			wantErr: "parsing amount",
		},
		{
			name:    "Bad charge date",
			raw:     provider.RawTransaction{TransactionID: "t1", Amount: json.Number("1.00"), ChargeDate: "05/12/2024"},
			wantErr: "parsing charge date",
		},
		{
			name: "Bad tax amount",
			raw: provider.RawTransaction{
				TransactionID: "t1",
				Amount:        json.Number("1.00"),
				ChargeDate:    "2024-12-05",
				Taxes:         []provider.RawTax{{Name: "GST", Amount: json.Number("x")}},
			},
			wantErr: `parsing tax "GST"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.raw.ToTransaction()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHTTPClient_TransactionsByDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/transactions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-12-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-12-31", r.URL.Query().Get("end_date"))
		assert.Equal(t, "cursor-2", r.URL.Query().Get("page"))

		_ = json.NewEncoder(w).Encode(provider.Page{
			Transactions: []provider.RawTransaction{{TransactionID: "t1"}},
			Next:         "cursor-3",
		})
	}))
	defer srv.Close()

	c := provider.NewHTTPClient(srv.URL, "secret")

	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	page, err := c.TransactionsByDate(context.Background(), from, to, "cursor-2")
	require.NoError(t, err)

	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "cursor-3", page.Next)
}

func TestHTTPClient_TransactionsByDate_RequiresWindow(t *testing.T) {
	c := provider.NewHTTPClient("http://unused", "secret")

	_, err := c.TransactionsByDate(context.Background(), time.Time{}, time.Now(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date window is required")
}

func TestHTTPClient_TransactionsByInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/invoices/SB-100/transactions", r.URL.Path)
		_ = json.NewEncoder(w).Encode(provider.Page{})
	}))
	defer srv.Close()

	c := provider.NewHTTPClient(srv.URL, "secret")

	_, err := c.TransactionsByInvoice(context.Background(), "SB-100", "")
	require.NoError(t, err)
}

func TestHTTPClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := provider.NewHTTPClient(srv.URL, "secret")

	_, err := c.TransactionsByInvoice(context.Background(), "SB-100", "")
	assert.ErrorIs(t, err, provider.ErrRateLimited)
}

func TestHTTPClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := provider.NewHTTPClient(srv.URL, "secret")

	_, err := c.TransactionsByInvoice(context.Background(), "SB-100", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 502")
}
