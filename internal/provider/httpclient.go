package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient implements Client against the real billing API.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) TransactionsByDate(ctx context.Context, from, to time.Time, pageToken string) (*Page, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("date window is required: unbounded queries return provider-default results")
	}

	params := url.Values{}
	params.Set("start_date", from.Format(chargeDateLayout))
	params.Set("end_date", to.Format(chargeDateLayout))

	if pageToken != "" {
		params.Set("page", pageToken)
	}

	return c.fetch(ctx, "/billing/transactions?"+params.Encode())
}

func (c *HTTPClient) TransactionsByInvoice(ctx context.Context, providerInvoiceID, pageToken string) (*Page, error) {
	params := url.Values{}
	if pageToken != "" {
		params.Set("page", pageToken)
	}

	path := fmt.Sprintf("/billing/invoices/%s/transactions", url.PathEscape(providerInvoiceID))
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	return c.fetch(ctx, path)
}

func (c *HTTPClient) fetch(ctx context.Context, path string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, path)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	return &page, nil
}
