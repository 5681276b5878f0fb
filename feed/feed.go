// Package feed retrieves the raw day-ahead price document from the vendor
// API. It owns all network concerns; the elspot package never performs I/O.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/angas/elspot-go/elspot"
)

// ErrNotPublished means the vendor has no document for the requested page
// yet; tomorrow's prices appear around 13:00 CET.
var ErrNotPublished = errors.New("price document not published")

// Provider is anything that can produce a day's price document.
type Provider interface {
	FetchDocument(ctx context.Context) (*elspot.Document, error)
}

const defaultBaseURL = "https://www.nordpoolgroup.com/api"

type Client struct {
	baseURL  string
	currency string
	http     *http.Client
}

func New(currency string) *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		currency: currency,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithBaseURL is used by tests and for self-hosted mirrors of the API.
func NewWithBaseURL(baseURL, currency string) *Client {
	c := New(currency)
	c.baseURL = baseURL
	return c
}

// FetchDocument downloads the hourly day-ahead page for the client currency.
func (c *Client) FetchDocument(ctx context.Context) (*elspot.Document, error) {
	url := fmt.Sprintf("%s/marketdata/page/10?currency=%s", c.baseURL, c.currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotPublished, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	doc, err := elspot.FromJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price document: %w", err)
	}

	return doc, nil
}

// FromURL downloads and parses a document from an explicit URL.
func FromURL(ctx context.Context, url string) (*elspot.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return elspot.FromJSON(body)
}
