// Package ledger adapts the third-party payment aggregator's
// transaction feed. The feed is the only source of truth for incoming
// bank transfers; this system never writes to it.
package ledger

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client queries the aggregator's transaction-list endpoint with a
// bearer token.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FetchRecent returns up to limit recent feed transactions. Every
// failure mode (timeout, non-2xx, malformed body) yields an empty
// slice: the caller treats an unreachable ledger the same as "no
// payment seen yet" and relies on client re-polling.
func (c *Client) FetchRecent(ctx context.Context, limit int) []Transaction {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		log.Printf("ledger: building request failed: %v", err)
		return nil
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	key := c.apiKey
	if !strings.HasPrefix(key, "Bearer ") {
		key = "Bearer " + key
	}
	req.Header.Set("Authorization", key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("ledger: fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("ledger: unexpected status %d", resp.StatusCode)
		return nil
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("ledger: decoding feed failed: %v", err)
		return nil
	}
	return body.Transactions
}
