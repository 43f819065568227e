package safebrowsing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultEndpoint = "https://safebrowsing.googleapis.com/v4/threatMatches:find"

// Client queries the Google Safe Browsing v4 lookup API. It is
// fail-open by policy: a missing API key, transport error, timeout or
// unexpected response all report "no threat" so the heuristic path
// never depends on the oracle's health.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the lookup endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient replaces the default 5-second-timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client. An empty apiKey disables lookups entirely;
// IsThreat then always returns false.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type threatEntry struct {
	URL string `json:"url"`
}

type lookupRequest struct {
	Client struct {
		ClientID      string `json:"clientId"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
	ThreatInfo struct {
		ThreatTypes      []string      `json:"threatTypes"`
		PlatformTypes    []string      `json:"platformTypes"`
		ThreatEntryTypes []string      `json:"threatEntryTypes"`
		ThreatEntries    []threatEntry `json:"threatEntries"`
	} `json:"threatInfo"`
}

type lookupResponse struct {
	Matches []json.RawMessage `json:"matches"`
}

// IsThreat reports whether Safe Browsing knows the URL under any threat
// category. One attempt, no retries.
func (c *Client) IsThreat(ctx context.Context, url string) bool {
	if c.apiKey == "" {
		return false
	}

	var req lookupRequest
	req.Client.ClientID = "url-trust-checker"
	req.Client.ClientVersion = "1.0.0"
	req.ThreatInfo.ThreatTypes = []string{
		"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE", "POTENTIALLY_HARMFUL_APPLICATION",
	}
	req.ThreatInfo.PlatformTypes = []string{"ANY_PLATFORM"}
	req.ThreatInfo.ThreatEntryTypes = []string{"URL"}
	req.ThreatInfo.ThreatEntries = []threatEntry{{URL: url}}

	body, err := json.Marshal(req)
	if err != nil {
		log.Printf("safebrowsing: marshal error: %v", err)
		return false
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey), bytes.NewReader(body))
	if err != nil {
		log.Printf("safebrowsing: request error: %v", err)
		return false
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("safebrowsing: lookup error: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("safebrowsing: unexpected status %d", resp.StatusCode)
		return false
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("safebrowsing: decode error: %v", err)
		return false
	}
	return len(out.Matches) > 0
}
