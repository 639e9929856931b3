package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"whocallsme_backend/platform/apperr"
	"whocallsme_backend/platform/config"
	"whocallsme_backend/platform/logger"
)

// Client looks up whether a number is registered on the messaging
// network, via the keyed RapidAPI registry endpoint. Unlike the
// providers in the parallel aggregate, this lookup is invoked on its
// own and surfaces hard errors to its caller.
type Client struct {
	baseURL string
	host    string
	apiKey  string
	http    *http.Client
	log     *logger.Logger
}

// Result is the registry's answer for a number.
type Result struct {
	Registered *bool  `json:"registered"`
	URL        string `json:"url"`
}

// NewClient creates a registry client, or nil when no API key is
// configured. The key is held by the client only and never logged.
func NewClient(cfg config.RegistryConfig, log *logger.Logger) *Client {
	if !cfg.IsRegistryEnabled() {
		return nil
	}

	return &Client{
		baseURL: "https://" + cfg.GetRapidAPIHost(),
		host:    cfg.GetRapidAPIHost(),
		apiKey:  cfg.GetRapidAPIKey(),
		http:    &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

// Lookup queries the registry for a full number.
func (c *Client) Lookup(ctx context.Context, full string) (*Result, error) {
	if c == nil {
		return nil, apperr.Unavailable("registry lookup not configured", nil)
	}

	reqURL := fmt.Sprintf("%s/api/lookup?phone=%s", c.baseURL, url.QueryEscape(full))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Internal("create registry request", err)
	}

	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ProviderError("whatsapp", err)
		return nil, apperr.Unavailable("registry unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("upstream error: status %d", resp.StatusCode)
		c.log.ProviderError("whatsapp", err)
		return nil, apperr.Unavailable("registry unavailable", err)
	}

	var payload struct {
		Registered *bool  `json:"registered"`
		URL        string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.ProviderError("whatsapp", err)
		return nil, apperr.Unavailable("registry response unreadable", err)
	}

	return &Result{Registered: payload.Registered, URL: payload.URL}, nil
}
