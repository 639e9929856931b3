// Package client provides the HTTP client for the tellows reputation API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"whocallsme_backend/internal/reputation/transport"
	"whocallsme_backend/platform/logger"
)

const (
	defaultBaseURL = "https://www.tellows.de"
	requestTimeout = 5 * time.Second

	// Fixed partner credentials of the public basic endpoint.
	partner   = "androidapp"
	apikeyMd5 = "b5576989c85ba04eedbdd327d3a1835c"
	country   = "pt"
	language  = "pt"
)

// Client is the HTTP client for the tellows basic lookup.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a new reputation client.
func New(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		log:        log,
	}
}

// apiTellows mirrors the loosely typed payload. RawMessage fields are
// normalized leniently afterwards: the upstream flips types between
// responses and a wrong-shaped field must not sink the whole result.
type apiTellows struct {
	Score       json.RawMessage `json:"score"`
	Searches    json.RawMessage `json:"searches"`
	Comments    json.RawMessage `json:"comments"`
	Location    json.RawMessage `json:"location"`
	CallerTypes struct {
		Caller []json.RawMessage `json:"caller"`
	} `json:"callerTypes"`
	CallerNames struct {
		Caller json.RawMessage `json:"caller"`
	} `json:"callerNames"`
}

type apiResponse struct {
	Tellows apiTellows `json:"tellows"`
}

// Lookup fetches the reputation record for a full number. It fails
// soft: any transport, status, or decode failure yields a nil result.
func (c *Client) Lookup(ctx context.Context, full string) *transport.Result {
	result, err := c.fetch(ctx, full)
	if err != nil {
		c.log.ProviderMiss("reputation", full, err)
		return nil
	}
	return result
}

func (c *Client) fetch(ctx context.Context, full string) (*transport.Result, error) {
	params := url.Values{}
	params.Set("json", "1")
	params.Set("partner", partner)
	params.Set("apikeyMd5", apikeyMd5)
	params.Set("country", country)
	params.Set("lang", language)

	reqURL := fmt.Sprintf("%s/basic/num/%s?%s", c.baseURL, url.PathEscape("+"+full), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return normalize(payload.Tellows), nil
}

func normalize(t apiTellows) *transport.Result {
	return &transport.Result{
		Score:       truthyInt(t.Score),
		Searches:    flexNumber(t.Searches),
		Comments:    flexNumber(t.Comments),
		Location:    asString(t.Location),
		CallerTypes: callerTypes(t.CallerTypes.Caller),
		CallerNames: callerNames(t.CallerNames.Caller),
	}
}

// truthyInt coerces the raw score. Absent or falsy raw values (null,
// "", the number 0) yield nil; the string "0" is present-and-truthy
// and coerces to 0.
func truthyInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		if num == 0 {
			return nil
		}
		value := int(num)
		return &value
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return nil
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}

	value, err := strconv.Atoi(str)
	if err != nil {
		return nil
	}
	return &value
}

func flexNumber(raw json.RawMessage) *transport.FlexNumber {
	if len(raw) == 0 {
		return nil
	}

	var f transport.FlexNumber
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return ""
	}
	return str
}

// callerTypes keeps only entries that are key-value records with a
// name; anything else in the list is silently skipped.
func callerTypes(entries []json.RawMessage) []string {
	types := make([]string, 0, len(entries))
	for _, entry := range entries {
		var record struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &record); err != nil {
			continue
		}
		if record.Name == "" {
			continue
		}
		types = append(types, record.Name)
	}
	return types
}

// callerNames is only populated when the raw value is list-shaped; any
// other shape yields an empty list, never an error.
func callerNames(raw json.RawMessage) []string {
	names := []string{}
	if len(raw) == 0 {
		return names
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return names
	}

	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names
}
