// Package client provides the HTTP client for the ligaram-me.pt number directory.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"whocallsme_backend/internal/directory/transport"
	"whocallsme_backend/platform/apperr"
	"whocallsme_backend/platform/logger"
	"whocallsme_backend/platform/sanitize"
)

const (
	defaultBaseURL = "https://www.ligaram-me.pt/wp-json/wp/v2"
	requestTimeout = 5 * time.Second

	postFields    = "id,content,categories,class_list"
	commentFields = "id,content,author_name,date"
)

// Client is the HTTP client for the directory's WordPress REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a new directory client.
func New(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		log:        log,
	}
}

// wpRendered is WordPress's rendered-content wrapper.
type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpPost struct {
	ID      int        `json:"id"`
	Content wpRendered `json:"content"`
}

type wpComment struct {
	AuthorName string     `json:"author_name"`
	Date       string     `json:"date"`
	Content    wpRendered `json:"content"`
}

// Lookup fetches the directory listing for a local number. It fails
// soft: transport errors, bad statuses, unparseable bodies, and empty
// result sets all yield a nil listing, never an error — one broken
// source must not block the rest of the lookup.
func (c *Client) Lookup(ctx context.Context, local string) *transport.Listing {
	listing, err := c.fetchListing(ctx, local)
	if err != nil || listing == nil {
		c.log.ProviderMiss("directory", local, err)
		return nil
	}
	return listing
}

func (c *Client) fetchListing(ctx context.Context, local string) (*transport.Listing, error) {
	params := url.Values{}
	params.Set("slug", local)
	params.Set("_fields", postFields)

	var posts []wpPost
	if err := c.getJSON(ctx, fmt.Sprintf("%s/posts?%s", c.baseURL, params.Encode()), &posts); err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, nil
	}

	// First match wins.
	post := posts[0]
	return parseListing(post.ID, post.Content.Rendered), nil
}

// Comments fetches the comment feed of a listing. Unlike Lookup this
// surfaces a hard error: the caller has no partial result to fall back
// to here.
func (c *Client) Comments(ctx context.Context, postID string) ([]transport.Comment, error) {
	params := url.Values{}
	params.Set("post", postID)
	params.Set("_fields", commentFields)

	var raw []wpComment
	if err := c.getJSON(ctx, fmt.Sprintf("%s/comments?%s", c.baseURL, params.Encode()), &raw); err != nil {
		c.log.ProviderError("directory_comments", err)
		return nil, apperr.Unavailable("comment feed unavailable", err)
	}

	comments := make([]transport.Comment, 0, len(raw))
	for _, entry := range raw {
		comments = append(comments, transport.Comment{
			Author: entry.AuthorName,
			Date:   truncateDate(entry.Date),
			Text:   sanitize.Text(entry.Content.Rendered),
		})
	}

	return comments, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// truncateDate reduces a WordPress timestamp (2024-05-17T09:31:00) to
// its date-only portion.
func truncateDate(date string) string {
	if len(date) <= 10 {
		return date
	}
	return date[:10]
}
