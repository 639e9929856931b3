// Package transport defines the DTOs returned by the lookup endpoints.
package transport

import (
	directory "whocallsme_backend/internal/directory/transport"
	reputation "whocallsme_backend/internal/reputation/transport"
)

// Result is the combined record assembled from all applicable
// providers. Either provider slot may be null; the aggregate is never
// failed by a single provider's unavailability.
type Result struct {
	DisplayNumber string `json:"display_number"`
	FullNumber    string `json:"full_number"`
	// Region is the ISO region of the number when it parses as a valid
	// international number, "" otherwise.
	Region string `json:"region,omitempty"`
	// PostID cross-references the directory listing's comment feed.
	PostID     *int               `json:"post_id"`
	Directory  *directory.Listing `json:"directory"`
	Reputation *reputation.Result `json:"reputation"`
}
