// Package transport defines the DTOs surfaced by the directory provider.
package transport

// Listing is the directory's reputation record for a local number.
// Every labeled field is independently optional: the source body is
// prose with embedded markup, and a missing label is not an error.
type Listing struct {
	PostID  int     `json:"post_id"`
	Tipo    *string `json:"tipo"`
	Atender *string `json:"atender"`
	Burla   *string `json:"burla"`
	Nome    *string `json:"nome"`
	Trust   *int    `json:"trust"`
}

// Comment is one entry of a listing's comment feed, with the markup
// stripped and the timestamp truncated to its date portion.
type Comment struct {
	Author string `json:"author"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}
