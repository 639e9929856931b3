package client

import (
	"regexp"
	"strconv"
	"strings"

	"whocallsme_backend/internal/directory/transport"
)

// The listing body is prose with embedded markup; each reputation field
// sits behind a bold label. The rules are applied independently so a
// missing label only leaves its own field nil.
var labelRules = []struct {
	pattern *regexp.Regexp
	assign  func(*transport.Listing, *string)
}{
	{
		pattern: regexp.MustCompile(`<b>Tipo</b>:\s*([^<]+)</span>`),
		assign:  func(l *transport.Listing, v *string) { l.Tipo = v },
	},
	{
		pattern: regexp.MustCompile(`<b>Devo Atender\?</b>\s*([^<]+)</span>`),
		assign:  func(l *transport.Listing, v *string) { l.Atender = v },
	},
	{
		pattern: regexp.MustCompile(`<b>Tentativa de Burla\?</b>\s*([^<]+)</span>`),
		assign:  func(l *transport.Listing, v *string) { l.Burla = v },
	},
	{
		pattern: regexp.MustCompile(`<b>Nome</b>:\s*([^<]+)</span>`),
		assign:  func(l *transport.Listing, v *string) { l.Nome = v },
	},
}

var trustPattern = regexp.MustCompile(`<span>(\d+)<sup>%</sup></span>`)

// parseListing extracts the optional labeled fields from a listing's
// rendered HTML.
func parseListing(postID int, html string) *transport.Listing {
	listing := &transport.Listing{PostID: postID}

	for _, rule := range labelRules {
		rule.assign(listing, extract(rule.pattern, html))
	}

	if m := trustPattern.FindStringSubmatch(html); m != nil {
		if trust, err := strconv.Atoi(m[1]); err == nil {
			listing.Trust = &trust
		}
	}

	return listing
}

func extract(pattern *regexp.Regexp, html string) *string {
	m := pattern.FindStringSubmatch(html)
	if m == nil {
		return nil
	}

	value := strings.TrimSpace(m[1])
	return &value
}
