// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	// RegionPrefix is the country calling code of the supported region (Portugal).
	// The length-12 detection below assumes the prefix is exactly 3 digits; this
	// is a constant of the current region, not a general rule.
	RegionPrefix = "351"

	localLen = 9
	fullLen  = 12
)

// Number is the canonical form of a user-entered phone number.
type Number struct {
	// Full is the digit-only international number, without a leading "+".
	Full string
	// Local is the subscriber number without the region prefix when
	// RegionMatch is true, otherwise it equals Full.
	Local string
	// RegionMatch reports whether the input was recognized as a number
	// of the supported region.
	RegionMatch bool
}

// Normalize derives the canonical forms of a free-form phone input.
// It never fails: unrecognized input passes through cleaned, and the
// providers downstream simply find no data for it.
func Normalize(raw string) Number {
	cleaned := clean(raw)

	if strings.HasPrefix(cleaned, RegionPrefix) && len(cleaned) == fullLen {
		return Number{Full: cleaned, Local: cleaned[len(RegionPrefix):], RegionMatch: true}
	}

	if len(cleaned) == localLen {
		return Number{Full: RegionPrefix + cleaned, Local: cleaned, RegionMatch: true}
	}

	return Number{Full: cleaned, Local: cleaned, RegionMatch: false}
}

// Display formats a normalized number for presentation. Region numbers
// are grouped the local way (+351 912 345 678); anything else is shown
// as the bare international form.
func Display(n Number) string {
	if n.RegionMatch && len(n.Full) == fullLen {
		return fmt.Sprintf("+%s %s %s %s", n.Full[:3], n.Full[3:6], n.Full[6:9], n.Full[9:])
	}
	return "+" + n.Full
}

// Region returns the ISO 3166-1 region of the full number, or "" when
// the number cannot be parsed as a valid international number.
func Region(full string) string {
	if full == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse("+"+full, "")
	if err != nil {
		return ""
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return ""
	}

	return phonenumbers.GetRegionCodeForNumber(parsed)
}

func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '+', '-', ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
