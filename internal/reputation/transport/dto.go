// Package transport defines the DTOs surfaced by the reputation provider.
package transport

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexNumber handles JSON values that can be either string or number.
// The upstream schema is loosely typed and flips between the two across
// responses.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	// Try as number first
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexNumber(num)
		return nil
	}
	// Try as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexNumber(parsed)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexNumber", string(data))
}

// Result is the normalized reputation record for a full number. Every
// field is optional; absence means the upstream did not report it.
type Result struct {
	Score       *int        `json:"score"`
	Searches    *FlexNumber `json:"searches"`
	Comments    *FlexNumber `json:"comments"`
	Location    string      `json:"location"`
	CallerTypes []string    `json:"caller_types"`
	CallerNames []string    `json:"caller_names"`
}
