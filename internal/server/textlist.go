package server

import (
	"encoding/json"

	"github.com/translatekit/deepl-mcp/internal/errors"
)

// TextList accepts either a single JSON string or an array of strings, so
// callers can pass one segment without wrapping it in a list. Internally it
// is always a list.
type TextList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TextList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TextList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.Wrap(err, "text must be a string or an array of strings")
	}
	*t = TextList(many)
	return nil
}

// MarshalJSON implements json.Marshaler. A TextList always serializes as an
// array, matching the response-side contract.
func (t TextList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t))
}
