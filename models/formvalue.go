package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormValue is a form field that accepts either a JSON string or a JSON number, the
// way an html input hands values over. null decodes to the empty string.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler
func (f *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FormValue(n.String())
	return nil
}

// String returns the trimmed value
func (f FormValue) String() string {
	return strings.TrimSpace(string(f))
}
