package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Payload validation is permissive by design: malformed fields are normalized
// to defaults rather than rejected. The types below implement that coercion
// at the JSON boundary so the store only ever sees clean values.

// StringList decodes a JSON array of strings. Anything that is not an array
// decodes to an empty list; non-string elements inside an array are coerced
// to their literal representation.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = StringList{}
		return nil
	}

	items = make([]string, 0, len(raw))
	for _, elem := range raw {
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			items = append(items, s)
			continue
		}
		items = append(items, strings.Trim(string(elem), `"`))
	}
	*l = items
	return nil
}

// LooseNumber decodes a JSON number, accepting numeric strings as well.
// Non-numeric input decodes to 0.
type LooseNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = LooseNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = LooseNumber(f)
			return nil
		}
	}

	*n = 0
	return nil
}

// LooseString decodes a JSON string, accepting bare numbers as well. Anything
// else decodes to the empty string.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = LooseString(num.String())
		return nil
	}

	*s = ""
	return nil
}
