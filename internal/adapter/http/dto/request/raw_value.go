package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidRawValue = errors.New("value must be a number or a string")

// RawValue accepts either a JSON number or a JSON string and keeps its text.
// Parsing ("R$ 1.200,50", "3un") happens in the domain, so the exact input is preserved.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidRawValue
	}
	*v = RawValue(n.String())
	return nil
}

func (v RawValue) String() string {
	return string(v)
}

// Ptr returns nil for an absent value so partial updates leave the field untouched.
func (v *RawValue) Ptr() *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func rawMap(in map[string]RawValue) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = string(v)
	}
	return out
}
