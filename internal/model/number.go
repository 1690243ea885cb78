package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number decodes a JSON field that clients send either as a number or as a
// numeric string ("10" and 10 are both accepted). Decoding never fails on
// a non-numeric value; validation happens when the value is read, so the
// service layer can report a field-specific message instead of a generic
// JSON error.
type Number struct {
	value   float64
	present bool
	valid   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		n.value = v
		n.present = true
		n.valid = true
	case string:
		n.present = true
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			n.value = f
			n.valid = true
		}
	case nil:
		// null behaves like an absent field
	default:
		n.present = true
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.present || !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Float64 returns the decoded value. ok is false when the field was
// absent, null, or not numeric.
func (n Number) Float64() (float64, bool) {
	return n.value, n.present && n.valid
}

// Int64 returns the decoded value as an integer. ok is false when the
// field was absent, not numeric, or not a whole number.
func (n Number) Int64() (int64, bool) {
	f, ok := n.Float64()
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// IsPresent reports whether the field appeared in the request body with a
// non-null value.
func (n Number) IsPresent() bool {
	return n.present
}
