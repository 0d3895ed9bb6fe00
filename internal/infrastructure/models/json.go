package models

import "encoding/json"

// MarshalStrings serializes a string slice into a TEXT column value.
// Works identically on postgres and the sqlite used in tests.
func MarshalStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// UnmarshalStrings deserializes a TEXT column value into a string slice
func UnmarshalStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
