package postgres

import "time"

// Helpers for reading the raw row maps produced by FindMany. Column values
// surface as the driver types (string or []byte for text, time.Time for
// timestamps, bool for booleans); these coerce them without panicking on
// NULLs.

func StringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

func BytesValue(v interface{}) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	}
	return nil
}

func TimeValue(v interface{}) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func BoolValue(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
