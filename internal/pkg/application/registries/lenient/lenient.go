// Package lenient reads values out of untrusted registry JSON. Every accessor
// returns a zero value instead of failing when a key is missing or holds a
// value of an unexpected type.
package lenient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// String returns strings as is and numbers and booleans in their JSON text form.
func String(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return ""
}

// Strings accepts a single string or a list and drops list members that are not
// scalar.
func Strings(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		if s := String(raw); s != "" {
			return []string{s}
		}
		return nil
	}

	result := make([]string, 0, len(list))
	for _, item := range list {
		if s := String(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func Int(raw json.RawMessage) (int64, bool) {
	s := String(raw)
	if s == "" {
		return 0, false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}

	return 0, false
}

func Float(raw json.RawMessage) (float64, bool) {
	s := String(raw)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// Object decodes raw into a key to value map. Anything but a JSON object
// yields an empty map.
func Object(raw json.RawMessage) map[string]json.RawMessage {
	obj := map[string]json.RawMessage{}
	if isNull(raw) {
		return obj
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return map[string]json.RawMessage{}
	}
	return obj
}

// Objects accepts a list of objects, or a single object, and skips members
// that are not objects.
func Objects(raw json.RawMessage) []map[string]json.RawMessage {
	if isNull(raw) {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		obj := Object(raw)
		if len(obj) == 0 {
			return nil
		}
		return []map[string]json.RawMessage{obj}
	}

	result := make([]map[string]json.RawMessage, 0, len(list))
	for _, item := range list {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err == nil && obj != nil {
			result = append(result, obj)
		}
	}
	return result
}

// IsObject reports whether raw holds a JSON object.
func IsObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsArray reports whether raw holds a JSON array.
func IsArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
