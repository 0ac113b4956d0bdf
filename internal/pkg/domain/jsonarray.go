package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeJSONArray validates a repeating-group field and returns it as the JSON
// array string the catalog stores. Empty input yields an empty string.
func NormalizeJSONArray(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		if strings.TrimSpace(v) == "" {
			return "", nil
		}

		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return "", fmt.Errorf("invalid JSON syntax: %w", err)
		}

		arr, ok := parsed.([]any)
		if !ok {
			return "", fmt.Errorf("expected JSON array, got JSON %s. Use [...] not {...}", jsonKind(parsed))
		}

		return marshalNoEscape(arr)
	case []any:
		return marshalNoEscape(v)
	case []Author:
		return marshalNoEscape(v)
	case []map[string]any:
		return marshalNoEscape(v)
	}

	return "", fmt.Errorf("expected JSON array string or list, got: %T", value)
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return "value"
}

func marshalNoEscape(v any) (string, error) {
	var sb strings.Builder

	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}
