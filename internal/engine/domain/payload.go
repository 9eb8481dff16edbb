package domain

import (
	"strconv"
	"strings"
)

// Payload holds the free-form answers of a submission. Values arrive as
// whatever the intake form produced: numbers, stringified numbers, nested
// lists or missing keys. The accessors below absorb that variance so the
// normalizer can stay declarative.
type Payload map[string]any

// String returns the trimmed string value under key, or "" when absent.
func (p Payload) String(key string) string {
	raw, ok := p[key]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// FirstString returns the first non-empty string among the given keys.
// Intake forms renamed fields over time, so most lookups carry aliases.
func (p Payload) FirstString(keys ...string) string {
	for _, key := range keys {
		if v := p.String(key); v != "" {
			return v
		}
	}
	return ""
}

// Float returns the numeric value under key, accepting JSON numbers and
// stringified numbers. Returns nil when the key is absent or not numeric.
func (p Payload) Float(key string) *float64 {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return &parsed
	}
	return nil
}

// FirstFloat returns the first present numeric value among the given keys.
func (p Payload) FirstFloat(keys ...string) *float64 {
	for _, key := range keys {
		if v := p.Float(key); v != nil {
			return v
		}
	}
	return nil
}

// List returns the nested objects under key. Scalar entries are skipped.
func (p Payload) List(key string) []Payload {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	result := make([]Payload, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			result = append(result, Payload(m))
		}
	}
	return result
}

// Strings returns the string entries of the list under key. A single string
// value is returned as a one-element list.
func (p Payload) Strings(key string) []string {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					result = append(result, trimmed)
				}
			}
		}
		return result
	}
	return nil
}
