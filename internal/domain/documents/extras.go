package documents

import (
	"strconv"
)

// Extras is the caller-supplied override map passed through to the context
// under "additional" and consulted for document-type-specific enrichment.
type Extras map[string]any

// String returns a string-valued extra, or the fallback when absent or of a
// different type.
func (e Extras) String(key, fallback string) string {
	if v, ok := e[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// Float returns a numeric extra, tolerating JSON numbers, ints and numeric
// strings. Non-parseable values yield the fallback.
func (e Extras) Float(key string, fallback float64) float64 {
	v, ok := e[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return fallback
}

// Maps returns a list-of-objects extra ([]map[string]any), tolerating the
// []any shape produced by JSON decoding. Absent or malformed values yield nil.
func (e Extras) Maps(key string) []map[string]any {
	v, ok := e[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// mapString reads a string field out of a loosely-typed map.
func mapString(m map[string]any, key, fallback string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// mapFloat reads a numeric field out of a loosely-typed map.
func mapFloat(m map[string]any, key string, fallback float64) float64 {
	return Extras(m).Float(key, fallback)
}
