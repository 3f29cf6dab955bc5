package report

import "strconv"

// Best-effort coercion helpers. Model output is untrusted: every scalar is
// coerced to its expected type, substituting the default on any mismatch.
// None of these ever fail.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any, def string) string {
	switch s := v.(type) {
	case string:
		if s == "" {
			return def
		}
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return def
	}
}

func asNumber(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

func asInt(v any, def int) int {
	return int(asNumber(v, float64(def)))
}

// asStringList coerces v into a list of strings, dropping non-coercible
// elements. A non-list value yields def. Always returns a non-nil slice when
// def is non-nil.
func asStringList(v any, def []string) []string {
	items, ok := v.([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item, ""); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
