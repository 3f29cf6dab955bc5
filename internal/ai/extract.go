package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// ExtractJSON pulls a JSON object out of a raw model text response. It strips
// optional markdown code fences, attempts a direct parse, and falls back to
// the first balanced {...} span in the text. Returns ErrMalformedResponse if
// neither yields a valid object.
func ExtractJSON(raw string) (map[string]any, error) {
	text := stripFences(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, nil
	}

	if span, ok := firstObjectSpan(text); ok {
		if err := json.Unmarshal([]byte(span), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, fmt.Errorf("%w: no JSON object in %d bytes of text", models.ErrMalformedResponse, len(raw))
}

// stripFences removes surrounding markdown code-fence markers, including an
// optional language tag on the opening fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(s[:i])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// firstObjectSpan returns the first balanced top-level {...} span, tracking
// string literals and escapes so braces inside strings don't miscount.
func firstObjectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
