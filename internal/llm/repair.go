package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hansollabs/clausecraft/internal/common"
)

// Generated responses are expected to contain exactly one JSON object, but
// the service gives no such guarantee: fenced code blocks, surrounding prose,
// trailing commas and truncated tails all occur in practice. ExtractObject
// runs an ordered recovery ladder and either returns a parseable object or a
// typed *common.ParseError carrying the raw text. It never panics and never
// lets a raw decode error escape.

var (
	objectRe        = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	danglingCommaRe = regexp.MustCompile(`,\s*$`)
)

// ExtractObject extracts and, if necessary, repairs one JSON object from raw
// generated text.
func ExtractObject(raw string) (json.RawMessage, error) {
	candidate := stripCodeFence(raw)

	if !strings.HasPrefix(strings.TrimSpace(candidate), "{") {
		if m := objectRe.FindString(candidate); m != "" {
			candidate = m
		} else if i := strings.Index(candidate, "{"); i >= 0 {
			// Truncated output may lack a closing brace entirely.
			candidate = candidate[i:]
		}
	}

	candidate = strings.TrimSpace(candidate)
	if isObject(candidate) {
		return json.RawMessage(candidate), nil
	}

	if repaired, ok := repairObject(candidate); ok {
		return json.RawMessage(repaired), nil
	}

	return nil, common.NewParseError(raw, fmt.Errorf("no parseable JSON object found"))
}

// DecodeInto extracts a JSON object from raw text and unmarshals it into v,
// so stringly-typed generation output becomes a strong type as early as
// possible.
func DecodeInto(raw string, v any) error {
	obj, err := ExtractObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(obj, v); err != nil {
		return common.NewParseError(raw, err)
	}
	return nil
}

func isObject(s string) bool {
	return strings.HasPrefix(s, "{") && json.Valid([]byte(s))
}

// repairObject attempts the repair ladder: strip trailing commas, close
// unmatched delimiters, and if that is not enough, truncate at the last
// top-level comma (a truncated final element) and re-close.
func repairObject(s string) (string, bool) {
	cleaned := closeDelimiters(stripTrailingCommas(s))
	if isObject(cleaned) {
		return cleaned, true
	}

	if idx := lastCommaOutsideStrings(s); idx >= 0 {
		truncated := closeDelimiters(stripTrailingCommas(s[:idx]))
		if isObject(truncated) {
			return truncated, true
		}
	}

	return "", false
}

func stripTrailingCommas(s string) string {
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	return danglingCommaRe.ReplaceAllString(strings.TrimSpace(s), "")
}

// closeDelimiters appends the closers for any unmatched braces or brackets,
// terminating an unfinished string literal first.
func closeDelimiters(s string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1] == c {
				stack = stack[:n-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(s)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteByte(stack[i])
	}
	return b.String()
}

func lastCommaOutsideStrings(s string) int {
	last := -1
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case ',':
			last = i
		}
	}
	return last
}

func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	if i := strings.Index(trimmed, "\n"); i >= 0 {
		trimmed = trimmed[i+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}

	if j := strings.LastIndex(trimmed, "```"); j >= 0 {
		trimmed = trimmed[:j]
	}
	return strings.TrimSpace(trimmed)
}
