package habits

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// The response interpreter turns arbitrary generated text into recovered
// (short, long, tips) fields. Strategies are tried in order; the first one
// that recovers any field wins. A strategy that recovers nothing does not
// block the rest of the chain. Keeping each strategy an independent
// function keeps them independently testable.

type parseStrategy func(normalized string) ParsedFields

var parseStrategies = []parseStrategy{
	parseStrictJSON,
	parseRelaxedJSON,
	parseQuotedPairs,
	parseMarkerSplit,
	parseMarkerLines,
}

// ParseGeneratedText applies the strategy chain to raw generated text.
// When nothing is recovered all fields are unset; the caller falls back to
// a naive line split and never propagates emptiness to the user.
func ParseGeneratedText(text string) ParsedFields {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, "**", ""))

	for _, strategy := range parseStrategies {
		if fields := strategy(normalized); !fields.Empty() {
			return fields
		}
	}
	return ParsedFields{}
}

// jsonCandidate extracts the substring from the first '{' to the last '}',
// or returns the text unchanged when no such span exists.
func jsonCandidate(normalized string) string {
	open := strings.Index(normalized, "{")
	end := strings.LastIndex(normalized, "}")
	if open >= 0 && end > open {
		return normalized[open : end+1]
	}
	return normalized
}

// fieldsFromObject reads short/long/tips out of a decoded object. Tips are
// taken only when the value is a sequence, each entry coerced to a trimmed
// non-empty string.
func fieldsFromObject(obj map[string]any) ParsedFields {
	fields := ParsedFields{
		Short: coerceString(obj["short"]),
		Long:  coerceString(obj["long"]),
	}
	if seq, ok := obj["tips"].([]any); ok {
		for _, entry := range seq {
			if tip := coerceString(entry); tip != "" {
				fields.Tips = append(fields.Tips, tip)
			}
		}
	}
	return fields
}

func coerceString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

// parseStrictJSON attempts strict structured parsing of the {...} span.
func parseStrictJSON(normalized string) ParsedFields {
	candidate := jsonCandidate(normalized)
	if !strings.HasPrefix(candidate, "{") || !strings.HasSuffix(candidate, "}") {
		return ParsedFields{}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return ParsedFields{}
	}
	return fieldsFromObject(obj)
}

// parseRelaxedJSON tolerates non-standard quoting (single-quoted keys and
// values, the most common model deviation from strict JSON). YAML flow
// mappings accept exactly that superset.
func parseRelaxedJSON(normalized string) ParsedFields {
	candidate := jsonCandidate(normalized)
	if !strings.HasPrefix(candidate, "{") || !strings.HasSuffix(candidate, "}") {
		return ParsedFields{}
	}

	var obj map[string]any
	if err := yaml.Unmarshal([]byte(candidate), &obj); err != nil {
		return ParsedFields{}
	}
	return fieldsFromObject(obj)
}

var (
	shortPairRegexp = regexp.MustCompile(`['"]short['"]\s*:\s*['"](.+?)['"]`)
	longPairRegexp  = regexp.MustCompile(`['"]long['"]\s*:\s*['"](.+?)['"]`)
)

// parseQuotedPairs extracts short/long key-value pairs directly from the
// text, for output that mentions the keys but never forms a valid object.
func parseQuotedPairs(normalized string) ParsedFields {
	fields := ParsedFields{}
	if m := shortPairRegexp.FindStringSubmatch(normalized); m != nil {
		fields.Short = strings.TrimSpace(m[1])
	}
	if m := longPairRegexp.FindStringSubmatch(normalized); m != nil {
		fields.Long = strings.TrimSpace(m[1])
	}
	return fields
}

// parseMarkerSplit splits on literal SHORT:/LONG: markers.
func parseMarkerSplit(normalized string) ParsedFields {
	if !strings.Contains(normalized, "SHORT:") || !strings.Contains(normalized, "LONG:") {
		return ParsedFields{}
	}

	_, rest, _ := strings.Cut(normalized, "SHORT:")
	shortPart, longPart, _ := strings.Cut(rest, "LONG:")
	return ParsedFields{
		Short: strings.TrimSpace(shortPart),
		Long:  strings.TrimSpace(longPart),
	}
}

// parseMarkerLines scans trimmed non-empty lines for one containing SHORT
// and one containing LONG (case-insensitive). Text strictly between them is
// short; everything after the LONG line is long.
func parseMarkerLines(normalized string) ParsedFields {
	lines := []string{}
	for _, line := range strings.Split(normalized, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	shortIdx, longIdx := -1, -1
	for i, line := range lines {
		upper := strings.ToUpper(line)
		if shortIdx == -1 && strings.Contains(upper, "SHORT") {
			shortIdx = i
		}
		if longIdx == -1 && strings.Contains(upper, "LONG") {
			longIdx = i
		}
	}

	if shortIdx == -1 || longIdx == -1 || longIdx <= shortIdx {
		return ParsedFields{}
	}
	return ParsedFields{
		Short: strings.TrimSpace(strings.Join(lines[shortIdx+1:longIdx], "\n")),
		Long:  strings.TrimSpace(strings.Join(lines[longIdx+1:], "\n")),
	}
}
