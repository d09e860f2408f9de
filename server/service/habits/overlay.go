package habits

import (
	"context"
	"log/slog"
	"strings"
)

// Naive fallback split bounds: when structured fields are missing, the
// first lines of the raw text stand in for the summaries.
const (
	fallbackShortLines = 4
	fallbackLongLines  = 10
)

// applyOverlay merges generated text into the rule-based (short, long)
// pair. "No result" from the client returns the baseline unchanged; that is
// the expected common case, not an error path. Whatever happens, both
// returned texts are non-empty and neither starts with a raw '{'.
func applyOverlay(ctx context.Context, client *GenerationClient, baseShort, baseLong string, metrics Metrics, language string, days int) (string, string) {
	prompt := buildPrompt(metrics, days, language)
	raw, ok := client.Generate(ctx, prompt)
	if !ok {
		slog.Info("generation fallback to rule-based report", "days", days)
		return baseShort, baseLong
	}
	shortText, longText := baseShort, baseLong

	fields := ParseGeneratedText(raw)
	fallbackShort, fallbackLong := fallbackSplit(raw)
	looksLikeDict := strings.Contains(raw, "short") && strings.Contains(raw, "long") && strings.Contains(raw, "{")

	if fields.Short != "" || fields.Long != "" {
		if fields.Short != "" {
			shortText = cleanGeneratedText(fields.Short)
		} else {
			shortText = cleanGeneratedText(fallbackShort)
		}
		switch {
		case fields.Long != "":
			longText = cleanGeneratedText(fields.Long)
		case looksLikeDict:
			// A short-only result out of an object dump usually means the
			// long field was lost to truncation; mirroring short beats
			// echoing the dump.
			longText = shortText
		default:
			longText = cleanGeneratedText(fallbackLong)
		}
	} else {
		shortText = cleanGeneratedText(fallbackShort)
		longText = cleanGeneratedText(fallbackLong)
	}

	// No raw structured payload may ever reach the user.
	if strings.HasPrefix(strings.TrimSpace(longText), "{") {
		longText = shortText
	}

	if len(fields.Tips) > 0 {
		header := textsFor(language).recommendations
		block := []string{}
		for _, tip := range fields.Tips {
			block = append(block, "• "+tip)
		}
		tipsBlock := header + "\n" + strings.Join(block, "\n")
		if longText != "" {
			longText = longText + "\n" + tipsBlock
		} else {
			longText = tipsBlock
		}
	}

	// Output floor: whatever the generated text looked like, the user gets
	// non-empty plain text, never a structured payload.
	shortText = textFloor(shortText, baseShort)
	longText = textFloor(longText, baseLong)

	slog.Info("generation overlay applied", "days", days)
	return shortText, longText
}

// textFloor downgrades an empty or delimiter-leading text to the rule-based
// baseline.
func textFloor(text, baseline string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "{") {
		return baseline
	}
	return text
}

// cleanGeneratedText normalizes externally sourced text: unescapes literal
// newline/tab sequences, strips emphasis markup, drops a leading SHORT/LONG
// label line and trims blank lines.
func cleanGeneratedText(text string) string {
	cleaned := strings.ReplaceAll(text, `\n`, "\n")
	cleaned = strings.ReplaceAll(cleaned, `\t`, "\t")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "**", ""))

	lines := []string{}
	for _, line := range strings.Split(cleaned, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 0 && strings.HasPrefix(strings.ToUpper(lines[0]), "SHORT") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.ToUpper(lines[0]), "LONG") {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// fallbackSplit derives naive short/long texts from raw generated output:
// the first 4 non-empty lines and the first 10.
func fallbackSplit(text string) (string, string) {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}

	shortEnd := fallbackShortLines
	if shortEnd > len(lines) {
		shortEnd = len(lines)
	}
	longEnd := fallbackLongLines
	if longEnd > len(lines) {
		longEnd = len(lines)
	}
	return strings.Join(lines[:shortEnd], "\n"), strings.Join(lines[:longEnd], "\n")
}
