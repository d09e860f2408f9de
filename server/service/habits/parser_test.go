package habits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrictJSONRoundTrip(t *testing.T) {
	fields := ParseGeneratedText(`{"short":"A","long":"B","tips":["T1","T2"]}`)

	require.Equal(t, "A", fields.Short)
	require.Equal(t, "B", fields.Long)
	require.Equal(t, []string{"T1", "T2"}, fields.Tips)
}

func TestParseJSONEmbeddedInProse(t *testing.T) {
	raw := "Here is your report:\n```\n{\"short\": \"Done well\", \"long\": \"Longer text\"}\n```\nEnjoy!"
	fields := ParseGeneratedText(raw)

	require.Equal(t, "Done well", fields.Short)
	require.Equal(t, "Longer text", fields.Long)
	require.Empty(t, fields.Tips)
}

func TestParseStripsEmphasisMarkup(t *testing.T) {
	fields := ParseGeneratedText(`**{"short": "A", "long": "B"}**`)

	require.Equal(t, "A", fields.Short)
	require.Equal(t, "B", fields.Long)
}

func TestParseTipsOnlyWhenSequence(t *testing.T) {
	fields := ParseGeneratedText(`{"short":"A","long":"B","tips":"not a list"}`)

	require.Equal(t, "A", fields.Short)
	require.Empty(t, fields.Tips)
}

func TestParseTipsSkipsBlankEntries(t *testing.T) {
	fields := ParseGeneratedText(`{"short":"A","tips":["  T1  ", "", "  "]}`)

	require.Equal(t, []string{"T1"}, fields.Tips)
}

func TestParseRelaxedSingleQuotes(t *testing.T) {
	// Single-quoted keys and values are the most common deviation from
	// strict JSON; strategy (a) rejects it, strategy (b) accepts it.
	fields := ParseGeneratedText(`{'short': 'A', 'long': 'B', 'tips': ['T1']}`)

	require.Equal(t, "A", fields.Short)
	require.Equal(t, "B", fields.Long)
	require.Equal(t, []string{"T1"}, fields.Tips)
}

func TestParseQuotedPairsWithoutObject(t *testing.T) {
	raw := `The result is "short": "brief text" and also "long": "extended text" as requested`
	fields := ParseGeneratedText(raw)

	require.Equal(t, "brief text", fields.Short)
	require.Equal(t, "extended text", fields.Long)
}

func TestParseMarkerSplit(t *testing.T) {
	raw := "SHORT: quick summary here\nLONG: the detailed version\nwith a second line"
	fields := ParseGeneratedText(raw)

	require.Equal(t, "quick summary here", fields.Short)
	require.Equal(t, "the detailed version\nwith a second line", fields.Long)
}

func TestParseMarkerSplitBeatsLineScan(t *testing.T) {
	// Invalid structured syntax with both literal markers must be resolved
	// by the marker split, not the line-scan heuristic.
	raw := "{broken json\nSHORT: brief\nLONG: extended"
	fields := ParseGeneratedText(raw)

	require.Equal(t, "brief", fields.Short)
	require.Equal(t, "extended", fields.Long)
}

func TestParseMarkerLines(t *testing.T) {
	raw := "Your short summary\nfirst the short part\nbrief line\nNow the long part\nextended line one\nextended line two"
	fields := ParseGeneratedText(raw)

	require.Equal(t, "first the short part\nbrief line", fields.Short)
	require.Equal(t, "extended line one\nextended line two", fields.Long)
}

func TestParseMarkerLinesRequireOrder(t *testing.T) {
	// LONG before SHORT is not a recognizable layout.
	raw := "the long part\nsomething\nthe short part"
	fields := ParseGeneratedText(raw)

	require.True(t, fields.Empty())
}

func TestParseNothingRecovered(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"free prose", "Great job this week! Keep it up."},
		{"empty object", "{}"},
		{"broken json without markers", `{"short": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, ParseGeneratedText(tt.raw).Empty())
		})
	}
}

func TestParsePartialStrategyStopsChain(t *testing.T) {
	// Strict JSON recovers only short; the chain stops there rather than
	// letting later heuristics guess at long.
	raw := `{"short": "only this"} LONG: never reached`
	fields := ParseGeneratedText(raw)

	require.Equal(t, "only this", fields.Short)
	require.Empty(t, fields.Long)
}
