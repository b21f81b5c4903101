package markdown

import "strings"

// SpanKind identifies the style of an inline span.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

// InlineSpan is one run of text within a block, tagged with an emphasis or
// code style. Spans cover their source run left to right with no overlaps.
type InlineSpan struct {
	Kind SpanKind
	Text string
}

// FormatInline converts one line of text (already stripped of any
// block-level marker) into inline spans. Delimiters are resolved in three
// fixed passes by precedence: backtick code spans first, then ** bold, then
// * italic. Code spans are taken verbatim; markers inside them are never
// reinterpreted.
//
// The formatter is deliberately non-recursive: emphasis markers inside a
// bold span stay literal. An unmatched trailing delimiter never opens a
// span; it is emitted as literal text and the remainder falls through to
// the lower-precedence passes.
func FormatInline(text string) []InlineSpan {
	return splitPass(nil, text, "`", SpanCode, func(spans []InlineSpan, seg string) []InlineSpan {
		return formatBold(spans, seg)
	})
}

func formatBold(spans []InlineSpan, text string) []InlineSpan {
	return splitPass(spans, text, "**", SpanBold, formatItalic)
}

func formatItalic(spans []InlineSpan, text string) []InlineSpan {
	return splitPass(spans, text, "*", SpanItalic, func(spans []InlineSpan, seg string) []InlineSpan {
		return appendSpan(spans, SpanPlain, seg)
	})
}

// splitPass splits text on paired delim occurrences. Odd-indexed segments
// sit between a matched pair and become kind spans; even-indexed segments
// are handed to the next lower-precedence pass. When the delimiter count is
// odd the final delimiter has no partner: it is emitted as plain text and
// the trailing segment is processed as if the delimiter were absent.
func splitPass(spans []InlineSpan, text, delim string, kind SpanKind, next func([]InlineSpan, string) []InlineSpan) []InlineSpan {
	parts := strings.Split(text, delim)
	unpaired := len(parts)%2 == 0
	for i, seg := range parts {
		if i%2 == 0 {
			spans = next(spans, seg)
			continue
		}
		if unpaired && i == len(parts)-1 {
			spans = appendSpan(spans, SpanPlain, delim)
			spans = next(spans, seg)
			continue
		}
		spans = appendSpan(spans, kind, seg)
	}
	return spans
}

// appendSpan adds a span, dropping empty segments.
func appendSpan(spans []InlineSpan, kind SpanKind, text string) []InlineSpan {
	if text == "" {
		return spans
	}
	return append(spans, InlineSpan{Kind: kind, Text: text})
}
