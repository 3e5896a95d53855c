package inline

import (
	"strings"
)

// Delimiter toggles between call-like text and math regions.
const Delimiter = '$'

// SegmentKind classifies a segment of inline text.
type SegmentKind int8

// Kinds of inline segments.
const (
	CallToken  SegmentKind = iota // text outside of math regions
	MathRegion                    // text between a pair of delimiters
)

func (k SegmentKind) String() string {
	if k == MathRegion {
		return "math"
	}
	return "call"
}

// Segment is a classified piece of inline text.
type Segment struct {
	Kind SegmentKind
	Text string // segment text, without delimiters
	Open bool   // math region not closed by the end of the input
}

// Scan splits raw inline text into segments. Leading and trailing
// whitespace of raw is ignored.
//
// Scanning is a two-state machine: outside of a math region bytes
// accumulate into a call token, which is flushed when a region starts or
// at the end of the input. Inside a region bytes accumulate until
// the next delimiter closes the region. Input is not required to be valid
// UTF-8; bytes are passed through unchanged.
func Scan(raw string) []Segment {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var segments []Segment
	inMath := false
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != Delimiter {
			continue
		}
		if inMath {
			segments = append(segments, Segment{Kind: MathRegion, Text: raw[start:i]})
		} else if i > start {
			segments = append(segments, Segment{Kind: CallToken, Text: raw[start:i]})
		}
		start = i + 1
		inMath = !inMath
	}
	if inMath {
		tracer().Debugf("unterminated math region in %q", raw)
		segments = append(segments, Segment{Kind: MathRegion, Text: raw[start:], Open: true})
	} else if start < len(raw) {
		segments = append(segments, Segment{Kind: CallToken, Text: raw[start:]})
	}
	return segments
}

// Render maps segments to markup. Call tokens are wrapped in a span of
// class callClass, unless they consist of whitespace only. Math regions
// are emitted verbatim, enclosed in delimiters.
func Render(segments []Segment, callClass string) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case MathRegion:
			b.WriteRune(Delimiter)
			b.WriteString(seg.Text)
			if !seg.Open {
				b.WriteRune(Delimiter)
			}
		default:
			if strings.TrimSpace(seg.Text) == "" {
				b.WriteString(seg.Text)
				continue
			}
			b.WriteString("<span class='")
			b.WriteString(callClass)
			b.WriteString("'>")
			b.WriteString(seg.Text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}

// Typeset scans and renders raw inline text in one go.
func Typeset(raw string, callClass string) string {
	return Render(Scan(raw), callClass)
}

// Unterminated is true if raw leaves a math region open at its end.
func Unterminated(raw string) bool {
	return strings.Count(raw, string(Delimiter))%2 == 1
}

// Delimit treats inline text without any delimiters as a single math
// region, e.g. "i < n" becomes "$i < n$". Text containing at least one
// delimiter is returned trimmed, but otherwise unchanged.
func Delimit(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsRune(raw, Delimiter) {
		return raw
	}
	return string(Delimiter) + raw + string(Delimiter)
}
