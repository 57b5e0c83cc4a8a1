package main

import (
	"strings"
	"unicode"
)

var sentenceTerminators = []string{".", "．", "。"}

// NormalizeText canonicalizes question text for fingerprinting: every
// whitespace run (including full-width and no-break spaces) collapses to
// one ASCII space, leading/trailing whitespace is trimmed, and a single
// trailing sentence terminator is stripped along with any whitespace
// before it. Pure and total; empty input yields "".
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	out := b.String()
	for _, t := range sentenceTerminators {
		if strings.HasSuffix(out, t) {
			out = strings.TrimRight(strings.TrimSuffix(out, t), " ")
			break
		}
	}
	return out
}
