package main

import (
	"strconv"
	"strings"
)

// DedupeKey fingerprints a question's content: a base-31 rolling hash
// over the normalized text and options joined with "|". The 32-bit key
// space matches the fingerprints of the original catalog; collisions
// become possible at very large catalog sizes and are an accepted
// limitation, not something to silently widen.
func DedupeKey(q Question) string {
	parts := make([]string, 0, 1+len(q.Options))
	parts = append(parts, NormalizeText(q.QuestionText))
	for _, opt := range q.Options {
		parts = append(parts, NormalizeText(opt))
	}
	var h uint32
	for _, r := range strings.Join(parts, "|") {
		h = h*31 + uint32(r)
	}
	return strconv.FormatUint(uint64(h), 10)
}

// Dedupe drops questions whose content fingerprint was already seen,
// keeping the first occurrence and the input order. Duplicates are
// detected by content, not by id.
func Dedupe(qs []Question) []Question {
	seen := make(map[string]struct{}, len(qs))
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		k := DedupeKey(q)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, q)
	}
	return out
}
