// Package keywords implements the keyword-harvest step shared by the
// Snippet Extractor and the Text Chunker (§4.2 step 9): CJK runs, English
// identifier tokens, and the file stem, deduplicated and capped.
package keywords

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Config is the subset of parser configuration the harvest needs, kept
// independent of internal/ports so both the extractor and the chunker
// (which sit in different layers) can call Harvest without a dependency on
// each other's config shape.
type Config struct {
	ExtractChineseKeywords bool
	ExtractEnglishKeywords bool
	MinKeywordLength       int
	MaxKeywordsPerSnippet  int
}

// Harvest returns the space-joined, deduplicated keyword bag for a snippet:
// CJK runs from code and comment (if enabled), identifier-shaped tokens
// from code and comment (if enabled), and the file stem, added last. Tokens
// shorter than MinKeywordLength characters are dropped. Harvesting stops
// once MaxKeywordsPerSnippet tokens are collected, so the stem is left out
// when the cap is reached first.
func Harvest(path string, code, comment []byte, cfg Config) string {
	seen := make(map[string]bool)
	var out []string

	add := func(tok string) bool {
		if utf8.RuneCountInString(tok) < cfg.MinKeywordLength {
			return true // too short: skip it and keep harvesting
		}
		if seen[tok] {
			return true
		}
		seen[tok] = true
		out = append(out, tok)
		return cfg.MaxKeywordsPerSnippet <= 0 || len(out) < cfg.MaxKeywordsPerSnippet
	}

	if cfg.ExtractChineseKeywords {
		for _, run := range cjkRuns(string(code)) {
			if !add(run) {
				return strings.Join(out, " ")
			}
		}
		for _, run := range cjkRuns(string(comment)) {
			if !add(run) {
				return strings.Join(out, " ")
			}
		}
	}

	if cfg.ExtractEnglishKeywords {
		for _, tok := range identifierPattern.FindAllString(string(code), -1) {
			if !add(tok) {
				return strings.Join(out, " ")
			}
		}
		for _, tok := range identifierPattern.FindAllString(string(comment), -1) {
			if !add(tok) {
				return strings.Join(out, " ")
			}
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem != "" {
		add(stem)
	}

	return strings.Join(out, " ")
}

// cjkRuns extracts contiguous runs of characters in the Unified CJK ranges.
func cjkRuns(s string) []string {
	var runs []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, string(current))
			current = nil
		}
	}
	for _, r := range s {
		if isCJK(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()
	return runs
}

// isCJK reports whether r falls in the Unified CJK Ideographs block or its
// common extensions.
func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK Compatibility Ideographs
		return true
	default:
		return false
	}
}
