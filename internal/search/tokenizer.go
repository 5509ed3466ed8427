// Package search implements the ranking pipeline: tokenization, match
// classification, per-scorer scoring, post-boost composition, intent
// sorting and diversity filtering over a corpus of indexed page records.
package search

import (
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the shortest token the tokenizer keeps. Single
// characters carry no discriminative signal and are dropped.
const MinTokenLength = 2

// isSeparator reports whether r should split tokens. Unicode letters and
// digits are kept; everything else — including '-', '_', '.', '/', '?',
// '&', '=' and whitespace — is a boundary.
func isSeparator(r rune) bool {
	return !isAlnum(r)
}

func isAlnum(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r > 127:
		// Non-ASCII letters are retained as-is after lowercasing; treat
		// any non-ASCII rune as alphanumeric so words like "café" or
		// "北京" aren't shredded character by character.
		return true
	default:
		return false
	}
}

// Tokenize lowercases text and splits it on runs of non-alphanumeric
// characters, dropping tokens shorter than MinTokenLength. It is
// deterministic and pure: empty input, or input containing only
// punctuation, yields a nil slice. Order is preserved and duplicates
// are not removed, since repeated tokens inform coverage honestly.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	tokens := make([]string, 0, len(lower)/4+1)
	start := -1
	for i, r := range lower {
		if isSeparator(r) {
			if start >= 0 {
				tokens = appendToken(tokens, lower[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, lower[start:])
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func appendToken(tokens []string, tok string) []string {
	if utf8.RuneCountInString(tok) < MinTokenLength {
		return tokens
	}
	return append(tokens, tok)
}
