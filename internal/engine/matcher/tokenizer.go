// Package matcher splits display names into tokens and fuzzy-matches queries against them.
package matcher

import (
	"slices"
	"strings"
	"unicode"
)

// stopWords are dropped from match targets but kept in display titles.
var stopWords = []string{"and", "&", "And"}

type charClass uint8

const (
	classOther charClass = iota
	classUpper
	classLower
)

func classify(r rune) charClass {
	switch {
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLetter(r):
		return classLower
	default:
		return classOther
	}
}

// Tokenize splits name on whitespace and then at camelCase and punctuation boundaries.
// Stop words are retained.
func Tokenize(name string) []string {
	var tokens []string
	for _, field := range strings.Fields(name) {
		tokens = append(tokens, TokenizeCamelCase(field)...)
	}
	return tokens
}

// TokenizeAndClean tokenizes name and removes stop words.
func TokenizeAndClean(name string) []string {
	return slices.DeleteFunc(Tokenize(name), func(token string) bool {
		return slices.Contains(stopWords, token)
	})
}

// TokenizeCamelCase splits a single word at case and character-class transitions.
//
// A lower-to-upper transition always splits. An upper-to-lower transition splits
// only when the pending token holds more than one character, so "Camel" stays
// whole while "IDand" becomes "ID" and "and". Moving into or out of a
// non-letter always splits.
func TokenizeCamelCase(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var tokens []string
	start := 0
	prev := classify(runes[0])
	for i := 1; i < len(runes); i++ {
		curr := classify(runes[i])
		if isBoundary(prev, curr, i-start) {
			tokens = append(tokens, string(runes[start:i]))
			start = i
		}
		prev = curr
	}
	return append(tokens, string(runes[start:]))
}

func isBoundary(prev, curr charClass, pending int) bool {
	switch {
	case prev == curr:
		return false
	case prev == classOther || curr == classOther:
		return true
	case prev == classLower && curr == classUpper:
		return true
	default:
		return pending > 1
	}
}
