package matcher

import (
	"strings"
	"unicode"
)

// Match reports whether query matches target, either as a prefix of target or
// as a run of prefixes of target's successive tokens.
// query must already be lower-cased.
func Match(query, target string) bool {
	return PrefixMatch(query, target) || InitialMatch(query, target)
}

// PrefixMatch reports whether the lower-cased target starts with query.
func PrefixMatch(query, target string) bool {
	return strings.HasPrefix(strings.ToLower(target), query)
}

// InitialMatch reports whether query can be consumed by taking a non-empty prefix
// of each successive token of target, in order.
//
// "am" and "actmo" both match "Activity Monitor"; "ams" does not.
func InitialMatch(query, target string) bool {
	return consume([]rune(query), TokenizeAndClean(target))
}

// consume tries the shortest working prefix of the first component first.
// Each step discards the whole component; leftover components are irrelevant
// once the query is exhausted.
func consume(query []rune, components []string) bool {
	if len(query) == 0 {
		return true
	}
	if len(components) == 0 {
		return false
	}

	component := []rune(components[0])
	for k := 0; k < len(query) && k < len(component); k++ {
		if !equalFold(query[k], component[k]) {
			return false
		}
		if consume(query[k+1:], components[1:]) {
			return true
		}
	}
	return false
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
