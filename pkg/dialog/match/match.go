// Package match holds the two keyword-matching primitives every scripted
// lookup is built on: substring containment against a normalized message, and
// whole-word token-set membership for short affirmation/negation phrases
// where substring matching would false-positive (e.g. "нет" inside a longer
// word).
package match

import "strings"

// punctuation is the fixed character class stripped during tokenization and
// name cleanup. Matches the content authoring convention, including the
// Russian guillemets and dashes.
const punctuation = ",.!?;:\"'()[]{}<>«»—-"

// Normalize lowercases the message. No other transformation is applied;
// keyword lists are authored pre-lowercased.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// ContainsAny reports whether any keyword occurs as a contiguous substring
// of the normalized message. Iteration order is insignificant: any hit wins.
func ContainsAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Tokenize strips the fixed punctuation class, splits on whitespace and
// collects lowercase tokens into a set.
func Tokenize(text string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))

	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		tokens[tok] = true
	}
	return tokens
}

// HasAnyToken reports whether the token set intersects the given words.
func HasAnyToken(tokens map[string]bool, words ...string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}

// TrimPunctuation removes surrounding punctuation from a candidate name.
func TrimPunctuation(s string) string {
	return strings.Trim(s, punctuation+" ")
}

// FirstToken returns the first whitespace-delimited token, or "" when the
// input is blank.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
