package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// containsKeyword reports whether keyword occurs anywhere in text, so "developer" also
// matches "developers". Both arguments are expected to be lower-cased already.
func containsKeyword(text, keyword string) bool {
	return keyword != "" && strings.Contains(text, keyword)
}

// containsWord is the stricter form used for language markers, where "und" must not hit "under".
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}

	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], word)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(word)
		if boundaryBefore(text, start, word) && boundaryAfter(text, end, word) {
			return true
		}
		from = start + 1
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if containsKeyword(text, keyword) {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, start int, keyword string) bool {
	first, _ := utf8.DecodeRuneInString(keyword)
	if !isWordRune(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, keyword string) bool {
	last, _ := utf8.DecodeLastRuneInString(keyword)
	if !isWordRune(last) || end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func joinLower(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}
