package skeptic

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBoilerplatePatterns returns the deny-list of boilerplate phrases
// stripped from extracted article text. News pages routinely leak these
// into the article body regardless of which extraction method ran.
func DefaultBoilerplatePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)Subscribe to[^.]*?newsletter`),
		regexp.MustCompile(`(?i)Sign up for[^.]*?newsletter`),
		regexp.MustCompile(`(?i)Follow us on[^.]*?social media`),
		regexp.MustCompile(`(?i)Copyright ©[^.]*?rights reserved`),
		regexp.MustCompile(`(?i)This article was originally published[^.]*`),
		regexp.MustCompile(`(?im)Read more:.*$`),
	}
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the result. Unicode spaces such as NBSP count as whitespace;
// scraped article HTML leaks them routinely.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripBoilerplate removes every match of the given patterns.
func StripBoilerplate(s string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

// TruncateAtWord truncates s to at most max bytes, cutting at a
// whitespace boundary so no word or UTF-8 sequence is split. Inputs
// within budget are returned unchanged.
func TruncateAtWord(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	// Never cut mid-rune: back up to the nearest rune boundary before
	// inspecting what follows the cut.
	boundary := max
	for boundary > 0 && !utf8.RuneStart(s[boundary]) {
		boundary--
	}
	cut := s[:boundary]

	// If the rune right after the cut is mid-word, back up to the last
	// whitespace boundary. A first word longer than the budget has no
	// boundary to back up to and truncates to nothing.
	if r, _ := utf8.DecodeRuneInString(s[boundary:]); !isSpace(r) {
		idx := strings.LastIndexFunc(cut, isSpace)
		if idx < 0 {
			return ""
		}
		cut = cut[:idx]
	}

	return strings.TrimRightFunc(cut, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Normalize applies the full normalization chain: boilerplate stripping,
// whitespace collapsing, and word-boundary truncation to at most max
// bytes.
// It is a pure function and idempotent: normalizing already-normalized
// text yields the same text.
func Normalize(s string, patterns []*regexp.Regexp, max int) string {
	s = StripBoilerplate(s, patterns)
	s = CollapseWhitespace(s)
	return TruncateAtWord(s, max)
}
