package moderation

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`[@#]\w+`)
	punctPattern   = regexp.MustCompile(`[^\w\s]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// leetTable maps deliberate character substitutions back to letters.
// No entry outputs a character that is itself a key, so a single pass is
// order-independent.
var leetTable = map[rune]rune{
	'@': 'a',
	'3': 'e',
	'1': 'i',
	'0': 'o',
	'5': 's',
	'7': 't',
	'4': 'a',
	'$': 's',
	'!': 'i',
	'+': 't',
}

// Normalize canonicalizes adversarial text for both detectors.
// The step order matters: each step affects what later steps see.
// The result is already canonical, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	// 1. Links dominate n-gram features, drop them whole.
	text = urlPattern.ReplaceAllString(text, "")

	// 2. Mentions and hashtags carry identity, not abuse signal.
	text = mentionPattern.ReplaceAllString(text, "")

	// 3. Collapse runs of 3+ identical characters to 2 ("sooooo" -> "soo",
	// "good" untouched).
	text = collapseRuns(text)

	// 4. Undo leetspeak substitutions.
	text = strings.Map(func(r rune) rune {
		if sub, ok := leetTable[r]; ok {
			return sub
		}
		return r
	}, text)

	// 5. Punctuation becomes a space, not nothing, so adjacent words never
	// merge into a new token.
	text = punctPattern.ReplaceAllString(text, " ")

	// 6. Collapse whitespace and trim.
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// collapseRuns rewrites every run of 3 or more identical runes down to 2.
// The regexp package has no backreferences, so this is a manual scan.
func collapseRuns(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
