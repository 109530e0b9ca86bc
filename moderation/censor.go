package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Censor masks literal abusive words in the original text while preserving
// its spacing and punctuation. It works on a leet-simplified, noise-free
// shadow of the text and maps matched spans back to original rune positions,
// so "B.4.d words" obfuscations are still caught and masked whole.
type Censor struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewCensor builds the Aho-Corasick automaton over the normalized lexicon.
func NewCensor(words []string, replacement rune, log *slog.Logger) (*Censor, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if p := normalizeRunes([]rune(word)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{matcher: m, replacement: replacement, log: log}, nil
}

// Apply returns the text with every lexicon match masked, plus the matched
// words. The input is returned untouched when nothing matches.
func (c *Censor) Apply(original string) (string, []string) {
	mapping := c.normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := c.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var found []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		found = append(found, string(span.Word))

		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = c.replacement
		}
	}

	c.log.Debug("Censored content", "words", len(found))
	return string(origRunes), found
}

// normalize builds the searchable shadow text and tracks, for every kept
// rune, its position in the original.
func (c *Censor) normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leetspeak characters back to letters. The table
// mirrors the one in Normalize, restricted to single-rune swaps.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7', '+':
		return 't'
	default:
		return r
	}
}

// isNoise identifies characters ignored during pattern matching.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
