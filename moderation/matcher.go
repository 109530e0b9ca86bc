package moderation

import (
	"embed"
	"fmt"
	"regexp"

	"sentinel-lab/domain"
)

//go:embed rules words
var embeddedFS embed.FS

// Matcher is the rule-based multi-category detector. Rule sets are compiled
// once at construction and immutable afterwards, so Match is safe for
// concurrent use.
type Matcher struct {
	rules map[domain.Category][]*regexp.Regexp
}

// NewMatcher compiles one case-insensitive expression per rule line.
func NewMatcher(raw map[domain.Category][]string) (*Matcher, error) {
	rules := make(map[domain.Category][]*regexp.Regexp, len(raw))
	for category, lines := range raw {
		compiled := make([]*regexp.Regexp, 0, len(lines))
		for _, line := range lines {
			re, err := regexp.Compile("(?i)" + line)
			if err != nil {
				return nil, fmt.Errorf("category %s rule %q: %w", category, line, err)
			}
			compiled = append(compiled, re)
		}
		rules[category] = compiled
	}
	return &Matcher{rules: rules}, nil
}

// NewDefaultMatcher loads the embedded rule files.
func NewDefaultMatcher() (*Matcher, error) {
	raw, err := NewRuleLoader(embeddedFS).LoadRules("rules")
	if err != nil {
		return nil, err
	}
	return NewMatcher(raw)
}

// DefaultWords returns the embedded censor lexicon.
func DefaultWords() ([]string, error) {
	return NewRuleLoader(embeddedFS).LoadWords("words")
}

// Match counts, per category, how many distinct rules matched the normalized
// text. Repetition of one rule does not raise the count; breadth of match
// within a category does.
func (m *Matcher) Match(normalized string) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for category, rules := range m.rules {
		matches := 0
		for _, re := range rules {
			if re.MatchString(normalized) {
				matches++
			}
		}
		if matches > 0 {
			counts[category] = matches
		}
	}
	return counts
}

// Evaluate turns match counts into the triggered category set and the
// maximum severity-weighted confidence. Per-category confidence is
// matches/totalRules clamped to [0,1]; several categories may trigger at
// once and fusion decides how to summarize.
func (m *Matcher) Evaluate(normalized string) ([]domain.Category, float64) {
	counts := m.Match(normalized)

	var triggered []domain.Category
	var maxWeighted float64
	// Fixed iteration order keeps the category slice deterministic.
	for _, category := range domain.AllCategories() {
		matches, ok := counts[category]
		if !ok {
			continue
		}
		triggered = append(triggered, category)

		confidence := float64(matches) / float64(len(m.rules[category]))
		if confidence > 1 {
			confidence = 1
		}
		if weighted := confidence * domain.SeverityWeight(category); weighted > maxWeighted {
			maxWeighted = weighted
		}
	}
	return triggered, maxWeighted
}

// RuleCount reports how many rules a category carries. Used by tests and the
// stats tooling.
func (m *Matcher) RuleCount(category domain.Category) int {
	return len(m.rules[category])
}
