package moderation

import (
	"bufio"
	"bytes"
	"io/fs"
	"strings"

	"sentinel-lab/domain"
	"sentinel-lab/errors"
)

// RuleLoader reads rule and lexicon files from an embedded filesystem.
// Rule files are named after their category (e.g. "threat.txt") and hold one
// regular expression per line; '#' lines are comments.
type RuleLoader struct {
	fs fs.FS
}

func NewRuleLoader(f fs.FS) *RuleLoader {
	return &RuleLoader{fs: f}
}

// LoadRules scans the given directory, mapping each .txt file to the
// category carried by its filename. The per-category line order is kept:
// rule identity matters when counting distinct matches.
func (l *RuleLoader) LoadRules(path string) (map[domain.Category][]string, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	rules := make(map[domain.Category][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		category := domain.Category(strings.TrimSuffix(entry.Name(), ".txt"))
		lines, err := l.readLines(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			rules[category] = lines
		}
	}

	if len(rules) == 0 {
		return nil, errors.ErrEmptyRules
	}
	return rules, nil
}

// LoadWords parses lexicon files (one word per line, one file per language)
// into a unique word list, for the literal censor.
func (l *RuleLoader) LoadWords(path string) ([]string, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		lines, err := l.readLines(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}
		for _, w := range lines {
			unique[strings.ToLower(w)] = struct{}{}
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return words, nil
}

func (l *RuleLoader) readLines(filename string) ([]string, error) {
	data, err := fs.ReadFile(l.fs, filename)
	if err != nil {
		return nil, err
	}

	var lines []string
	// A scanner handles both \n and \r\n line endings correctly.
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
