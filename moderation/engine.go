package moderation

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"sentinel-lab/domain"
)

// Decision thresholds. Empirically chosen on labeled data; tune through
// Options, not by editing call sites.
const (
	defaultMinLength   = 2
	abusiveThreshold   = 0.5
	mediumConfidence   = 0.5
	highConfidence     = 0.7
	escalateConfidence = 0.85
	criticalConfidence = 0.9
	criticalWeight     = 0.9
	highWeight         = 0.7
	mediumWeight       = 0.5
)

// Predictor is the statistical signal consumed by the engine. It receives
// normalized text and returns the probability that it is abusive. An
// untrained predictor returns 0, leaving the rule matcher in charge.
type Predictor interface {
	Predict(normalized string) float64
}

// Options tunes the engine's decision constants.
type Options struct {
	MinLength          int
	AbusiveThreshold   float64
	EscalateConfidence float64

	// OnRecover is invoked each time a signal fails and the engine
	// degrades it to zero confidence. Used for monitoring counters.
	OnRecover func()
}

func defaultOptions() Options {
	return Options{
		MinLength:          defaultMinLength,
		AbusiveThreshold:   abusiveThreshold,
		EscalateConfidence: escalateConfidence,
	}
}

// Engine fuses the rule matcher and the statistical classifier into one
// verdict per message. It holds no mutable state of its own: safe for
// concurrent Decide calls.
type Engine struct {
	matcher   *Matcher
	predictor Predictor
	opts      Options
	log       *slog.Logger
}

func NewEngine(matcher *Matcher, predictor Predictor, log *slog.Logger, opts ...func(*Options)) *Engine {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &Engine{matcher: matcher, predictor: predictor, opts: o, log: log}
}

// Decide produces the moderation verdict for one raw message. It never
// returns an error: a failing signal degrades to zero confidence and the
// other signal still governs the decision.
func (e *Engine) Decide(raw string) domain.Verdict {
	// Trivial input short-circuits normalization and classification,
	// and avoids false positives on one-character messages. Counted in
	// runes, a multi-byte character is still one character.
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < e.opts.MinLength {
		return domain.AllClear()
	}

	normalized := Normalize(raw)
	if normalized == "" {
		return domain.AllClear()
	}

	categories, patternConfidence := e.evaluatePatterns(normalized)
	mlConfidence := e.predictML(normalized)

	// max, not average: either signal alone can justify flagging, and a
	// weak signal must not dilute a strong one.
	combined := patternConfidence
	if mlConfidence > combined {
		combined = mlConfidence
	}

	escalate := combined > e.opts.EscalateConfidence
	for _, c := range categories {
		if c == domain.CategoryThreat || c == domain.CategoryHateSpeech {
			escalate = true
			break
		}
	}

	return domain.Verdict{
		Abusive:           combined > e.opts.AbusiveThreshold,
		Confidence:        combined,
		Categories:        categories,
		Severity:          severityOf(categories, combined),
		Escalate:          escalate,
		PatternConfidence: patternConfidence,
		MLConfidence:      mlConfidence,
	}
}

// evaluatePatterns shields Decide from a regex engine failure. The rules are
// fixed and pre-validated, so this should never fire, but the matcher gets
// the same fail-to-zero treatment as the classifier for availability.
func (e *Engine) evaluatePatterns(normalized string) (categories []domain.Category, confidence float64) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Pattern matcher failed, falling back to zero", "panic", r)
			e.recovered()
			categories, confidence = nil, 0
		}
	}()
	return e.matcher.Evaluate(normalized)
}

// predictML degrades a classifier failure to zero confidence so rule-based
// detection keeps the call alive.
func (e *Engine) predictML(normalized string) (confidence float64) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("ML prediction failed, falling back to zero", "panic", r)
			e.recovered()
			confidence = 0
		}
	}()
	return e.predictor.Predict(normalized)
}

func (e *Engine) recovered() {
	if e.opts.OnRecover != nil {
		e.opts.OnRecover()
	}
}

func severityOf(categories []domain.Category, confidence float64) domain.Severity {
	var maxWeight float64
	for _, c := range categories {
		if w := domain.SeverityWeight(c); w > maxWeight {
			maxWeight = w
		}
	}

	switch {
	case maxWeight >= criticalWeight || confidence > criticalConfidence:
		return domain.SeverityCritical
	case maxWeight >= highWeight || confidence > highConfidence:
		return domain.SeverityHigh
	case maxWeight >= mediumWeight || confidence > mediumConfidence:
		return domain.SeverityMedium
	case len(categories) > 0:
		return domain.SeverityLow
	default:
		return domain.SeverityNone
	}
}
