package domain

// Verdict is the engine's complete output for one message.
// It is produced per call and never mutated afterwards; persistence is the
// caller's job.
type Verdict struct {
	Abusive    bool       `json:"is_abusive"`
	Confidence float64    `json:"confidence"`
	Categories []Category `json:"categories"`
	Severity   Severity   `json:"severity"`
	Escalate   bool       `json:"escalate"`

	// Component confidences are kept for observability and debugging.
	PatternConfidence float64 `json:"pattern_confidence"`
	MLConfidence      float64 `json:"ml_confidence"`
}

// AllClear is the verdict for trivial or empty input.
func AllClear() Verdict {
	return Verdict{Severity: SeverityNone}
}

// HasCategory reports whether the verdict triggered the given category.
func (v Verdict) HasCategory(c Category) bool {
	for _, got := range v.Categories {
		if got == c {
			return true
		}
	}
	return false
}
