package domain

// Category is one of the fixed abuse classifications a message can trigger.
// Categories are independent: a single message may trigger several at once.
type Category string

const (
	CategoryThreat     Category = "threat"
	CategoryHateSpeech Category = "hate_speech"
	CategoryHarassment Category = "harassment"
	CategoryOffensive  Category = "offensive"
	CategoryProfanity  Category = "profanity"
	CategorySpam       Category = "spam"
)

// severityWeights are static configuration, never mutated at runtime.
var severityWeights = map[Category]float64{
	CategoryThreat:     1.0,
	CategoryHateSpeech: 0.9,
	CategoryHarassment: 0.8,
	CategoryOffensive:  0.7,
	CategoryProfanity:  0.5,
	CategorySpam:       0.3,
}

// SeverityWeight returns the fixed weight in [0,1] of a category.
// Unknown categories weigh 0.5, matching clean defaults for custom rule sets.
func SeverityWeight(c Category) float64 {
	if w, ok := severityWeights[c]; ok {
		return w
	}
	return 0.5
}

func AllCategories() []Category {
	return []Category{
		CategoryThreat,
		CategoryHateSpeech,
		CategoryHarassment,
		CategoryOffensive,
		CategoryProfanity,
		CategorySpam,
	}
}

// Severity is the tier assigned to a verdict, derived from the triggered
// categories and the combined confidence.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)
