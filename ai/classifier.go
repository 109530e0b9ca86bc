package ai

import (
	"fmt"
	"math/rand"

	"sentinel-lab/domain"
	"sentinel-lab/errors"
	"sentinel-lab/moderation"
)

// MinTrainingSamples is the default floor below which a training request is
// rejected instead of producing a model that memorizes noise.
const MinTrainingSamples = 50

const (
	holdoutFraction = 0.2
	trainingSeed    = 42
)

// Classifier pairs a fitted vectorizer with a fitted model. The pair is one
// atomic unit: a vectorizer from one training run is never combined with a
// model from another.
type Classifier struct {
	Vectorizer *Vectorizer    `json:"vectorizer"`
	Model      *LogisticModel `json:"model"`
}

// Train fits a brand-new classifier on the labeled corpus and reports
// accuracy on a stratified holdout split, so the test figure is not inflated
// by training-set leakage. Reproducible for a fixed corpus.
func Train(texts []string, labels []int, minSamples int) (*Classifier, domain.TrainingReport, error) {
	var report domain.TrainingReport

	if len(texts) != len(labels) {
		return nil, report, fmt.Errorf("got %d texts for %d labels", len(texts), len(labels))
	}
	if minSamples <= 0 {
		minSamples = MinTrainingSamples
	}
	if len(texts) < minSamples {
		return nil, report, fmt.Errorf("%w: got %d samples, need %d",
			errors.ErrInsufficientData, len(texts), minSamples)
	}

	var positives, negatives []int
	for i, y := range labels {
		switch y {
		case domain.LabelAbusive:
			positives = append(positives, i)
		case domain.LabelClean:
			negatives = append(negatives, i)
		default:
			return nil, report, fmt.Errorf("label at index %d is %d, want 0 or 1", i, y)
		}
	}
	if len(positives) == 0 || len(negatives) == 0 {
		return nil, report, errors.ErrDegenerateLabels
	}

	trainIdx, testIdx := stratifiedSplit(positives, negatives)

	normalized := make([]string, len(texts))
	for i, t := range texts {
		normalized[i] = moderation.Normalize(t)
	}

	trainTexts := make([]string, len(trainIdx))
	for i, idx := range trainIdx {
		trainTexts[i] = normalized[idx]
	}

	vectorizer := NewVectorizer()
	vectorizer.Fit(trainTexts)

	trainVecs := make([]map[int]float64, len(trainIdx))
	trainLabels := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		trainVecs[i] = vectorizer.Transform(normalized[idx])
		trainLabels[i] = labels[idx]
	}

	model := NewLogisticModel(trainingSeed)
	model.Fit(trainVecs, trainLabels)

	clf := &Classifier{Vectorizer: vectorizer, Model: model}
	report = domain.TrainingReport{
		TrainAccuracy: clf.accuracy(normalized, labels, trainIdx),
		TestAccuracy:  clf.accuracy(normalized, labels, testIdx),
		SampleCount:   len(texts),
	}
	return clf, report, nil
}

// Predict returns the probability that normalized text is abusive.
func (c *Classifier) Predict(normalized string) float64 {
	return c.Model.Predict(c.Vectorizer.Transform(normalized))
}

func (c *Classifier) accuracy(normalized []string, labels, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	correct := 0
	for _, idx := range indices {
		predicted := domain.LabelClean
		if c.Predict(normalized[idx]) > 0.5 {
			predicted = domain.LabelAbusive
		}
		if predicted == labels[idx] {
			correct++
		}
	}
	return float64(correct) / float64(len(indices))
}

// stratifiedSplit holds out the same fraction of each class, at least one
// sample per class, after a seeded shuffle.
func stratifiedSplit(positives, negatives []int) (train, test []int) {
	rng := rand.New(rand.NewSource(trainingSeed))
	for _, class := range [][]int{negatives, positives} {
		shuffled := append([]int(nil), class...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		holdout := int(float64(len(shuffled)) * holdoutFraction)
		if holdout == 0 {
			holdout = 1
		}
		test = append(test, shuffled[:holdout]...)
		train = append(train, shuffled[holdout:]...)
	}
	return train, test
}
