package ai

import (
	"math"
	"math/rand"
	"sort"
)

// LogisticModel is a binary logistic regression over sparse feature vectors,
// fitted by seeded stochastic gradient descent with balanced class weights.
// Exported fields serialize into the model artifact; a fitted model is
// immutable.
type LogisticModel struct {
	Weights map[int]float64 `json:"weights"`
	Bias    float64         `json:"bias"`
	Seed    int64           `json:"seed"`
}

const (
	fitEpochs       = 60
	fitLearningRate = 0.5
	fitRegularizer  = 1e-4
)

func NewLogisticModel(seed int64) *LogisticModel {
	return &LogisticModel{Weights: make(map[int]float64), Seed: seed}
}

// Fit trains on the given vectors and binary labels. The class with fewer
// samples gets a proportionally larger gradient weight, the equivalent of
// balanced class weighting. Fully deterministic for a fixed seed.
func (m *LogisticModel) Fit(vectors []map[int]float64, labels []int) {
	m.Weights = make(map[int]float64)
	m.Bias = 0

	var positives int
	for _, y := range labels {
		positives += y
	}
	negatives := len(labels) - positives

	// n / (2 * class_count) per class; guard against a degenerate set,
	// callers validate that both classes are present.
	total := float64(len(labels))
	posWeight, negWeight := 1.0, 1.0
	if positives > 0 && negatives > 0 {
		posWeight = total / (2 * float64(positives))
		negWeight = total / (2 * float64(negatives))
	}

	rng := rand.New(rand.NewSource(m.Seed))
	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < fitEpochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		// Decaying step size keeps late epochs from oscillating.
		lr := fitLearningRate / (1 + 0.05*float64(epoch))

		for _, idx := range order {
			vec, y := vectors[idx], float64(labels[idx])

			grad := m.Predict(vec) - y
			if labels[idx] == 1 {
				grad *= posWeight
			} else {
				grad *= negWeight
			}

			m.Bias -= lr * grad
			for slot, x := range vec {
				w := m.Weights[slot]
				m.Weights[slot] = w - lr*(grad*x+fitRegularizer*w)
			}
		}
	}
}

// Predict returns the probability of the positive (abusive) class.
// The sum runs over sorted slots: float addition is not associative, and
// map iteration order would otherwise leak into the gradients and break
// fit reproducibility.
func (m *LogisticModel) Predict(vec map[int]float64) float64 {
	slots := make([]int, 0, len(vec))
	for slot := range vec {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	sum := m.Bias
	for _, slot := range slots {
		sum += m.Weights[slot] * vec[slot]
	}
	return 1 / (1 + math.Exp(-sum))
}
