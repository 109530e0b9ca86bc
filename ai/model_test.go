package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sparseTrainingSet() ([]map[int]float64, []int) {
	v := NewVectorizer()
	texts := []string{
		"i will hurt you badly tonight",
		"you are worthless trash and everyone hates you",
		"go die in a fire you idiot",
		"nobody wants you here get out",
		"thanks for the great code review",
		"the deployment went smoothly this morning",
		"let us grab lunch after the meeting",
		"really nice weather for a walk today",
	}
	labels := []int{1, 1, 1, 1, 0, 0, 0, 0}

	v.Fit(texts)
	vectors := make([]map[int]float64, len(texts))
	for i, text := range texts {
		vectors[i] = v.Transform(text)
	}
	return vectors, labels
}

func TestLogisticModel_FitIsReproducible(t *testing.T) {
	req := require.New(t)

	vectors, labels := sparseTrainingSet()

	first := NewLogisticModel(42)
	first.Fit(vectors, labels)

	second := NewLogisticModel(42)
	second.Fit(vectors, labels)

	req.Equal(first.Bias, second.Bias)
	req.Equal(first.Weights, second.Weights)
	for _, vec := range vectors {
		req.Equal(first.Predict(vec), second.Predict(vec))
	}
}

func TestLogisticModel_PredictIgnoresInsertionOrder(t *testing.T) {
	req := require.New(t)

	model := NewLogisticModel(42)
	vectors, labels := sparseTrainingSet()
	model.Fit(vectors, labels)

	ascending := map[int]float64{3: 0.1, 7: 0.2, 11: 0.3, 19: 0.4, 23: 0.5}
	descending := make(map[int]float64, len(ascending))
	for _, slot := range []int{23, 19, 11, 7, 3} {
		descending[slot] = ascending[slot]
	}

	req.Equal(model.Predict(ascending), model.Predict(descending))
}

func TestVectorizer_TransformIsReproducible(t *testing.T) {
	req := require.New(t)

	v := NewVectorizer()
	v.Fit([]string{"you are trash", "nice work today", "get out idiot"})

	first := v.Transform("you are a complete idiot get out")
	for i := 0; i < 50; i++ {
		req.Equal(first, v.Transform("you are a complete idiot get out"))
	}
}
