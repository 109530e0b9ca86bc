package domain

import (
	"time"

	"github.com/google/uuid"
)

// Label values for human-labeled feedback.
const (
	LabelClean   = 0
	LabelAbusive = 1
)

// TrainingExample is one labeled feedback record. The feedback store owns
// its lifecycle; the engine only reads batches of these during a retrain.
type TrainingExample struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text" validate:"required,min=1"`
	Label  int       `json:"label" validate:"oneof=0 1"`
	Source string    `json:"source" validate:"required"`
	At     time.Time `json:"at"`
}

// TrainingReport summarizes one classifier fit.
type TrainingReport struct {
	TrainAccuracy float64 `json:"train_accuracy"`
	TestAccuracy  float64 `json:"test_accuracy"`
	SampleCount   int     `json:"sample_count"`
}
