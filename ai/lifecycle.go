package ai

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"sentinel-lab/domain"
	"sentinel-lab/errors"
)

// Manager owns the live classifier state. Inference reads the state through
// an atomic pointer without any locking; a retrain fits the replacement off
// to the side and takes the publish mutex only for the persist-and-swap,
// so concurrent Predict calls are blocked for a pointer swap at most.
//
// Readers always observe either the old or the new state whole, never a
// vectorizer from one training run paired with a model from another.
type Manager struct {
	live atomic.Pointer[ClassifierState]

	// publishMu serializes the persist+swap step. The fit itself runs
	// outside the lock.
	publishMu  sync.Mutex
	retraining atomic.Bool

	artifactPath string
	log          *slog.Logger
}

func NewManager(artifactPath string, log *slog.Logger) *Manager {
	m := &Manager{artifactPath: artifactPath, log: log}
	m.live.Store(&ClassifierState{})
	return m
}

// Load restores the persisted artifact. A missing or corrupt artifact is
// not fatal: the manager stays untrained and the service degrades to
// pattern-only detection.
func (m *Manager) Load() {
	state, err := LoadArtifact(m.artifactPath)
	if err != nil {
		m.log.Warn("Model artifact unavailable, starting untrained",
			"path", m.artifactPath, "error", err)
		return
	}
	m.live.Store(state)
	m.log.Info("Model artifact loaded",
		"accuracy", state.Accuracy, "trained_at", state.TrainedAt)
}

// Predict delegates to whichever state is live at the moment of the call.
// Safe for unbounded concurrency; never returns an error.
func (m *Manager) Predict(normalized string) float64 {
	return m.live.Load().Predict(normalized)
}

// Trained reports whether the live state carries a fitted pair.
func (m *Manager) Trained() bool {
	return m.live.Load().Trained
}

// TrainedAt returns the live state's training timestamp, zero when untrained.
func (m *Manager) TrainedAt() time.Time {
	return m.live.Load().TrainedAt
}

// Retrain fits a new classifier on the labeled batch and, on success,
// persists and publishes it as the live state. On any failure the previous
// state remains active. At most one retrain runs at a time.
//
// The context is honored up to the publish point: cancellation between fit
// and publish abandons the new state; once published it is live.
func (m *Manager) Retrain(ctx context.Context, examples []domain.TrainingExample, minSamples int) (domain.TrainingReport, error) {
	var report domain.TrainingReport

	if !m.retraining.CompareAndSwap(false, true) {
		return report, errors.ErrRetrainInFlight
	}
	defer m.retraining.Store(false)

	texts := make([]string, len(examples))
	labels := make([]int, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
		labels[i] = ex.Label
	}

	// The potentially slow fit happens with no lock held.
	classifier, report, err := Train(texts, labels, minSamples)
	if err != nil {
		return report, err
	}

	// Last cancellation point: after this the swap always completes.
	if err := ctx.Err(); err != nil {
		m.log.Warn("Retrain cancelled before publish, keeping previous model")
		return report, err
	}

	next := &ClassifierState{
		Classifier: classifier,
		Trained:    true,
		Accuracy:   report.TestAccuracy,
		TrainedAt:  time.Now().UTC(),
	}

	m.publishMu.Lock()
	defer m.publishMu.Unlock()

	// Persist before swapping: a failed write leaves the old state live
	// and on disk, never a published state that cannot survive a restart.
	if err := SaveArtifact(m.artifactPath, next); err != nil {
		return report, err
	}
	m.live.Store(next)

	m.log.Info("New classifier published",
		"samples", report.SampleCount,
		"train_accuracy", report.TrainAccuracy,
		"test_accuracy", report.TestAccuracy)
	return report, nil
}
