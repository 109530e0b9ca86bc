package ai

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"sentinel-lab/domain"
	"sentinel-lab/errors"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classifier.json")
	return NewManager(path, logs.GetLoggerFromLevel(slog.LevelError))
}

func trainingBatch(n int) []domain.TrainingExample {
	texts, labels := labeledCorpus(n)
	examples := make([]domain.TrainingExample, len(texts))
	for i := range texts {
		examples[i] = domain.TrainingExample{Text: texts[i], Label: labels[i]}
	}
	return examples
}

func TestManager_UntrainedPredictsZero(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)
	assert.False(manager.Trained())
	assert.Zero(manager.Predict("you are worthless trash"))
	assert.True(manager.TrainedAt().IsZero())
}

func TestManager_RetrainPublishes(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)

	report, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.NoError(err)
	assert.Equal(80, report.SampleCount)
	assert.True(manager.Trained())
	assert.False(manager.TrainedAt().IsZero())
	assert.Greater(manager.Predict("you are worthless trash and i hate you"), 0.5)
}

func TestManager_RetrainFailureKeepsPreviousState(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)

	_, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.NoError(err)
	before := manager.TrainedAt()

	_, err = manager.Retrain(context.Background(), trainingBatch(5), MinTrainingSamples)
	assert.ErrorIs(err, errors.ErrInsufficientData)
	assert.True(manager.Trained())
	assert.Equal(before, manager.TrainedAt())
}

func TestManager_RetrainCancelledBeforePublish(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.Retrain(ctx, trainingBatch(40), MinTrainingSamples)
	assert.ErrorIs(err, context.Canceled)
	assert.False(manager.Trained())

	_, err = LoadArtifact(manager.artifactPath)
	assert.Error(err)
}

func TestManager_PersistFailureKeepsPreviousState(t *testing.T) {
	assert := require.New(t)

	// A directory at the artifact path makes the final rename fail.
	path := t.TempDir()
	manager := NewManager(path, logs.GetLoggerFromLevel(slog.LevelError))

	_, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.Error(err)
	assert.False(manager.Trained())
	assert.Zero(manager.Predict("you are worthless trash"))
}

func TestManager_SingleRetrainAtATime(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)
	assert.True(manager.retraining.CompareAndSwap(false, true))
	defer manager.retraining.Store(false)

	_, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.ErrorIs(err, errors.ErrRetrainInFlight)
}

func TestManager_LoadRestoresArtifact(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "classifier.json")
	log := logs.GetLoggerFromLevel(slog.LevelError)

	first := NewManager(path, log)
	_, err := first.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.NoError(err)
	sample := "you are worthless trash and i hate you"
	want := first.Predict(sample)

	second := NewManager(path, log)
	second.Load()
	assert.True(second.Trained())
	assert.Equal(want, second.Predict(sample))
}

func TestManager_LoadMissingArtifactStaysUntrained(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)
	manager.Load()
	assert.False(manager.Trained())
}

func TestManager_ConcurrentPredictDuringRetrain(t *testing.T) {
	assert := require.New(t)

	manager := testManager(t)
	_, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
	assert.NoError(err)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// A live state is always a whole fitted pair, so a
				// prediction mid-swap must still be a probability.
				p := manager.Predict("you stupid ugly loser go away")
				if p < 0 || p > 1 {
					panic(fmt.Sprintf("prediction %f out of range", p))
				}
			}
		}()
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		_, err := manager.Retrain(context.Background(), trainingBatch(40), MinTrainingSamples)
		assert.NoError(err)
	}

	close(stop)
	wg.Wait()
	assert.True(manager.Trained())
}
