package ai

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sentinel-lab/errors"
)

func fittedState(t *testing.T) *ClassifierState {
	t.Helper()

	texts, labels := labeledCorpus(30)
	clf, report, err := Train(texts, labels, MinTrainingSamples)
	require.NoError(t, err)

	return &ClassifierState{
		Classifier: clf,
		Trained:    true,
		Accuracy:   report.TestAccuracy,
		TrainedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "models", "classifier.json")
	state := fittedState(t)

	assert.NoError(SaveArtifact(path, state))

	loaded, err := LoadArtifact(path)
	assert.NoError(err)
	assert.True(loaded.Trained)
	assert.Equal(state.Accuracy, loaded.Accuracy)
	assert.Equal(state.TrainedAt, loaded.TrainedAt)

	sample := "you are worthless trash"
	assert.Equal(state.Predict(sample), loaded.Predict(sample))
}

func TestLoadArtifact_MissingFile(t *testing.T) {
	assert := require.New(t)

	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestLoadArtifact_DetectsTampering(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "classifier.json")
	assert.NoError(SaveArtifact(path, fittedState(t)))

	data, err := os.ReadFile(path)
	assert.NoError(err)

	var art artifact
	assert.NoError(json.Unmarshal(data, &art))

	var state ClassifierState
	assert.NoError(json.Unmarshal(art.State, &state))
	state.Accuracy = 1.0
	art.State, err = json.Marshal(state)
	assert.NoError(err)

	tampered, err := json.Marshal(art)
	assert.NoError(err)
	assert.NoError(os.WriteFile(path, tampered, 0o644))

	_, err = LoadArtifact(path)
	assert.ErrorIs(err, errors.ErrArtifactChecksum)
}

func TestLoadArtifact_RejectsGarbage(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "classifier.json")
	assert.NoError(os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := LoadArtifact(path)
	assert.Error(err)
}

func TestClassifierState_UntrainedPredictsZero(t *testing.T) {
	assert := require.New(t)

	var nilState *ClassifierState
	assert.Zero(nilState.Predict("anything"))
	assert.Zero((&ClassifierState{}).Predict("anything"))
}
