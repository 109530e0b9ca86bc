package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sentinel-lab/errors"
)

// ClassifierState is one published generation of the live classifier:
// the fitted vectorizer+model pair plus its training metadata. A state is
// immutable once published; retraining produces a brand-new instance.
type ClassifierState struct {
	Classifier *Classifier `json:"classifier"`
	Trained    bool        `json:"trained"`
	Accuracy   float64     `json:"accuracy"`
	TrainedAt  time.Time   `json:"trained_at"`
}

// Predict returns the abusive probability for normalized text, or 0.0 when
// the state is untrained, so the pattern matcher alone governs the decision.
func (s *ClassifierState) Predict(normalized string) float64 {
	if s == nil || !s.Trained || s.Classifier == nil {
		return 0
	}
	return s.Classifier.Predict(normalized)
}

// artifact is the single persisted blob: the state plus a checksum that
// detects truncated or corrupted writes at load time.
type artifact struct {
	SHA256 string          `json:"sha256"`
	State  json.RawMessage `json:"state"`
}

// SaveArtifact serializes the state whole. The write goes through a rename,
// so a crash mid-write never leaves a partial artifact behind.
func SaveArtifact(path string, state *ClassifierState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding classifier state: %w", err)
	}

	blob, err := json.Marshal(artifact{SHA256: sha256Hex(payload), State: payload})
	if err != nil {
		return fmt.Errorf("encoding model artifact: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadArtifact reads and verifies a persisted state.
func LoadArtifact(path string) (*ClassifierState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %q: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parsing model artifact %q: %w", path, err)
	}
	if !strings.EqualFold(sha256Hex(art.State), art.SHA256) {
		return nil, errors.ErrArtifactChecksum
	}

	var state ClassifierState
	if err := json.Unmarshal(art.State, &state); err != nil {
		return nil, fmt.Errorf("parsing classifier state: %w", err)
	}
	return &state, nil
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
