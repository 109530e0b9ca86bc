//go:generate go run go.uber.org/mock/mockgen -source=training_service.go -destination=../mocks/mock_training_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"sentinel-lab/ai"
	"sentinel-lab/auth"
	"sentinel-lab/domain"
	"sentinel-lab/errors"
	"sentinel-lab/repositories"

	"github.com/google/uuid"
)

type ITrainingService interface {
	Retrain(ctx context.Context) (domain.TrainingReport, error)
	LabelExample(token string, id uuid.UUID, label int) error
	AddExample(token string, example domain.TrainingExample) error
	SampleCount() (int, error)
	LatestMetric() (*repositories.ModelMetric, error)
}

// TrainingService owns the retrain flow: it gathers the labeled corpus,
// asks the lifecycle manager for a new model and records the resulting
// metric on success.
type TrainingService struct {
	manager  *ai.Manager
	feedback repositories.IFeedbackRepository
	metrics  *repositories.MetricsRepository
	log      *slog.Logger
}

func NewTrainingService(manager *ai.Manager, feedback repositories.IFeedbackRepository,
	metrics *repositories.MetricsRepository, log *slog.Logger) *TrainingService {
	return &TrainingService{
		manager:  manager,
		feedback: feedback,
		metrics:  metrics,
		log:      log,
	}
}

func (s *TrainingService) Retrain(ctx context.Context) (domain.TrainingReport, error) {
	count, err := s.feedback.CountLabeled()
	if err != nil {
		return domain.TrainingReport{}, err
	}
	if count < ai.MinTrainingSamples {
		return domain.TrainingReport{}, fmt.Errorf("%w: %d of %d samples",
			errors.ErrInsufficientData, count, ai.MinTrainingSamples)
	}

	examples, err := s.feedback.GetLabeled()
	if err != nil {
		return domain.TrainingReport{}, err
	}

	report, err := s.manager.Retrain(ctx, examples, ai.MinTrainingSamples)
	if err != nil {
		return domain.TrainingReport{}, err
	}

	if err := s.metrics.Store(repositories.ModelMetric{
		Accuracy:      report.TestAccuracy,
		TrainAccuracy: report.TrainAccuracy,
		Samples:       report.SampleCount,
	}); err != nil {
		// The new model is already live. Losing one metric row is
		// preferable to failing the retrain.
		s.log.Error("Metric persistence failed", "error", err)
	}

	s.log.Info("Model retrained",
		"samples", report.SampleCount,
		"train_accuracy", report.TrainAccuracy,
		"test_accuracy", report.TestAccuracy)
	return report, nil
}

// LabelExample promotes a captured text into the labeled corpus. Only
// moderators may label.
func (s *TrainingService) LabelExample(token string, id uuid.UUID, label int) error {
	if _, err := auth.RequireModerator(token); err != nil {
		return err
	}
	return s.feedback.Label(id, label)
}

// AddExample stores an already labeled example, as produced by the
// corpus importer or a moderator decision.
func (s *TrainingService) AddExample(token string, example domain.TrainingExample) error {
	if _, err := auth.RequireModerator(token); err != nil {
		return err
	}
	return s.feedback.StoreExample(example)
}

func (s *TrainingService) SampleCount() (int, error) {
	return s.feedback.CountLabeled()
}

func (s *TrainingService) LatestMetric() (*repositories.ModelMetric, error) {
	return s.metrics.Latest()
}
