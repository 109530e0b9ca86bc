package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sentinel-lab/ai"
	"sentinel-lab/auth"
	"sentinel-lab/domain"
	"sentinel-lab/errors"
	"sentinel-lab/mocks"
	"sentinel-lab/repositories"
)

func newTrainingService(t *testing.T, feedback repositories.IFeedbackRepository) (*TrainingService, *repositories.MetricsRepository) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	metrics := repositories.NewMetricsRepository(db, slog.Default())
	manager := ai.NewManager(filepath.Join(t.TempDir(), "classifier.json"), slog.Default())
	return NewTrainingService(manager, feedback, metrics, slog.Default()), metrics
}

func labeledExamples(n int) []domain.TrainingExample {
	abusive := []string{
		"you are worthless trash and everyone hates you",
		"shut up idiot nobody wants you here",
		"go away you stupid ugly loser",
	}
	clean := []string{
		"thanks for the help earlier today",
		"could you review my pull request please",
		"great game last night see you tomorrow",
	}

	var examples []domain.TrainingExample
	for i := 0; i < n; i++ {
		examples = append(examples, domain.TrainingExample{
			ID:     uuid.New(),
			Text:   fmt.Sprintf("%s number %d", abusive[i%len(abusive)], i),
			Label:  domain.LabelAbusive,
			Source: "test",
		}, domain.TrainingExample{
			ID:     uuid.New(),
			Text:   fmt.Sprintf("%s number %d", clean[i%len(clean)], i),
			Label:  domain.LabelClean,
			Source: "test",
		})
	}
	return examples
}

func TestTrainingService_RetrainBelowMinimum(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mocks.NewMockIFeedbackRepository(ctrl)
	svc, _ := newTrainingService(t, feedback)

	feedback.EXPECT().CountLabeled().Return(12, nil).Times(1)
	// The corpus is never loaded when the count is too low.
	feedback.EXPECT().GetLabeled().Times(0)

	_, err := svc.Retrain(context.Background())
	req.ErrorIs(err, errors.ErrInsufficientData)
	req.Contains(err.Error(), "12 of 50 samples")
}

func TestTrainingService_RetrainHappyPath(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mocks.NewMockIFeedbackRepository(ctrl)
	svc, metrics := newTrainingService(t, feedback)

	examples := labeledExamples(30)
	feedback.EXPECT().CountLabeled().Return(len(examples), nil).Times(1)
	feedback.EXPECT().GetLabeled().Return(examples, nil).Times(1)

	report, err := svc.Retrain(context.Background())
	req.NoError(err)
	req.Equal(len(examples), report.SampleCount)
	req.Greater(report.TrainAccuracy, 0.5)

	latest, err := metrics.Latest()
	req.NoError(err)
	req.NotNil(latest)
	req.Equal(report.TestAccuracy, latest.Accuracy)
	req.Equal(len(examples), latest.Samples)
}

func TestTrainingService_SampleCountPassThrough(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mocks.NewMockIFeedbackRepository(ctrl)
	svc, _ := newTrainingService(t, feedback)

	feedback.EXPECT().CountLabeled().Return(77, nil).Times(1)

	count, err := svc.SampleCount()
	req.NoError(err)
	req.Equal(77, count)
}

func TestTrainingService_LabelExampleRequiresModerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mocks.NewMockIFeedbackRepository(ctrl)
	svc, _ := newTrainingService(t, feedback)

	t.Run("should label with a moderator token", func(t *testing.T) {
		req := require.New(t)
		id := uuid.New()
		token, err := auth.GenerateToken("mod-1", []string{"moderator"}, time.Hour)
		req.NoError(err)

		feedback.EXPECT().Label(id, domain.LabelAbusive).Return(nil).Times(1)

		req.NoError(svc.LabelExample(token, id, domain.LabelAbusive))
	})

	t.Run("should reject a non moderator token", func(t *testing.T) {
		req := require.New(t)
		token, err := auth.GenerateToken("user-1", []string{"user"}, time.Hour)
		req.NoError(err)

		feedback.EXPECT().Label(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.LabelExample(token, uuid.New(), domain.LabelClean), errors.ErrModeratorRequired)
	})
}

func TestTrainingService_AddExampleRequiresModerator(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedback := mocks.NewMockIFeedbackRepository(ctrl)
	svc, _ := newTrainingService(t, feedback)

	example := domain.TrainingExample{Text: "spam spam", Label: domain.LabelAbusive, Source: "manual"}
	token, err := auth.GenerateToken("mod-1", []string{"moderator"}, time.Hour)
	req.NoError(err)

	feedback.EXPECT().StoreExample(example).Return(nil).Times(1)
	req.NoError(svc.AddExample(token, example))

	feedback.EXPECT().StoreExample(gomock.Any()).Times(0)
	req.ErrorIs(svc.AddExample("garbage", example), errors.ErrInvalidToken)
}
