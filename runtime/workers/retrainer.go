package workers

import (
	"context"
	goerrors "errors"
	"log/slog"
	"time"

	"sentinel-lab/domain/event"
	"sentinel-lab/errors"
	"sentinel-lab/observability"
	"sentinel-lab/services"
)

// RetrainWorker periodically checks the labeled corpus and triggers a
// retrain once enough new samples have accumulated since the last
// successful run. The published model swap itself happens inside the
// lifecycle manager.
type RetrainWorker struct {
	training      services.ITrainingService
	monitoring    *observability.MonitoringManager
	telemetry     chan event.Event
	interval      time.Duration
	minNewSamples int
	lastCount     int
	log           *slog.Logger
}

func NewRetrainWorker(training services.ITrainingService,
	monitoring *observability.MonitoringManager,
	telemetry chan event.Event,
	interval time.Duration, minNewSamples int, log *slog.Logger) *RetrainWorker {
	return &RetrainWorker{
		training:      training,
		monitoring:    monitoring,
		telemetry:     telemetry,
		interval:      interval,
		minNewSamples: minNewSamples,
		log:           log,
	}
}

func (w *RetrainWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping retrain worker")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *RetrainWorker) tick(ctx context.Context) {
	count, err := w.training.SampleCount()
	if err != nil {
		w.log.Error("Sample count failed", "error", err)
		return
	}

	if count-w.lastCount < w.minNewSamples {
		w.log.Debug("Not enough new samples",
			"count", count, "since_last", count-w.lastCount)
		return
	}

	report, err := w.training.Retrain(ctx)
	if err != nil {
		switch {
		case goerrors.Is(err, errors.ErrInsufficientData):
			w.log.Debug("Corpus still too small", "count", count)
		case goerrors.Is(err, errors.ErrRetrainInFlight):
			w.log.Debug("Retrain already running")
		default:
			w.log.Error("Retrain failed", "error", err)
		}
		return
	}

	w.lastCount = count
	if w.monitoring != nil {
		w.monitoring.IncrRetrains()
	}
	if w.telemetry != nil {
		select {
		case w.telemetry <- event.Event{
			Type:      event.TechnicalType,
			CreatedAt: time.Now().UTC(),
			Payload: event.ModelRetrained{
				Samples:  report.SampleCount,
				Accuracy: report.TestAccuracy,
				At:       time.Now().UTC(),
			},
		}:
		default:
		}
	}
}
