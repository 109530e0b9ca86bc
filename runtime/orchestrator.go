// Package runtime handles event production, propagation and worker
// supervision. It orchestrates the pipeline without containing decision
// logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sentinel-lab/contract"
	"sentinel-lab/domain/event"
	"sentinel-lab/observability"
	"sentinel-lab/runtime/workers"
	"sentinel-lab/services"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	numWorkers     int
	permanentSinks []contract.EventSink
	supervisor     contract.ISupervisor
	moderation     services.IModerationService
	training       services.ITrainingService
	monitoring     *observability.MonitoringManager

	messages        chan event.Event
	domainEvents    chan event.Event
	telemetryEvents chan event.Event

	retrainInterval time.Duration
	minNewSamples   int
	metricInterval  time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	moderation services.IModerationService, training services.ITrainingService,
	monitoring *observability.MonitoringManager,
	numWorkers, bufferSize int,
	retrainInterval time.Duration, minNewSamples int,
	metricInterval time.Duration) *Orchestrator {
	telemetryEvents := make(chan event.Event, bufferSize)
	return &Orchestrator{
		log:             log,
		numWorkers:      numWorkers,
		supervisor:      supervisor.WithTelemetry(telemetryEvents),
		moderation:      moderation,
		training:        training,
		monitoring:      monitoring,
		messages:        make(chan event.Event, bufferSize),
		domainEvents:    make(chan event.Event, bufferSize),
		telemetryEvents: telemetryEvents,
		retrainInterval: retrainInterval,
		minNewSamples:   minNewSamples,
		metricInterval:  metricInterval,
	}
}

func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Submit enqueues a message for moderation. The channel is bounded, a
// full pipeline drops the message rather than blocking the producer.
func (o *Orchestrator) Submit(msg event.MessagePosted) {
	e := event.Event{
		Type:      event.DomainType,
		CreatedAt: time.Now().UTC(),
		Payload:   msg,
	}
	select {
	case o.messages <- e:
	default:
		o.log.Warn("Message channel full, dropping message", "author", msg.Author)
	}
}

// Start initiates the orchestrator by preparing all components (worker
// pool, fanout, retrain loop) and then starting the supervisor. It uses
// a preparation pattern to minimize mutex locking time.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	poolWorkers := o.preparePoolWorkers()
	retrainWorker := o.prepareRetrainWorker()
	capacityWorker := o.prepareCapacityWorker()

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	fanoutWorker := workers.NewEventFanout(o.log, o.domainEvents, o.telemetryEvents).
		Add(o.permanentSinks)

	o.supervisor.Add(fanoutWorker)
	o.supervisor.Add(retrainWorker)
	o.supervisor.Add(capacityWorker)
	for _, w := range poolWorkers {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	// Workers already tolerate a nil monitoring manager, the aggregation
	// loop must too.
	if o.monitoring != nil {
		go o.monitoring.Listen(ctx)
	}

	o.log.Info("Starting orchestrator and all supervised workers",
		"pool_size", o.numWorkers)
	o.supervisor.Run(ctx)
	return nil
}

// preparePoolWorkers creates the moderation pool draining the shared
// message channel.
func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewModerationWorker(
			o.moderation, o.monitoring, o.messages, o.domainEvents, o.log))
	}
	return res
}

func (o *Orchestrator) prepareRetrainWorker() contract.Worker {
	return workers.NewRetrainWorker(o.training, o.monitoring,
		o.telemetryEvents, o.retrainInterval, o.minNewSamples, o.log)
}

func (o *Orchestrator) prepareCapacityWorker() contract.Worker {
	channels := []workers.NamedChannel{
		{Name: "messages", Channel: o.messages},
		{Name: "domainEvents", Channel: o.domainEvents},
	}
	return workers.NewChannelCapacityWorker(o.log, channels,
		o.telemetryEvents, o.metricInterval)
}

// Stop initiates a graceful shutdown of the orchestrator.
// It cancels the supervision context to signal workers to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
