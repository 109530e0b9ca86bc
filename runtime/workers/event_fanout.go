package workers

import (
	"context"
	"log/slog"

	"sentinel-lab/contract"
	"sentinel-lab/domain/event"
)

// EventFanout broadcasts moderated events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (journal, metrics),
// not for core decision logic.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	Log            *slog.Logger
	Name           contract.WorkerName
	DomainEvent    chan event.Event
	TelemetryEvent chan event.Event
	sinks          []contract.EventSink
}

func NewEventFanout(log *slog.Logger, domainEvent, telemetryEvent chan event.Event) *EventFanout {
	return &EventFanout{Log: log, DomainEvent: domainEvent, TelemetryEvent: telemetryEvent}
}

func (w EventFanout) Add(sinks []contract.EventSink) EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w EventFanout) WithName(name string) contract.Worker {
	w.Name = contract.WorkerName(name)
	return w
}

func (w EventFanout) GetName() contract.WorkerName { return w.Name }

func (w EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.DomainEvent:
			w.Fanout(ctx, evt)
			select {
			case w.TelemetryEvent <- evt:
			default:
				w.Log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping domainEvent send")
			return nil
		}
	}
}

// Fanout One sink for each event
func (w EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.Log.Warn("Sink consume failed", "error", err)
		}
	}
}
