package workers

import (
	"context"
	"log/slog"
	"time"

	"sentinel-lab/domain/event"
	"sentinel-lab/observability"
	"sentinel-lab/services"
)

// ModerationWorker drains the inbound message channel and runs each
// message through the decision flow. Several instances run in parallel
// under the supervisor, all consuming the same channel.
type ModerationWorker struct {
	service    services.IModerationService
	messages   chan event.Event
	events     chan event.Event
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewModerationWorker(service services.IModerationService,
	monitoring *observability.MonitoringManager,
	messages, events chan event.Event, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		service:    service,
		monitoring: monitoring,
		messages:   messages,
		events:     events,
		log:        log,
	}
}

func (w ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			switch evt := e.Payload.(type) {
			case event.MessagePosted:
				moderated, err := w.service.Moderate(ctx, evt)
				if err != nil {
					w.log.Error("Moderation failed", "error", err, "author", evt.Author)
					continue
				}
				w.record(moderated)
				for _, out := range toEvents(moderated) {
					select {
					case <-ctx.Done():
						w.log.Debug("Stopping worker")
						return ctx.Err()
					case w.events <- out:
					}
				}
			}
		}
	}
}

func (w ModerationWorker) record(moderated event.MessageModerated) {
	if w.monitoring == nil {
		return
	}
	w.monitoring.IncrProcessed()
	if moderated.Verdict.Abusive {
		w.monitoring.IncrFlagged()
	}
	if moderated.Verdict.Escalate {
		w.monitoring.IncrEscalations()
	}
}

// toEvents always produces the moderated event, plus a ReportFiled event
// when the verdict escalated and a report was auto-filed.
func toEvents(moderated event.MessageModerated) []event.Event {
	events := []event.Event{{
		Type:      event.DomainType,
		CreatedAt: time.Now().UTC(),
		Payload:   moderated,
	}}
	if moderated.Verdict.Escalate {
		events = append(events, event.Event{
			Type:      event.DomainType,
			CreatedAt: time.Now().UTC(),
			Payload: event.ReportFiled{
				MessageID: moderated.ID,
				Author:    moderated.Author,
				Severity:  moderated.Verdict.Severity,
			},
		})
	}
	return events
}
