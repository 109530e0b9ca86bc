package sink

import (
	"context"
	"log/slog"

	"sentinel-lab/domain"
	"sentinel-lab/domain/event"
)

// AlertSink surfaces high and critical verdicts in the logs so an
// operator sees them without querying the journal.
type AlertSink struct {
	log *slog.Logger
}

func NewAlertSink(log *slog.Logger) AlertSink {
	return AlertSink{log: log}
}

func (s AlertSink) Consume(_ context.Context, e event.Event) error {
	moderated, ok := e.Payload.(event.MessageModerated)
	if !ok {
		return nil
	}

	switch moderated.Verdict.Severity {
	case domain.SeverityCritical:
		s.log.Error("Critical abuse detected",
			"author", moderated.Author,
			"confidence", moderated.Verdict.Confidence,
			"categories", moderated.Verdict.Categories)
	case domain.SeverityHigh:
		s.log.Warn("High severity abuse detected",
			"author", moderated.Author,
			"confidence", moderated.Verdict.Confidence)
	}
	return nil
}
