package sink

import (
	"context"
	"fmt"
	"log/slog"

	"sentinel-lab/domain/event"
	"sentinel-lab/repositories"
)

// JournalSink persists every moderated message for audit purposes.
type JournalSink struct {
	repository repositories.IJournalRepository
	log        *slog.Logger
}

func NewJournalSink(repository repositories.IJournalRepository, log *slog.Logger) JournalSink {
	return JournalSink{repository: repository, log: log}
}

func (s JournalSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.Payload.(type) {
	case event.MessageModerated:
		return s.repository.StoreEntry(toJournalEntry(evt))
	default:
		s.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}

func toJournalEntry(evt event.MessageModerated) repositories.JournalEntry {
	return repositories.JournalEntry{
		ID:            evt.ID,
		Author:        evt.Author,
		Content:       evt.Content,
		CensoredWords: evt.CensoredWords,
		Language:      evt.Language,
		Verdict:       evt.Verdict,
		At:            evt.At,
	}
}
