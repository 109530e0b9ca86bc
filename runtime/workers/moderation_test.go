package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sentinel-lab/domain"
	"sentinel-lab/domain/event"
	"sentinel-lab/errors"
	"sentinel-lab/mocks"
	"sentinel-lab/observability"
)

func TestModerationWorker_ProducesModeratedEvents(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIModerationService(ctrl)
	monitoring := observability.NewMonitoringManager(log)
	messages := make(chan event.Event, 4)
	events := make(chan event.Event, 4)
	worker := NewModerationWorker(mockService, monitoring, messages, events, log)

	posted := event.MessagePosted{
		ID:      uuid.New(),
		Author:  "bully",
		Content: "i will kill you",
		At:      time.Now().UTC(),
	}
	moderated := event.MessageModerated{
		ID:      posted.ID,
		Author:  posted.Author,
		Content: "i will **** you",
		Verdict: domain.Verdict{Abusive: true, Escalate: true, Severity: domain.SeverityCritical},
		At:      posted.At,
	}

	mockService.EXPECT().
		Moderate(gomock.Any(), posted).
		Return(moderated, nil).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	messages <- event.Event{Type: event.DomainType, CreatedAt: time.Now().UTC(), Payload: posted}

	select {
	case produced := <-events:
		req.Equal(event.DomainType, produced.Type)
		payload, ok := produced.Payload.(event.MessageModerated)
		req.True(ok)
		req.Equal(moderated.ID, payload.ID)
		req.Equal("i will **** you", payload.Content)
	case <-time.After(time.Second):
		req.Fail("No moderated event produced in time")
	}

	// Escalated verdicts also announce the auto-filed report.
	select {
	case produced := <-events:
		filed, ok := produced.Payload.(event.ReportFiled)
		req.True(ok)
		req.Equal(posted.ID, filed.MessageID)
		req.Equal(domain.SeverityCritical, filed.Severity)
	case <-time.After(time.Second):
		req.Fail("No report filed event produced in time")
	}

	cancel()
	req.ErrorIs(<-done, context.Canceled)

	stats := monitoring.GetLatest()
	req.Equal(uint64(1), stats.MessagesProcessed)
	req.Equal(uint64(1), stats.MessagesFlagged)
	req.Equal(uint64(1), stats.Escalations)
}

func TestModerationWorker_SkipsFailedModeration(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIModerationService(ctrl)
	messages := make(chan event.Event, 4)
	events := make(chan event.Event, 4)
	worker := NewModerationWorker(mockService, nil, messages, events, log)

	failing := event.MessagePosted{ID: uuid.New(), Author: "alice", Content: "first"}
	working := event.MessagePosted{ID: uuid.New(), Author: "bob", Content: "second"}

	mockService.EXPECT().
		Moderate(gomock.Any(), failing).
		Return(event.MessageModerated{}, errors.ErrNotTrained).
		Times(1)
	mockService.EXPECT().
		Moderate(gomock.Any(), working).
		Return(event.MessageModerated{ID: working.ID}, nil).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = worker.Run(ctx)
	}()

	messages <- event.Event{Type: event.DomainType, Payload: failing}
	messages <- event.Event{Type: event.DomainType, Payload: working}

	// The failed message is dropped, the next one still flows through.
	select {
	case produced := <-events:
		payload, ok := produced.Payload.(event.MessageModerated)
		req.True(ok)
		req.Equal(working.ID, payload.ID)
	case <-time.After(time.Second):
		req.Fail("No moderated event produced in time")
	}
}

func TestModerationWorker_StopsOnClosedChannel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIModerationService(ctrl)
	messages := make(chan event.Event)
	worker := NewModerationWorker(mockService, nil, messages, make(chan event.Event, 1), log)

	close(messages)
	req.NoError(worker.Run(context.Background()))
}
