package event

import (
	"time"

	"sentinel-lab/domain"

	"github.com/google/uuid"
)

type Type string

const (
	DomainType          Type = "DOMAIN"
	TechnicalType       Type = "TECHNICAL"
	ChannelCapacityType Type = "CHANNEL_CAPACITY"
)

// Event is the envelope moved through the pipeline channels.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// MessagePosted is a raw message entering the moderation pipeline.
type MessagePosted struct {
	ID      uuid.UUID
	Author  string
	Content string
	At      time.Time
}

// MessageModerated carries the full verdict for a processed message.
// Content holds the censored text when the message was abusive.
type MessageModerated struct {
	ID            uuid.UUID
	Author        string
	Content       string
	CensoredWords []string
	Language      string
	Verdict       domain.Verdict
	At            time.Time
}

// ReportFiled signals that an escalated verdict produced an abuse report.
// The persisted report is retrieved through the report repository; the
// event only identifies the offending message.
type ReportFiled struct {
	MessageID uuid.UUID
	Author    string
	Severity  domain.Severity
}

// WorkerRestartedAfterPanic is emitted by the supervisor for observability.
type WorkerRestartedAfterPanic struct {
	WorkerName string
}

// ModelRetrained signals that a new classifier went live.
type ModelRetrained struct {
	Samples  int
	Accuracy float64
	At       time.Time
}

// ChannelCapacity samples the fill level of a pipeline channel.
type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}
