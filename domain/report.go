package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// AbuseReport is filed when a verdict escalates, or manually by a user.
// It is resolved only by a moderator action.
type AbuseReport struct {
	ID          uuid.UUID    `json:"id"`
	Text        string       `json:"text" validate:"required"`
	ReporterID  string       `json:"reporter_id,omitempty"`
	ReportedID  string       `json:"reported_id,omitempty"`
	Verdict     Verdict      `json:"verdict"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	ModeratorID string       `json:"moderator_id,omitempty"`
}
