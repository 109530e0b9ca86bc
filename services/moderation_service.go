//go:generate go run go.uber.org/mock/mockgen -source=moderation_service.go -destination=../mocks/mock_moderation_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"sentinel-lab/auth"
	"sentinel-lab/domain"
	"sentinel-lab/domain/event"
	"sentinel-lab/moderation"
	"sentinel-lab/repositories"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type IModerationService interface {
	Moderate(ctx context.Context, msg event.MessagePosted) (event.MessageModerated, error)
	PendingReports(limit int) ([]domain.AbuseReport, error)
	SearchReports(ctx context.Context, terms string, from int) ([]domain.AbuseReport, uint64, error)
	ResolveReport(token string, id uuid.UUID) error
}

// ModerationService runs the full decision flow for one message: engine
// verdict, censoring, report filing on escalation and feedback capture
// for later labeling.
type ModerationService struct {
	engine   *moderation.Engine
	censor   *moderation.Censor
	reports  repositories.IReportRepository
	feedback repositories.IFeedbackRepository
	log      *slog.Logger
}

func NewModerationService(engine *moderation.Engine, censor *moderation.Censor,
	reports repositories.IReportRepository, feedback repositories.IFeedbackRepository,
	log *slog.Logger) *ModerationService {
	return &ModerationService{
		engine:   engine,
		censor:   censor,
		reports:  reports,
		feedback: feedback,
		log:      log,
	}
}

func (s *ModerationService) Moderate(ctx context.Context, msg event.MessagePosted) (event.MessageModerated, error) {
	info := whatlanggo.Detect(msg.Content)
	langCode := info.Lang.Iso6391()

	start := time.Now()
	verdict := s.engine.Decide(msg.Content)
	leadTime := time.Since(start)

	content := msg.Content
	var censoredWords []string
	if verdict.Abusive {
		content, censoredWords = s.censor.Apply(msg.Content)

		s.log.Warn("Abusive message detected",
			"author", msg.Author,
			"severity", string(verdict.Severity),
			"confidence", verdict.Confidence,
			"lang", langCode,
			"latency_us", leadTime.Microseconds())

		// Flagged texts feed the labeling queue. A capture failure must
		// not block moderation itself.
		if _, err := s.feedback.Capture(msg.Content, "auto_flag"); err != nil {
			s.log.Error("Feedback capture failed", "error", err)
		}
	}

	if verdict.Escalate {
		if err := s.fileReport(msg, verdict); err != nil {
			s.log.Error("Report filing failed", "error", err)
		}
	}

	return event.MessageModerated{
		ID:            msg.ID,
		Author:        msg.Author,
		Content:       content,
		CensoredWords: censoredWords,
		Language:      langCode,
		Verdict:       verdict,
		At:            msg.At,
	}, nil
}

func (s *ModerationService) fileReport(msg event.MessagePosted, verdict domain.Verdict) error {
	filed, err := s.reports.File(domain.AbuseReport{
		Text:       msg.Content,
		ReporterID: "system",
		ReportedID: msg.Author,
		Verdict:    verdict,
	})
	if err != nil {
		return err
	}
	s.log.Warn("Escalated verdict filed as report",
		"report_id", filed.ID.String(),
		"severity", string(verdict.Severity))
	return nil
}

func (s *ModerationService) PendingReports(limit int) ([]domain.AbuseReport, error) {
	return s.reports.GetPending(limit)
}

func (s *ModerationService) SearchReports(ctx context.Context, terms string, from int) ([]domain.AbuseReport, uint64, error) {
	return s.reports.SearchPaginated(ctx, terms, from)
}

// ResolveReport checks the caller carries the moderator role before
// closing the report.
func (s *ModerationService) ResolveReport(token string, id uuid.UUID) error {
	claims, err := auth.RequireModerator(token)
	if err != nil {
		return err
	}
	return s.reports.Resolve(id, claims.ModeratorID)
}
