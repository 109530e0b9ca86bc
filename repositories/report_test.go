package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sentinel-lab/domain"
	"sentinel-lab/errors"
)

func openReportStores(t *testing.T) (*badger.DB, *bluge.Writer) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return db, writer
}

func TestReportRepository_FileAndGetPending(t *testing.T) {
	req := require.New(t)
	db, writer := openReportStores(t)
	repo := NewReportRepository(db, writer, slog.Default())

	for i := 1; i <= 3; i++ {
		_, err := repo.File(domain.AbuseReport{
			Text:       fmt.Sprintf("reported message %d", i),
			ReporterID: "system",
			ReportedID: fmt.Sprintf("user-%d", i),
			Verdict:    domain.Verdict{Abusive: true, Severity: domain.SeverityHigh},
		})
		req.NoError(err)
		time.Sleep(time.Millisecond)
	}

	pending, err := repo.GetPending(50)
	req.NoError(err)
	req.Len(pending, 3)
	// Newest first.
	req.Equal("reported message 3", pending[0].Text)
	req.Equal("reported message 1", pending[2].Text)
	for _, report := range pending {
		req.Equal(domain.ReportPending, report.Status)
		req.NotEqual(uuid.Nil, report.ID)
		req.False(report.CreatedAt.IsZero())
	}

	limited, err := repo.GetPending(2)
	req.NoError(err)
	req.Len(limited, 2)
	req.Equal("reported message 3", limited[0].Text)
}

func TestReportRepository_Resolve(t *testing.T) {
	req := require.New(t)
	db, writer := openReportStores(t)
	repo := NewReportRepository(db, writer, slog.Default())

	filed, err := repo.File(domain.AbuseReport{
		Text:    "i will hurt you",
		Verdict: domain.Verdict{Abusive: true, Severity: domain.SeverityCritical},
	})
	req.NoError(err)

	req.NoError(repo.Resolve(filed.ID, "mod-42"))

	pending, err := repo.GetPending(50)
	req.NoError(err)
	req.Empty(pending)

	resolved, err := repo.getByID(filed.ID.String())
	req.NoError(err)
	req.Equal(domain.ReportResolved, resolved.Status)
	req.Equal("mod-42", resolved.ModeratorID)
	req.NotNil(resolved.ResolvedAt)

	// Closing twice is a client error.
	req.ErrorIs(repo.Resolve(filed.ID, "mod-42"), errors.ErrReportNotFound)
}

func TestReportRepository_ResolveUnknown(t *testing.T) {
	req := require.New(t)
	db, writer := openReportStores(t)
	repo := NewReportRepository(db, writer, slog.Default())

	req.ErrorIs(repo.Resolve(uuid.New(), "mod-1"), errors.ErrReportNotFound)
}

func TestReportRepository_SearchPaginated(t *testing.T) {
	req := require.New(t)
	db, writer := openReportStores(t)
	repo := NewReportRepository(db, writer, slog.Default())
	ctx := context.Background()

	filed, err := repo.File(domain.AbuseReport{
		Text:    "threatening message about grpc migration",
		Verdict: domain.Verdict{Abusive: true, Severity: domain.SeverityHigh},
	})
	req.NoError(err)
	_, err = repo.File(domain.AbuseReport{
		Text:    "unrelated insult about the weather",
		Verdict: domain.Verdict{Abusive: true, Severity: domain.SeverityMedium},
	})
	req.NoError(err)

	req.NoError(repo.Flush())
	time.Sleep(50 * time.Millisecond)

	results, total, err := repo.SearchPaginated(ctx, "grpc", 0)
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Len(results, 1)
	req.Equal(filed.ID, results[0].ID)
	req.Equal("threatening message about grpc migration", results[0].Text)

	none, total, err := repo.SearchPaginated(ctx, "nomatchterm", 0)
	req.NoError(err)
	req.Zero(total)
	req.Empty(none)
}
