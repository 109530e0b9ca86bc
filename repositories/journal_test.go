package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sentinel-lab/domain"
)

func TestJournalRepository_Pagination(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repo := NewJournalRepository(db, slog.Default(), 2)
	now := time.Now().UTC()

	for i := 1; i <= 5; i++ {
		err := repo.StoreEntry(JournalEntry{
			ID:      uuid.New(),
			Author:  fmt.Sprintf("user-%d", i),
			Content: fmt.Sprintf("message %d", i),
			Verdict: domain.Verdict{Severity: domain.SeverityNone},
			At:      now.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	// --- PAGE 1 ---
	page1, cursor1, err := repo.GetRecent(nil)
	req.NoError(err)
	req.Len(page1, 2)
	req.Equal("message 5", page1[0].Content)
	req.Equal("message 4", page1[1].Content)
	req.NotNil(cursor1)

	// --- PAGE 2 ---
	page2, cursor2, err := repo.GetRecent(cursor1)
	req.NoError(err)
	req.Len(page2, 2)
	req.Equal("message 3", page2[0].Content)
	req.Equal("message 2", page2[1].Content)
	req.NotNil(cursor2)

	// --- PAGE 3 ---
	page3, cursor3, err := repo.GetRecent(cursor2)
	req.NoError(err)
	req.Len(page3, 1)
	req.Equal("message 1", page3[0].Content)
	req.Nil(cursor3)
}

func TestJournalRepository_EntryRoundTrip(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repo := NewJournalRepository(db, slog.Default(), 50)
	entry := JournalEntry{
		ID:            uuid.New(),
		Author:        "alice",
		Content:       "you ****** idiot",
		CensoredWords: []string{"stupid"},
		Language:      "en",
		Verdict: domain.Verdict{
			Abusive:    true,
			Confidence: 0.8,
			Categories: []domain.Category{domain.CategoryHarassment},
			Severity:   domain.SeverityHigh,
		},
		At: time.Now().UTC(),
	}
	req.NoError(repo.StoreEntry(entry))

	fetched, cursor, err := repo.GetRecent(nil)
	req.NoError(err)
	req.Nil(cursor)
	req.Len(fetched, 1)
	req.Equal(entry.ID, fetched[0].ID)
	req.Equal(entry.Content, fetched[0].Content)
	req.Equal(entry.CensoredWords, fetched[0].CensoredWords)
	req.Equal(entry.Verdict.Severity, fetched[0].Verdict.Severity)
	req.True(fetched[0].Verdict.Abusive)
}
