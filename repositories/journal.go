//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_journal_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sentinel-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IJournalRepository interface {
	StoreEntry(entry JournalEntry) error
	GetRecent(cursor *string) ([]JournalEntry, *string, error)
}

// JournalRepository keeps an audit trail of every moderated message.
type JournalRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries int
}

func NewJournalRepository(db *badger.DB, log *slog.Logger, limitEntries int) *JournalRepository {
	return &JournalRepository{db: db, log: log, limitEntries: limitEntries}
}

type JournalEntry struct {
	ID            uuid.UUID      `json:"id"`
	Author        string         `json:"author"`
	Content       string         `json:"content"`
	CensoredWords []string       `json:"censored_words,omitempty"`
	Language      string         `json:"language,omitempty"`
	Verdict       domain.Verdict `json:"verdict"`
	At            time.Time      `json:"at"`
}

// StoreEntry persists one audit record.
// The key is formatted as "journal:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two entries
//     arrive at the same nanosecond.
func (j *JournalRepository) StoreEntry(entry JournalEntry) error {
	key := fmt.Sprintf("journal:%019d:%s", entry.At.UnixNano(), entry.ID)
	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetRecent retrieves audit entries newest first using a reverse prefix
// scan. The returned cursor resumes the scan on the next call, nil means
// the scan is exhausted.
func (j *JournalRepository) GetRecent(cursor *string) ([]JournalEntry, *string, error) {
	var entries []JournalEntry
	var lastKey string
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte("journal:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(entries) >= j.limitEntries {
				return nil
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				var entry JournalEntry
				if err := json.Unmarshal(value, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		lastKey = ""
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if lastKey == "" {
		return entries, nil, nil
	}
	return entries, &lastKey, nil
}
