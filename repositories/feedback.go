//go:generate go run go.uber.org/mock/mockgen -source=feedback.go -destination=../mocks/mock_feedback_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sentinel-lab/domain"
	"sentinel-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IFeedbackRepository interface {
	StoreExample(example domain.TrainingExample) error
	Capture(text, source string) (uuid.UUID, error)
	Label(id uuid.UUID, label int) error
	GetLabeled() ([]domain.TrainingExample, error)
	CountLabeled() (int, error)
}

// FeedbackRepository persists the labeled corpus the classifier retrains
// from. Labeled examples live under "feedback:", captured-but-unlabeled
// texts under "capture:" until a moderator labels them.
//
// Keys embed a 19-digit zero-padded nanosecond timestamp so prefix scans
// iterate in chronological order, and a UUID as a collision disconnector.
type FeedbackRepository struct {
	db       *badger.DB
	validate *validator.Validate
	log      *slog.Logger
}

func NewFeedbackRepository(db *badger.DB, log *slog.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:       db,
		validate: validator.New(),
		log:      log,
	}
}

const (
	labeledPrefix  = "feedback:"
	capturedPrefix = "capture:"
)

// capturedText is a prediction-time capture awaiting a human label.
type capturedText struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	Source string    `json:"source"`
	At     time.Time `json:"at"`
}

// StoreExample persists an already-labeled example (corpus imports,
// moderator decisions).
func (f *FeedbackRepository) StoreExample(example domain.TrainingExample) error {
	if example.ID == uuid.Nil {
		example.ID = uuid.New()
	}
	if example.At.IsZero() {
		example.At = time.Now().UTC()
	}
	if err := f.validate.Struct(example); err != nil {
		return fmt.Errorf("invalid training example: %w", err)
	}

	key := fmt.Sprintf("%s%019d:%s", labeledPrefix, example.At.UnixNano(), example.ID)
	bytes, err := json.Marshal(example)
	if err != nil {
		return err
	}
	return f.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Capture stores a moderated text without a label, so moderators can label
// it later and grow the corpus.
func (f *FeedbackRepository) Capture(text, source string) (uuid.UUID, error) {
	captured := capturedText{
		ID:     uuid.New(),
		Text:   text,
		Source: source,
		At:     time.Now().UTC(),
	}

	key := fmt.Sprintf("%s%s", capturedPrefix, captured.ID)
	bytes, err := json.Marshal(captured)
	if err != nil {
		return uuid.Nil, err
	}
	err = f.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	return captured.ID, err
}

// Label turns a captured text into a labeled example and drops the capture,
// in a single transaction. A rejected label leaves the capture in place so
// the moderator can retry.
func (f *FeedbackRepository) Label(id uuid.UUID, label int) error {
	key := []byte(fmt.Sprintf("%s%s", capturedPrefix, id))

	err := f.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var captured capturedText
		if err := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &captured)
		}); err != nil {
			return err
		}

		example := domain.TrainingExample{
			ID:     captured.ID,
			Text:   captured.Text,
			Label:  label,
			Source: captured.Source,
			At:     time.Now().UTC(),
		}
		if err := f.validate.Struct(example); err != nil {
			return fmt.Errorf("invalid training example: %w", err)
		}

		bytes, err := json.Marshal(example)
		if err != nil {
			return err
		}
		labeledKey := fmt.Sprintf("%s%019d:%s", labeledPrefix, example.At.UnixNano(), example.ID)
		if err := txn.Set([]byte(labeledKey), bytes); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrExampleNotFound
	}
	return err
}

// GetLabeled returns the whole labeled corpus in chronological order.
func (f *FeedbackRepository) GetLabeled() ([]domain.TrainingExample, error) {
	var examples []domain.TrainingExample
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte(labeledPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var ex domain.TrainingExample
				if err := json.Unmarshal(value, &ex); err != nil {
					return err
				}
				examples = append(examples, ex)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return examples, err
}

// CountLabeled counts without decoding values.
func (f *FeedbackRepository) CountLabeled() (int, error) {
	count := 0
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte(labeledPrefix)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
