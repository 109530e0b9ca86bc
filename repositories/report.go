//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sentinel-lab/domain"
	"sentinel-lab/errors"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IReportRepository interface {
	File(report domain.AbuseReport) (domain.AbuseReport, error)
	GetPending(limit int) ([]domain.AbuseReport, error)
	Resolve(id uuid.UUID, moderatorID string) error
	SearchPaginated(ctx context.Context, terms string, from int) ([]domain.AbuseReport, uint64, error)
	Flush() error
}

// ReportRepository stores abuse reports in BadgerDB and mirrors their text
// into a Bluge index so moderators can search reported content.
//
// Key layout:
//
//	report:pending:{nano_padded}:{uuid}   open reports, chronological
//	report:resolved:{nano_padded}:{uuid}  closed reports
//	report:idx:{uuid}                     uuid -> current primary key
//
// Resolving moves a record from the pending to the resolved keyspace, the
// same state transition as a task queue's pending->processing move.
type ReportRepository struct {
	db     *badger.DB
	writer *bluge.Writer
	log    *slog.Logger
}

func NewReportRepository(db *badger.DB, writer *bluge.Writer, log *slog.Logger) *ReportRepository {
	return &ReportRepository{db: db, writer: writer, log: log}
}

const (
	pendingPrefix  = "report:pending:"
	resolvedPrefix = "report:resolved:"
	reportIdx      = "report:idx:"
)

// File persists a new report. The repository assigns identity and creation
// timestamp; callers only provide content and the verdict snapshot.
func (r *ReportRepository) File(report domain.AbuseReport) (domain.AbuseReport, error) {
	report.ID = uuid.New()
	report.Status = domain.ReportPending
	report.CreatedAt = time.Now().UTC()

	key := fmt.Sprintf("%s%019d:%s", pendingPrefix, report.CreatedAt.UnixNano(), report.ID)
	bytes, err := json.Marshal(report)
	if err != nil {
		return domain.AbuseReport{}, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(reportIdx+report.ID.String()), []byte(key))
	})
	if err != nil {
		return domain.AbuseReport{}, err
	}

	if err := r.index(report); err != nil {
		// The report is durable in Badger; a failed index update only
		// degrades search until the next Flush.
		r.log.Error("Failed to index abuse report", "id", report.ID, "error", err)
	}
	return report, nil
}

func (r *ReportRepository) index(report domain.AbuseReport) error {
	doc := bluge.NewDocument(report.ID.String())
	doc.AddField(bluge.NewTextField("text", report.Text).StoreValue())
	doc.AddField(bluge.NewKeywordField("status", string(report.Status)))
	doc.AddField(bluge.NewKeywordField("severity", string(report.Verdict.Severity)))
	doc.AddField(bluge.NewDateTimeField("created_at", report.CreatedAt))
	return r.writer.Update(doc.ID(), doc)
}

// GetPending returns up to limit open reports, newest first, so escalations
// surface before the backlog.
func (r *ReportRepository) GetPending(limit int) ([]domain.AbuseReport, error) {
	var reports []domain.AbuseReport
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(pendingPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration: seek past the newest possible key.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(reports) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var report domain.AbuseReport
				if err := json.Unmarshal(value, &report); err != nil {
					return err
				}
				reports = append(reports, report)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return reports, err
}

// Resolve closes a pending report and stamps the acting moderator.
func (r *ReportRepository) Resolve(id uuid.UUID, moderatorID string) error {
	var resolved domain.AbuseReport
	err := r.db.Update(func(txn *badger.Txn) error {
		idxKey := []byte(reportIdx + id.String())
		item, err := txn.Get(idxKey)
		if err != nil {
			return err
		}
		var primaryKey []byte
		if err := item.Value(func(value []byte) error {
			primaryKey = append([]byte{}, value...)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(primaryKey)
		if err != nil {
			return err
		}
		var report domain.AbuseReport
		if err := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &report)
		}); err != nil {
			return err
		}
		if report.Status != domain.ReportPending {
			return errors.ErrReportNotFound
		}

		now := time.Now().UTC()
		report.Status = domain.ReportResolved
		report.ResolvedAt = &now
		report.ModeratorID = moderatorID

		newKey := fmt.Sprintf("%s%019d:%s", resolvedPrefix, report.CreatedAt.UnixNano(), report.ID)
		bytes, err := json.Marshal(report)
		if err != nil {
			return err
		}
		if err := txn.Delete(primaryKey); err != nil {
			return err
		}
		if err := txn.Set([]byte(newKey), bytes); err != nil {
			return err
		}
		if err := txn.Set(idxKey, []byte(newKey)); err != nil {
			return err
		}
		resolved = report
		return nil
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return errors.ErrReportNotFound
		}
		return err
	}

	if err := r.index(resolved); err != nil {
		r.log.Error("Failed to reindex resolved report", "id", id, "error", err)
	}
	return nil
}

// SearchPaginated runs a full-text query over reported content.
func (r *ReportRepository) SearchPaginated(ctx context.Context, terms string, from int) ([]domain.AbuseReport, uint64, error) {
	reader, err := r.writer.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewMatchQuery(terms).SetField("text")
	request := bluge.NewTopNSearch(10, query).
		SetFrom(from).
		WithStandardAggregations()

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var reports []domain.AbuseReport
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, 0, err
		}
		if match == nil {
			break
		}

		var id string
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				id = string(value)
			}
			return true
		})
		if err != nil {
			return nil, 0, err
		}

		report, err := r.getByID(id)
		if err != nil {
			r.log.Warn("Indexed report missing from store", "id", id)
			continue
		}
		reports = append(reports, report)
	}
	return reports, iterator.Aggregations().Count(), nil
}

func (r *ReportRepository) getByID(id string) (domain.AbuseReport, error) {
	var report domain.AbuseReport
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(reportIdx + id))
		if err != nil {
			return err
		}
		var primaryKey []byte
		if err := item.Value(func(value []byte) error {
			primaryKey = append([]byte{}, value...)
			return nil
		}); err != nil {
			return err
		}
		item, err = txn.Get(primaryKey)
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &report)
		})
	})
	return report, err
}

// Flush makes recent index updates visible to new readers.
func (r *ReportRepository) Flush() error {
	// Bluge batches internally; an empty batch forces a segment flush.
	return r.writer.Batch(bluge.NewBatch())
}
