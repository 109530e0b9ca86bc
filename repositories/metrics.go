package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ModelMetric is one record per successful retrain, kept for the stats
// tooling and the retrain trigger.
type ModelMetric struct {
	Accuracy      float64   `json:"accuracy"`
	TrainAccuracy float64   `json:"train_accuracy"`
	Samples       int       `json:"samples"`
	At            time.Time `json:"at"`
}

type MetricsRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMetricsRepository(db *badger.DB, log *slog.Logger) *MetricsRepository {
	return &MetricsRepository{db: db, log: log}
}

const metricPrefix = "metric:"

func (m *MetricsRepository) Store(metric ModelMetric) error {
	if metric.At.IsZero() {
		metric.At = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%019d", metricPrefix, metric.At.UnixNano())
	bytes, err := json.Marshal(metric)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Latest returns the most recent metric, or nil when no retrain has
// succeeded yet.
func (m *MetricsRepository) Latest() (*ModelMetric, error) {
	var metric *ModelMetric
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(metricPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		it.Seek(seekKey)
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		return it.Item().Value(func(value []byte) error {
			var decoded ModelMetric
			if err := json.Unmarshal(value, &decoded); err != nil {
				return err
			}
			metric = &decoded
			return nil
		})
	})
	return metric, err
}

// History returns up to limit metrics, newest first.
func (m *MetricsRepository) History(limit int) ([]ModelMetric, error) {
	var metrics []ModelMetric
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(metricPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(metrics) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var decoded ModelMetric
				if err := json.Unmarshal(value, &decoded); err != nil {
					return err
				}
				metrics = append(metrics, decoded)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return metrics, err
}
