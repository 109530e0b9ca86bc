// Package corpus imports labeled training data from external files into
// the feedback store.
package corpus

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"sentinel-lab/domain"
	"sentinel-lab/repositories"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

// Importer loads labeled examples from CSV or JSON files. The format is
// detected from the file content, not the extension.
type Importer struct {
	feedback repositories.IFeedbackRepository
	log      *slog.Logger
}

func NewImporter(feedback repositories.IFeedbackRepository, log *slog.Logger) *Importer {
	return &Importer{feedback: feedback, log: log}
}

type fileExample struct {
	Text  string `json:"text"`
	Label int    `json:"label"`
}

// ImportFile reads a labeled corpus file and stores every example with
// the given source tag. It returns the number of imported examples.
func (i *Importer) ImportFile(path, source string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	mime, err := mimetype.DetectReader(file)
	if err != nil {
		return 0, fmt.Errorf("mime detection failed: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	var examples []fileExample
	switch {
	case mime.Is("application/json"):
		examples, err = parseJSON(file)
	case mime.Is("text/csv") || mime.Is("text/plain"):
		examples, err = parseCSV(file)
	default:
		return 0, fmt.Errorf("unsupported corpus format: %s", mime.String())
	}
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, example := range examples {
		err := i.feedback.StoreExample(domain.TrainingExample{
			Text:   example.Text,
			Label:  example.Label,
			Source: source,
			At:     time.Now().UTC(),
		})
		if err != nil {
			i.log.Warn("Skipping invalid example", "error", err)
			continue
		}
		imported++
	}

	i.log.Info("Corpus imported",
		"path", path,
		"format", mime.String(),
		"imported", imported,
		"skipped", len(examples)-imported)
	return imported, nil
}

func parseJSON(r io.Reader) ([]fileExample, error) {
	var examples []fileExample
	if err := json.NewDecoder(r).Decode(&examples); err != nil {
		return nil, fmt.Errorf("json corpus decode failed: %w", err)
	}
	return examples, nil
}

// parseCSV expects two columns, text then label. A header row is
// skipped when its label column is not numeric.
func parseCSV(r io.Reader) ([]fileExample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv corpus read failed: %w", err)
	}

	examples := lo.FilterMap(records, func(record []string, _ int) (fileExample, bool) {
		if len(record) < 2 {
			return fileExample{}, false
		}
		label, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			// Header row or malformed label
			return fileExample{}, false
		}
		return fileExample{Text: record[0], Label: label}, true
	})
	return examples, nil
}
