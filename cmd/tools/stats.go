// Operator CLI for inspecting a sentinel-lab data directory while the
// daemon is stopped or running (the DB is opened read-only).
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"sentinel-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	JournalLimit   int    `envconfig:"JOURNAL_LIMIT" default:"20"`
}

func main() {
	mode := flag.String("mode", "metrics", "What to display: metrics, reports or journal")
	flag.Parse()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}

	db, err := openDB(cfg.BadgerFilepath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch *mode {
	case "metrics":
		err = showMetrics(db, logger)
	case "reports":
		err = showReports(db, logger)
	case "journal":
		err = showJournal(db, logger, cfg.JournalLimit)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func showMetrics(db *badger.DB, logger *slog.Logger) error {
	metrics, err := repositories.NewMetricsRepository(db, logger).History(20)
	if err != nil {
		return err
	}
	if len(metrics) == 0 {
		color.Yellow.Println("No retrain has run yet")
		return nil
	}

	table := newTable([]string{"Trained At", "Samples", "Train Acc", "Test Acc"})
	for _, m := range metrics {
		table.Append([]string{
			m.At.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", m.Samples),
			fmt.Sprintf("%.3f", m.TrainAccuracy),
			fmt.Sprintf("%.3f", m.Accuracy),
		})
	}
	table.Render()

	latest := metrics[0]
	if latest.Accuracy >= 0.8 {
		color.Green.Printf("Live model: %.1f%% holdout accuracy\n", latest.Accuracy*100)
	} else {
		color.Red.Printf("Live model: %.1f%% holdout accuracy, consider more labeling\n", latest.Accuracy*100)
	}
	return nil
}

func showReports(db *badger.DB, logger *slog.Logger) error {
	// The index writer is nil: this tool only reads the Badger side.
	reports, err := repositories.NewReportRepository(db, nil, logger).GetPending(50)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		color.Green.Println("No pending reports")
		return nil
	}

	table := newTable([]string{"ID", "Severity", "Confidence", "Reported", "Text"})
	for _, r := range reports {
		table.Append([]string{
			r.ID.String()[:8],
			string(r.Verdict.Severity),
			fmt.Sprintf("%.2f", r.Verdict.Confidence),
			r.ReportedID,
			truncate(r.Text, 60),
		})
	}
	table.Render()
	color.Red.Printf("%d reports awaiting a moderator\n", len(reports))
	return nil
}

func showJournal(db *badger.DB, logger *slog.Logger, limit int) error {
	entries, _, err := repositories.NewJournalRepository(db, logger, limit).GetRecent(nil)
	if err != nil {
		return err
	}

	table := newTable([]string{"At", "Author", "Severity", "Lang", "Content"})
	for _, e := range entries {
		table.Append([]string{
			e.At.Format("15:04:05"),
			e.Author,
			string(e.Verdict.Severity),
			e.Language,
			truncate(e.Content, 60),
		})
	}
	table.Render()
	return nil
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	return badger.Open(opts)
}
