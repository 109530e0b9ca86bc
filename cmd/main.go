package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentinel-lab/ai"
	"sentinel-lab/auth"
	"sentinel-lab/corpus"
	"sentinel-lab/domain/event"
	"sentinel-lab/moderation"
	"sentinel-lab/observability"
	"sentinel-lab/repositories"
	"sentinel-lab/runtime"
	"sentinel-lab/runtime/workers"
	"sentinel-lab/services"
	"sentinel-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the daemon lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	auth.SetSigningKey(config.JWTSecret)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = writer.Close()
	}()

	// 3. Decision engine
	matcher, err := moderation.NewDefaultMatcher()
	if err != nil {
		return fmt.Errorf("rule loading failed: %w", err)
	}
	words, err := moderation.DefaultWords()
	if err != nil {
		return fmt.Errorf("word loading failed: %w", err)
	}
	replacement, err := config.CharacterRune()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	censor, err := moderation.NewCensor(words, replacement, log)
	if err != nil {
		return fmt.Errorf("censor build failed: %w", err)
	}

	manager := ai.NewManager(config.ModelFilepath, log)
	manager.Load()

	monitoring := observability.NewMonitoringManager(log)
	engine := moderation.NewEngine(matcher, manager, log, func(o *moderation.Options) {
		o.OnRecover = monitoring.IncrEngineRecoveries
	})

	// 4. Repositories & Services
	feedbackRepository := repositories.NewFeedbackRepository(db, log)
	reportRepository := repositories.NewReportRepository(db, writer, log)
	metricsRepository := repositories.NewMetricsRepository(db, log)
	journalRepository := repositories.NewJournalRepository(db, log, config.JournalLimit)

	moderationService := services.NewModerationService(engine, censor,
		reportRepository, feedbackRepository, log)
	trainingService := services.NewTrainingService(manager,
		feedbackRepository, metricsRepository, log)

	if config.CorpusFilepath != "" {
		importer := corpus.NewImporter(feedbackRepository, log)
		if _, err := importer.ImportFile(config.CorpusFilepath, "bootstrap"); err != nil {
			log.Warn("Corpus import failed", "error", err)
		}
	}

	// 5. Supervision & Orchestration
	sup := workers.NewSupervisor(log)

	orchestrator := runtime.NewOrchestrator(
		log, sup, moderationService, trainingService, monitoring,
		config.NumberOfWorkers, config.BufferSize,
		config.RetrainInterval, config.MinNewSamples, config.MetricInterval,
	)
	orchestrator.RegisterSinks(
		sink.NewJournalSink(journalRepository, log),
		sink.NewAlertSink(log),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting moderation pipeline", "at", time.Now().UTC())
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator failed: %w", err)
		}
	}()

	// 7. Standard input feed. Each line becomes a message to moderate,
	// which makes the daemon usable from a shell or a pipe.
	go readLoop(ctx, orchestrator)

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	orchestrator.Stop()
	if err := reportRepository.Flush(); err != nil {
		log.Warn("Index flush failed", "error", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

func readLoop(ctx context.Context, orchestrator *runtime.Orchestrator) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		orchestrator.Submit(event.MessagePosted{
			ID:      uuid.New(),
			Author:  "stdin",
			Content: line,
			At:      time.Now().UTC(),
		})
	}
}
