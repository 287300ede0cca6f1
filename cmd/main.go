package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"mafia-lab/gateway"
	"mafia-lab/membership"
	"mafia-lab/projection"
	"mafia-lab/repositories"
	"mafia-lab/runtime"
	"mafia-lab/runtime/workers"
	"mafia-lab/services"
	"mafia-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the bot lifecycle, and centralizes
// error reporting, so that every defer (database cleanup included) executes
// before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	censorChar, err := CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Telegram client
	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return fmt.Errorf("telegram connection failed: %w", err)
	}
	log.Info("Authorized on Telegram", "account", bot.Self.UserName)

	// 4. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	orchestrator := runtime.NewOrchestrator(
		log, sup, registry,
		config.BufferSize, censorChar, config.TelemetryInterval,
	)

	recordRepository := repositories.NewGameRecordRepository(db, log)
	orchestrator.AddSinks(
		sink.NewRecordSink(recordRepository, log),
		gateway.NewCensorSink(log, bot),
		projection.NewTimeline(),
	)

	tracker := membership.NewTracker(log)
	gw := gateway.New(log, bot, services.NewGameService(orchestrator), tracker, config.JoinKeyword)
	sup.Add(gw)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
