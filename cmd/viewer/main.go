// Command viewer prints the game journal: every finished game with its
// chat, date, and dealt roles. Read-only; safe to run next to the bot.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"mafia-lab/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// CHAT_ID narrows the listing to one chat; 0 lists everything.
	ChatID int64 `envconfig:"CHAT_ID" default:"0"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	log := logs.GetLoggerFromLevel(slog.LevelWarn)

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	repository := repositories.NewGameRecordRepository(db, log)
	records, err := listRecords(repository, cfg.ChatID)
	if err != nil {
		return err
	}

	color.Green.Printf("%d finished game(s)\n", len(records))
	render(records)
	return nil
}

func listRecords(r repositories.GameRecordRepository, chat int64) ([]repositories.GameRecord, error) {
	if chat != 0 {
		return r.ListRecords(chat)
	}
	return r.ListAll()
}

func render(records []repositories.GameRecord) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Chat", "Played At", "Players", "Roles"})

	for _, rec := range records {
		roles := lo.Map(rec.Roles, func(p repositories.PlayerRole, _ int) string {
			return fmt.Sprintf("%s=%s", p.DisplayName, p.Role)
		})
		table.Append([]string{
			strconv.FormatInt(rec.Chat, 10),
			rec.PlayedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(rec.Roles)),
			strings.Join(roles, ", "),
		})
	}
	table.Render()
}
