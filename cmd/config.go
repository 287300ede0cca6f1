package main

import (
	"fmt"
	"time"
)

type Config struct {
	BotToken          string        `env:"BOT_TOKEN,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	JoinKeyword       string        `env:"JOIN_KEYWORD,default=playing"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=5s"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
