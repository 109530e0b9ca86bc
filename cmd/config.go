package main

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4"`
	CharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	RetrainInterval time.Duration `env:"RETRAIN_INTERVAL,default=1h"`
	MinNewSamples   int           `env:"MIN_NEW_SAMPLES,default=10"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s"`
	JournalLimit    int           `env:"JOURNAL_LIMIT,default=50"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION,default=24h"`
	JWTSecret       string        `env:"JWT_SECRET"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	ModelFilepath   string        `env:"MODEL_FILEPATH,required=true"`
	CorpusFilepath  string        `env:"CORPUS_FILEPATH"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
