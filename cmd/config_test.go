package main

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultsParse(t *testing.T) {
	req := require.New(t)

	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("BLUGE_FILEPATH", t.TempDir())
	t.Setenv("MODEL_FILEPATH", t.TempDir()+"/classifier.json")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal(256, config.BufferSize)
	req.Equal(4, config.NumberOfWorkers)

	replacement, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('*', replacement)
}

func TestConfig_CharacterRune(t *testing.T) {
	req := require.New(t)

	_, err := Config{CharReplacement: ""}.CharacterRune()
	req.Error(err)

	_, err = Config{CharReplacement: "**"}.CharacterRune()
	req.Error(err)

	r, err := Config{CharReplacement: "█"}.CharacterRune()
	req.NoError(err)
	req.Equal('█', r)
}
