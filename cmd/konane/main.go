package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/konanebot/konane/cmd/internal/analyze"
	"github.com/konanebot/konane/cmd/internal/play"
	"github.com/konanebot/konane/cmd/internal/selfplay"
)

var (
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logJSON  = flag.Bool("log-json", false, "log JSON lines instead of console output")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("-log-level")
	}
	zerolog.SetGlobalLevel(level)
	if !*logJSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
