// Package main provides the rlbits CLI for inspecting replay network streams.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// Set at link time with -ldflags "-X main.version=...".
var version = "dev"

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).With().Timestamp().Logger()

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:    "rlbits",
		Usage:   "Replay network stream bit inspector",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every decoded field with its bit range",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			decodeCommand(),
			infoCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(1)
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := zerolog.InfoLevel
	if cmd.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	return ctx, nil
}
