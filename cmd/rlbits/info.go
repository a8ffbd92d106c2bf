package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bad-panda/rlbits"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the size of a stream file",
		ArgsUsage: "<file>",
		Action:    runInfo,
	}
}

func runInfo(_ context.Context, cmd *cli.Command) error {
	buf, err := loadBuffer(cmd)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "bits:  %d\n", buf.Size())
	_, _ = fmt.Fprintf(os.Stdout, "bytes: %d\n", buf.Size()/8)
	_, _ = fmt.Fprintf(os.Stdout, "words: %d\n", buf.Words())

	return nil
}

func loadBuffer(cmd *cli.Command) (*rlbits.Buffer, error) {
	if cmd.NArg() != 1 {
		return nil, fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	path := cmd.Args().First()

	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified stream files
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded stream")

	return rlbits.BufferFromBytes(data), nil
}
