package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bad-panda/rlbits"
)

var (
	errInvalidArgCount = errors.New("expected exactly one argument: file path")
	errNegativeOffset  = errors.New("offset must not be negative")
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a sequence of fields from a stream file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "fields",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "comma separated field list, e.g. \"u32,bool,vec3,bits:7,str\"",
			},
			&cli.IntFlag{
				Name:  "offset",
				Value: 0,
				Usage: "bit position to start decoding at",
			},
			&cli.IntFlag{
				Name:  "engine",
				Value: 0,
				Usage: "engine version from the replay header",
			},
			&cli.IntFlag{
				Name:  "licensee",
				Value: 0,
				Usage: "licensee version from the replay header",
			},
			&cli.IntFlag{
				Name:  "net",
				Value: 0,
				Usage: "net version from the replay header",
			},
		},
		Action: runDecode,
	}
}

func runDecode(_ context.Context, cmd *cli.Command) error {
	fields, err := parseFields(cmd.String("fields"))
	if err != nil {
		return err
	}

	buf, err := loadBuffer(cmd)
	if err != nil {
		return err
	}

	ver := rlbits.Version{
		Engine:   uint32(cmd.Int("engine")),   //nolint:gosec // header versions are small
		Licensee: uint32(cmd.Int("licensee")), //nolint:gosec // header versions are small
		Net:      uint32(cmd.Int("net")),      //nolint:gosec // header versions are small
	}
	reader := rlbits.NewReader(buf, ver)

	offset := int(cmd.Int("offset"))
	if offset < 0 {
		return fmt.Errorf("%w: %d", errNegativeOffset, offset)
	}

	if err := reader.Seek(offset); err != nil {
		return fmt.Errorf("seeking to bit %d: %w", offset, err)
	}

	logger.Debug().Stringer("version", ver).Int("offset", offset).Int("fields", len(fields)).Msg("decoding")

	return decodeFields(os.Stdout, reader, fields)
}

// decodeFields decodes fields in order and writes one line per field.
func decodeFields(w io.Writer, reader *rlbits.Reader, fields []field) error {
	for i, f := range fields {
		start := reader.BitPos()

		value, err := f.decode(reader)
		if err != nil {
			return fmt.Errorf("field %d (%s) at bit %d: %w", i, f.name, start, err)
		}

		logger.Debug().Str("field", f.name).Int("start", start).Int("end", reader.BitPos()).Msg("decoded")

		if value == nil {
			continue
		}

		if _, err := fmt.Fprintf(w, "%8d  %-16s %s\n", start, f.name, formatValue(value)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
