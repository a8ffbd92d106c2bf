package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bad-panda/rlbits"
)

var (
	errNoFields     = errors.New("no fields given")
	errUnknownField = errors.New("unknown field")
	errFieldArgs    = errors.New("invalid field arguments")
)

type decodeFunc func(*rlbits.Reader) (any, error)

// field is one decode step. A nil value from decode prints nothing.
type field struct {
	name   string
	decode decodeFunc
}

//nolint:gochecknoglobals
var plainFields = map[string]decodeFunc{
	"bool":  func(r *rlbits.Reader) (any, error) { return r.ReadBool() },
	"u8":    func(r *rlbits.Reader) (any, error) { return r.ReadUint8() },
	"u16":   func(r *rlbits.Reader) (any, error) { return r.ReadUint16() },
	"u32":   func(r *rlbits.Reader) (any, error) { return r.ReadUint32() },
	"u64":   func(r *rlbits.Reader) (any, error) { return r.ReadUint64() },
	"i8":    func(r *rlbits.Reader) (any, error) { return r.ReadInt8() },
	"i16":   func(r *rlbits.Reader) (any, error) { return r.ReadInt16() },
	"i32":   func(r *rlbits.Reader) (any, error) { return r.ReadInt32() },
	"i64":   func(r *rlbits.Reader) (any, error) { return r.ReadInt64() },
	"f32":   func(r *rlbits.Reader) (any, error) { return r.ReadFloat32() },
	"vec3i": func(r *rlbits.Reader) (any, error) { return r.ReadVector3I() },
	"vec3":  func(r *rlbits.Reader) (any, error) { return r.ReadVector3() },
	"rot":   func(r *rlbits.Reader) (any, error) { return r.ReadRotator() },
	"quat":  func(r *rlbits.Reader) (any, error) { return r.ReadQuat() },
	"uid":   func(r *rlbits.Reader) (any, error) { return r.ReadUniqueID() },
	"str":   func(r *rlbits.Reader) (any, error) { return r.ReadString() },
}

// parseFields parses a comma separated field list such as
// "u32,bits:7,bounded:20,fixed:1:16,skip:3,str".
func parseFields(list string) ([]field, error) {
	var fields []field

	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, args, _ := strings.Cut(item, ":")

		decode, err := newDecodeFunc(name, args)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", item, err)
		}

		fields = append(fields, field{name: item, decode: decode})
	}

	if len(fields) == 0 {
		return nil, errNoFields
	}

	return fields, nil
}

func newDecodeFunc(name, args string) (decodeFunc, error) {
	if decode, ok := plainFields[name]; ok {
		if args != "" {
			return nil, fmt.Errorf("%w: %s takes none", errFieldArgs, name)
		}

		return decode, nil
	}

	switch name {
	case "bits":
		width, err := parseUint(args, 1, 64)
		if err != nil {
			return nil, err
		}

		return func(r *rlbits.Reader) (any, error) { return r.ReadBits(uint(width)) }, nil

	case "bounded":
		maxValue, err := parseUint(args, 1, 1<<32-1)
		if err != nil {
			return nil, err
		}

		return func(r *rlbits.Reader) (any, error) { return r.ReadBounded(uint32(maxValue)) }, nil

	case "fixed":
		rangeArg, bitsArg, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("%w: want fixed:MAX:BITS", errFieldArgs)
		}

		maxValue, err := parseUint(rangeArg, 1, 1<<31-1)
		if err != nil {
			return nil, err
		}

		numBits, err := parseUint(bitsArg, 2, 31)
		if err != nil {
			return nil, err
		}

		return func(r *rlbits.Reader) (any, error) {
			return r.ReadFixedFloat(int32(maxValue), int(numBits))
		}, nil

	case "skip":
		n, err := parseUint(args, 0, 1<<31-1)
		if err != nil {
			return nil, err
		}

		return func(r *rlbits.Reader) (any, error) { return nil, r.Skip(uint(n)) }, nil

	case "back":
		n, err := parseUint(args, 0, 1<<31-1)
		if err != nil {
			return nil, err
		}

		return func(r *rlbits.Reader) (any, error) { return nil, r.SeekBackward(uint(n)) }, nil
	}

	return nil, fmt.Errorf("%w: %s", errUnknownField, name)
}

func parseUint(s string, lo, hi uint64) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errFieldArgs, err)
	}

	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", errFieldArgs, v, lo, hi)
	}

	return v, nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case rlbits.UniqueID:
		return formatUniqueID(v)
	default:
		return fmt.Sprintf("%+v", v)
	}
}

func formatUniqueID(id rlbits.UniqueID) string {
	var payload string

	switch p := id.Payload.(type) {
	case nil:
		payload = "-"
	case rlbits.PS4ID:
		payload = hex.EncodeToString(p.Data)
	default:
		payload = fmt.Sprintf("%+v", p)
	}

	return fmt.Sprintf("%s player=%d %s", id.Platform, id.PlayerNumber, payload)
}
