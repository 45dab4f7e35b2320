// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program toon converts between TOON, JSON, and YAML text.
//
// Usage:
//
//	toon [flags] encode [file]   # JSON (or YAML) to TOON
//	toon [flags] decode [file]   # TOON to JSON
//	toon [flags] fmt [file]      # TOON to canonical TOON
//
// Input is read from the named file, or from stdin if the file is omitted or
// is "-". Output is written to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/toon"
	"github.com/creachadair/toon/bridge"
	"github.com/creachadair/toon/cursor"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// settings are the values of the command-line flags.
type settings struct {
	padMissing    bool
	strictNumbers bool
	yaml          bool
	verbose       bool
	path          string
}

func (s settings) decoder() toon.Decoder {
	return toon.Decoder{PadMissingColumns: s.padMissing, StrictNumbers: s.strictNumbers}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg settings
	fs := pflag.NewFlagSet("toon", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.padMissing, "pad-missing", false, "fill missing table cells with null instead of ending the table")
	fs.BoolVar(&cfg.strictNumbers, "strict-numbers", false, "reject number tokens that do not parse completely")
	fs.BoolVar(&cfg.yaml, "yaml", false, "read YAML instead of JSON (encode only)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log details to stderr")
	fs.StringVar(&cfg.path, "path", "", "select a sub-value by dotted path, e.g. users.0.name")
	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(fs)
		return errors.New("subcommand required")
	} else if len(rest) > 2 {
		return fmt.Errorf("too many arguments: %q", rest[2:])
	}
	cmd := rest[0]
	switch cmd {
	case "encode", "decode", "fmt":
	default:
		printUsage(fs)
		return fmt.Errorf("unknown subcommand: %q", cmd)
	}
	var file string
	if len(rest) == 2 {
		file = rest[1]
	}
	input, err := readInput(file, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read input", "file", file, "bytes", len(input))

	var v toon.Value
	switch cmd {
	case "encode":
		if cfg.yaml {
			v, err = bridge.FromYAML(input)
		} else {
			v, err = bridge.FromJSON(input)
		}
	case "decode", "fmt":
		v, err = cfg.decoder().DecodeBytes(input)
		var serr *toon.SyntaxError
		if errors.As(err, &serr) {
			logger.Debug("decoding failed", "offset", serr.Offset, "location", serr.Location.String())
		}
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("parsed value", "kind", v.Kind().String(), "len", v.Len())

	if cfg.path != "" {
		v, err = cursor.Path(v, parsePath(cfg.path)...)
		if err != nil {
			return fmt.Errorf("selecting %q: %w", cfg.path, err)
		}
	}

	var out []byte
	if cmd == "decode" {
		out, err = bridge.ToJSON(v)
		if err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	} else {
		out = toon.AppendEncode(nil, v, 0)
	}
	if len(out) != 0 {
		out = append(out, '\n')
	}
	_, err = stdout.Write(out)
	return err
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

// parsePath splits a dotted path into cursor path elements. Elements that
// parse as integers are array indices, and all others are object keys.
func parsePath(s string) []any {
	var path []any
	for _, elt := range strings.Split(s, ".") {
		if i, err := strconv.Atoi(elt); err == nil {
			path = append(path, i)
		} else {
			path = append(path, elt)
		}
	}
	return path
}

func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Usage: toon [flags] <subcommand> [file]

Subcommands:
  encode   Convert JSON (or YAML, with --yaml) to TOON
  decode   Convert TOON to JSON
  fmt      Rewrite TOON in canonical form

Flags:
%s`, fs.FlagUsages())
}
