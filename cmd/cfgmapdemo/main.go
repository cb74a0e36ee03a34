// Command cfgmapdemo loads a configuration file into a cfgmap tree and
// resolves the paths given as arguments, printing each value with its kind.
//
// Usage:
//
//	cfgmapdemo -config app.yaml [-format yaml] [-default defaults/] path...
//
// The format is inferred from the file extension when -format is not set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/cfgmap"
	jsondecode "github.com/0xalexb/cfgmap/decode/json"
	tomldecode "github.com/0xalexb/cfgmap/decode/toml"
	yamldecode "github.com/0xalexb/cfgmap/decode/yaml"
	"github.com/0xalexb/cfgmap/di"
	filefetcher "github.com/0xalexb/cfgmap/fetcher/file"
	"github.com/0xalexb/cfgmap/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("cfgmapdemo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	flags := flag.NewFlagSet("cfgmapdemo", flag.ExitOnError)
	configPath := flags.String("config", "", "path to the configuration file")
	format := flags.String("format", "", "file format: json, yaml or toml (default: by extension)")
	defaultPath := flags.String("default", "", "default-lookup prefix, e.g. defaults/")
	logLevel := flags.String("log-level", "warn", "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: *logLevel, Format: "text"}, os.Stderr)
	slog.SetDefault(logger)

	if *configPath == "" {
		return fmt.Errorf("missing -config flag")
	}

	decoder, err := decoderFor(*configPath, *format)
	if err != nil {
		return err
	}

	fetcher, err := filefetcher.New(*configPath)
	if err != nil {
		return err
	}

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		di.NewModule("config",
			di.WithFetcher(fetcher),
			di.WithDecoder(decoder),
			di.WithDefaultPath(*defaultPath),
		),
		fx.Invoke(func(tree *cfgmap.Map) {
			for _, path := range flags.Args() {
				value := tree.Get(path)
				if value == nil {
					fmt.Fprintf(out, "%s: <absent>\n", path)
					continue
				}
				fmt.Fprintf(out, "%s: %s (%s)\n", path, value, value.Kind())
			}
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		return fmt.Errorf("starting app: %w", err)
	}

	return app.Stop(context.Background())
}

func decoderFor(path, format string) (di.Decoder, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	switch strings.ToLower(format) {
	case "json":
		return di.DecoderFunc(jsondecode.Decode), nil
	case "yaml", "yml":
		return di.DecoderFunc(yamldecode.Decode), nil
	case "toml":
		return di.DecoderFunc(tomldecode.Decode), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
