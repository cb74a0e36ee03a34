package di

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/cfgmap"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNilDecoder is returned when a nil Decoder is provided.
var ErrNilDecoder = errors.New("decoder must not be nil")

// ErrNilFetcher is returned when a nil Fetcher is provided.
var ErrNilFetcher = errors.New("fetcher must not be nil")

// Decoder converts raw configuration data into a configuration tree.
// The decode subpackages satisfy it through DecoderFunc.
type Decoder interface {
	Decode(data []byte) (*cfgmap.Map, error)
}

// DecoderFunc adapts a plain decode function to the Decoder interface.
type DecoderFunc func(data []byte) (*cfgmap.Map, error)

// Decode calls f.
func (f DecoderFunc) Decode(data []byte) (*cfgmap.Map, error) {
	return f(data)
}

// Fetcher reads raw configuration data.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a constructor that fetches raw data, decodes it into a
// tree, and stamps the default-lookup prefix onto the result. The returned
// function signature is Fx-friendly, letting the DI container supply the
// Decoder and Fetcher.
func Provider(defaultPath string) func(Decoder, Fetcher) (*cfgmap.Map, error) {
	return func(decoder Decoder, fetcher Fetcher) (*cfgmap.Map, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		tree, err := decoder.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		if defaultPath != "" {
			tree.Default = defaultPath
			slog.Info("default path set", slog.String("default", defaultPath))
		}

		return tree, nil
	}
}

// Options holds settings for a configuration module.
type Options struct {
	decoder     Decoder
	fetcher     Fetcher
	defaultPath string
}

// Option applies a setting to Options.
type Option func(*Options)

// WithDecoder sets the decoder used to parse the fetched data.
func WithDecoder(d Decoder) Option {
	return func(o *Options) {
		o.decoder = d
	}
}

// WithFetcher sets the source of raw configuration data.
func WithFetcher(f Fetcher) Option {
	return func(o *Options) {
		o.fetcher = f
	}
}

// WithDefaultPath sets the default-lookup prefix stamped onto the decoded
// tree. It is concatenated literally by cfgmap option lookups, so include
// the trailing separator, e.g. "defaults/".
func WithDefaultPath(path string) Option {
	return func(o *Options) {
		o.defaultPath = path
	}
}

// NewModule creates an Fx module that supplies a *cfgmap.Map built from the
// configured fetcher and decoder. The name is used as the Fx module name.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.decoder == nil {
		return fx.Error(ErrNilDecoder)
	}

	if options.fetcher == nil {
		return fx.Error(ErrNilFetcher)
	}

	return fx.Module(name,
		fx.Provide(
			func() Decoder { return options.decoder },
			func() Fetcher { return options.fetcher },
			Provider(options.defaultPath),
		),
	)
}
