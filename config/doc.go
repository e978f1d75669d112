// Package config provides the functional-options configuration surface for
// package pipeline, the same pattern the teacher uses throughout —
// dijkstra.Option mutating a dijkstra.Options, builder.BuilderOption
// mutating a builderConfig — applied here to the one entry point this
// module's CLI and tests both go through (SPEC_FULL.md §2).
package config

import (
	"log/slog"
)

// Config holds every pipeline.Compile knob. DefaultConfig returns sensible
// defaults; callers apply Option values on top, later options overriding
// earlier ones — exactly builder.newBuilderConfig's resolution order.
type Config struct {
	// Target names the entity to compile. Empty resolves to the first
	// entity declared in the source (pipeline's default).
	Target string
	// ReserveSpace is the halo radius placement and routing reserve around
	// each macro and wire.
	ReserveSpace int
	// ColumnSpacing is the extra gap the column-sweep placer leaves between
	// one placement column and the next.
	ColumnSpacing int
	// Logger receives one Info line per compile stage transition and
	// Debug-level detail within stages. A nil Logger resolves to
	// slog.Default() at compile time.
	Logger *slog.Logger
}

// Option customizes a Config. As with the teacher's dijkstra.Option, option
// constructors validate their own argument and panic on a value that can
// never be meaningful (a non-positive spacing or halo radius), rather than
// deferring that check to Compile.
type Option func(*Config)

// DefaultConfig returns the configuration pipeline.Compile uses when no
// Option overrides it: the same reserve-space and column-spacing defaults
// package placement already names (placement.DefaultReserveSpace,
// placement.DefaultColumnSpacing), duplicated here as literal values so
// this package does not need to import placement just for two integers.
func DefaultConfig() Config {
	return Config{
		Target:        "",
		ReserveSpace:  3,
		ColumnSpacing: 10,
		Logger:        nil,
	}
}

// New resolves opts against DefaultConfig, in order.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTarget selects which declared entity to compile.
func WithTarget(name string) Option {
	return func(c *Config) { c.Target = name }
}

// WithReserveSpace overrides the halo radius placement and routing reserve.
// Panics for a non-positive value, mirroring dijkstra.WithMaxDistance's
// early-panic-on-nonsense-input convention.
func WithReserveSpace(n int) Option {
	if n <= 0 {
		panic("config: ReserveSpace must be positive")
	}
	return func(c *Config) { c.ReserveSpace = n }
}

// WithColumnSpacing overrides the column-sweep placer's inter-column gap.
func WithColumnSpacing(n int) Option {
	if n <= 0 {
		panic("config: ColumnSpacing must be positive")
	}
	return func(c *Config) { c.ColumnSpacing = n }
}

// WithLogger overrides the structured logger stage transitions are reported
// on.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}
