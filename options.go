package teachta

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// config holds per-delegator behavior knobs.
type config struct {
	logger   zerolog.Logger
	warnings bool
	reserved map[string]struct{}
}

func defaultConfig() *config {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return &config{
		logger:   zerolog.New(output).With().Timestamp().Str("app", "teachta").Logger(),
		warnings: true,
		reserved: defaultReservedNames(),
	}
}

func applyOptions(options []Option) *config {
	cfg := defaultConfig()
	for _, opt := range options {
		if err := opt(cfg); err != nil {
			panic(fmt.Sprintf("failed to apply option: %v", err))
		}
	}
	return cfg
}

// Option is a function that configures a delegator.
type Option func(*config) error

// WithLogger routes diagnostics, such as the direct-dispatch fallback
// warning, to the given logger instead of the default stderr console
// writer.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithWarnings toggles the direct-dispatch fallback warning. The fallback
// itself still happens; only the diagnostic is suppressed.
func WithWarnings(enabled bool) Option {
	return func(c *config) error {
		c.warnings = enabled
		return nil
	}
}

// WithReservedNames adds names that batch definition must never install,
// on top of the default identity/dispatch primitives.
func WithReservedNames(names ...string) Option {
	return func(c *config) error {
		for _, name := range names {
			if name == "" {
				return &InvalidDelegationError{Reason: "reserved name cannot be empty"}
			}
			c.reserved[name] = struct{}{}
		}
		return nil
	}
}
