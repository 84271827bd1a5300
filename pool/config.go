package pool

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv and New.
const (
	envStrategy = "POOLKIT_STRATEGY"
	envBacking  = "POOLKIT_BACKING"
	envLogAlloc = "POOLKIT_LOG_ALLOC"
)

// Backing selects where the arena memory comes from.
type Backing uint8

const (
	// BackingHeap allocates the arena as an ordinary Go byte slice.
	BackingHeap Backing = iota

	// BackingMmap maps the arena as anonymous private memory outside the Go
	// heap. Only available on unix platforms.
	BackingMmap
)

// String returns the backing name as accepted by ParseBacking.
func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMmap:
		return "mmap"
	default:
		return fmt.Sprintf("Backing(%d)", uint8(b))
	}
}

// ParseBacking parses "heap" or "mmap".
func ParseBacking(name string) (Backing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "":
		return BackingHeap, nil
	case "mmap":
		return BackingMmap, nil
	}
	return 0, fmt.Errorf("unknown backing %q: %w", name, ErrInvalidArgument)
}

// Config controls pool construction.
type Config struct {
	// Strategy picks free runs for Allocate. Default: FirstFit.
	Strategy Strategy

	// Backing selects the arena memory source. Default: BackingHeap.
	Backing Backing

	// Logger receives Debug level traces of splits and merges.
	// If nil, output is discarded unless POOLKIT_LOG_ALLOC is set.
	Logger *slog.Logger
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{
	Strategy: FirstFit,
	Backing:  BackingHeap,
}

// ConfigFromEnv returns DefaultConfig overridden by POOLKIT_STRATEGY and
// POOLKIT_BACKING when they are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig
	if v, ok := os.LookupEnv(envStrategy); ok {
		s, err := ParseStrategy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envStrategy, err)
		}
		cfg.Strategy = s
	}
	if v, ok := os.LookupEnv(envBacking); ok {
		b, err := ParseBacking(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envBacking, err)
		}
		cfg.Backing = b
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Strategy.valid() {
		return fmt.Errorf("strategy %v: %w", c.Strategy, ErrInvalidArgument)
	}
	if c.Backing != BackingHeap && c.Backing != BackingMmap {
		return fmt.Errorf("backing %v: %w", c.Backing, ErrInvalidArgument)
	}
	return nil
}

// discardLogger is shared by every pool without a configured logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if os.Getenv(envLogAlloc) != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return discardLogger
}
