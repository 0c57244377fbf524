package libpng

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Option configures a Loader created with New.
type Option func(*config) error

type config struct {
	platform    Platform
	searchPaths []string
	errOut      io.Writer
	logger      *logrus.Logger
	manifest    Manifest
}

func defaultConfig() config {
	primary, fallbacks := searchCandidates(runtime.GOOS)
	return config{
		platform:    defaultPlatform(),
		searchPaths: append([]string{primary}, fallbacks...),
		errOut:      os.Stderr,
		manifest:    libpngFunctions,
	}
}

// WithPlatform replaces the operating system's dynamic linker.
func WithPlatform(p Platform) Option {
	return func(cfg *config) error {
		if p == nil {
			return fmt.Errorf("platform cannot be nil")
		}
		cfg.platform = p
		return nil
	}
}

// WithSearchPaths replaces the names and paths tried by Load, in order.
func WithSearchPaths(paths ...string) Option {
	return func(cfg *config) error {
		if len(paths) == 0 {
			return fmt.Errorf("search paths cannot be empty")
		}
		cleaned := make([]string, 0, len(paths))
		for _, p := range paths {
			p = strings.TrimSpace(p)
			if p == "" {
				return fmt.Errorf("search path cannot be empty")
			}
			cleaned = append(cleaned, p)
		}
		cfg.searchPaths = cleaned
		return nil
	}
}

// WithErrorOutput sets the stream FlagPrintErrors writes to. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(cfg *config) error {
		if w == nil {
			return fmt.Errorf("error output cannot be nil")
		}
		cfg.errOut = w
		return nil
	}
}

// WithLogger routes FlagPrintErrors diagnostics through an existing logger
// instead of a text logger on the error output.
func WithLogger(logger *logrus.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithManifest replaces the set of resolved functions. The manifest must
// contain png_get_libpng_ver and must not repeat a name.
func WithManifest(m Manifest) Option {
	return func(cfg *config) error {
		if m.Index(versionFunction) < 0 {
			return fmt.Errorf("manifest must contain %s", versionFunction)
		}
		seen := make(map[string]bool, len(m))
		for _, fn := range m {
			if strings.TrimSpace(fn.Name) == "" {
				return fmt.Errorf("manifest contains an empty function name")
			}
			if seen[fn.Name] {
				return fmt.Errorf("manifest lists %s more than once", fn.Name)
			}
			seen[fn.Name] = true
		}
		cfg.manifest = append(Manifest(nil), m...)
		return nil
	}
}
