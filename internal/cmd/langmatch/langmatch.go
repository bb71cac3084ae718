// Package langmatch parses negotiation CLI flags and runs a one-shot
// Accept-Language match against a supported-locale list.
package langmatch

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/louisbranch/acceptlang"
)

// Config holds langmatch command configuration.
type Config struct {
	Supported []string `env:"ACCEPTLANG_SUPPORTED" envSeparator:"," envDefault:"en"`
	Fallback  string   `env:"ACCEPTLANG_FALLBACK"`

	// Header is the Accept-Language value to negotiate; flag only.
	Header string
	// Base selects the legacy base-language truncation strategy.
	Base bool
	// Lenient accepts quality values without a leading digit.
	Lenient bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	supported := fs.String("supported", strings.Join(cfg.Supported, ","), "comma-separated supported language tags")
	fs.StringVar(&cfg.Fallback, "fallback", cfg.Fallback, "tag to print when nothing matches")
	fs.StringVar(&cfg.Header, "header", "", "Accept-Language header value to negotiate")
	fs.BoolVar(&cfg.Base, "base", false, "use legacy base-language truncation matching")
	fs.BoolVar(&cfg.Lenient, "lenient", false, "accept quality values without a leading digit, such as .8")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Supported = splitTags(*supported)
	return cfg, nil
}

func splitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Run negotiates cfg.Header against cfg.Supported and writes the result.
func Run(cfg Config, out io.Writer) error {
	if len(cfg.Supported) == 0 {
		return errors.New("no supported language tags configured")
	}

	prefs := acceptlang.Parser{LenientQuality: cfg.Lenient}.Parse(cfg.Header)
	match := prefs.Match
	if cfg.Base {
		match = prefs.MatchBase
	}

	tag, ok := match(cfg.Supported...)
	if !ok {
		if cfg.Fallback == "" {
			return errors.New("no acceptable language and no fallback configured")
		}
		tag = cfg.Fallback
	}
	if _, err := fmt.Fprintln(out, tag); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
