// Package logging configures the global zerolog logger used for diagnostics.
// User-facing progress output goes through internal/ui, not here.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at w using a console writer and sets the
// level. verbose forces debug regardless of level.
func Setup(w io.Writer, level string, verbose, noColor bool) error {
	lvl := zerolog.DebugLevel
	if !verbose {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		if parsed == zerolog.NoLevel {
			parsed = zerolog.WarnLevel
		}
		lvl = parsed
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()

	return nil
}
