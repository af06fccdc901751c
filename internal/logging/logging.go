package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger.
// Console output is human readable; json writes one object per line to out.
func Setup(out io.Writer, level string, json bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}
	writer := out
	if !json {
		writer = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("job", "publish").
		Logger().
		Level(lvl)

	return nil
}
