package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger at the given level; unknown levels fall
// back to info.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}
