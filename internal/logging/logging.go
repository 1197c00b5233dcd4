package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to w. format is "json" or "pretty";
// level is any zerolog level name ("debug", "info", ...).
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if format == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
