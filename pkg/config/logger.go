package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func (c LogConfig) level() (zerolog.Level, error) {
	if strings.TrimSpace(c.Level) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: unknown log level %q", c.Level)
	}
	return level, nil
}

// Logger builds a zerolog logger writing to w.
func (c LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return zerolog.Nop(), err
	}
	out := w
	if !strings.EqualFold(c.Format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
