package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Callers pass stderr because stdout carries
// the launcher result. An unknown level still returns a usable logger, fixed
// at warn, alongside the parse error.
func New(out io.Writer, environment, level string) (zerolog.Logger, error) {
	parsedLevel, parseErr := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if parseErr != nil {
		parsedLevel = zerolog.WarnLevel
	}

	writer := out
	if strings.EqualFold(strings.TrimSpace(environment), "local") {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("service", "papagowf").
		Logger()

	if parseErr != nil {
		return logger, fmt.Errorf("parse LOG_LEVEL=%q: %w", level, parseErr)
	}
	return logger, nil
}
