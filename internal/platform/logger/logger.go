package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Options struct {
	Level  string
	Format string
	App    string
}

// New construye el logger del proceso. Formato text para dev (consola),
// json para producción.
func New(opts Options) zerolog.Logger {
	w := os.Stdout

	ctx := zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}
	l := ctx.Logger()

	if ParseFormat(opts.Format) == FormatText {
		l = l.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	}
	return l
}
