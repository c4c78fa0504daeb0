package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// NewLogger builds the service logger for an APP_ENV value. development and
// local write console output at debug level, test keeps warnings and above,
// every other env writes JSON with caller info. level overrides the env
// default when it parses.
func NewLogger(w io.Writer, serviceName, env, level string) zerolog.Logger {
	env = strings.ToLower(strings.TrimSpace(env))

	minLevel := zerolog.InfoLevel
	out := w
	withCaller := true
	switch env {
	case "development", "local":
		minLevel = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		withCaller = false
	case "test":
		minLevel = zerolog.WarnLevel
		withCaller = false
	}

	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		minLevel = parsed
	}

	ctx := zerolog.New(out).Level(minLevel).With().
		Timestamp().
		Str("service", serviceName).
		Str("env", env)
	if withCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// InitLogger installs NewLogger on stdout as the global logger
func InitLogger(serviceName, env, level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = NewLogger(os.Stdout, serviceName, env, level)
}

// LoggerFromContext returns the global logger tagged with the span in ctx
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := log.Logger

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		logger = logger.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}

	return &logger
}
