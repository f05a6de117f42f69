package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the logger implementation and its output.
type Options struct {
	Backend string // slog (default) or zap
	Level   string // debug, info, warn, error
	Format  string // text (default) or json
}

// New builds a Logger writing to w according to opts.
func New(w io.Writer, opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		level, err := parseSlogLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		ho := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		switch strings.ToLower(opts.Format) {
		case "", FormatText:
			h = slog.NewTextHandler(w, ho)
		case FormatJSON:
			h = slog.NewJSONHandler(w, ho)
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.Format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		level, err := zapcore.ParseLevel(defaultLevel(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("unknown log level %q", opts.Level)
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		var enc zapcore.Encoder
		switch strings.ToLower(opts.Format) {
		case "", FormatText:
			enc = zapcore.NewConsoleEncoder(encCfg)
		case FormatJSON:
			enc = zapcore.NewJSONEncoder(encCfg)
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.Format)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
		return NewZapLogger(zap.New(core)), nil
	}
	return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
}

func defaultLevel(s string) string {
	if s == "" {
		return "info"
	}
	return strings.ToLower(s)
}

func parseSlogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(defaultLevel(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
