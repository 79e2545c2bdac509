package runner

import (
	"context"
	"log/slog"
	"time"
)

// unitSpan times a single dispatched job and records it at debug level.
type unitSpan struct {
	start  time.Time
	logger *slog.Logger
	unit   string
}

func startUnitSpan(logger *slog.Logger, id string) unitSpan {
	return unitSpan{
		logger: logger,
		unit:   id,
		start:  time.Now(),
	}
}

func (s unitSpan) Finish(ctx context.Context, err error) {
	attrs := []slog.Attr{
		slog.String("unit", s.unit),
		slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "trace", attrs...)
}
