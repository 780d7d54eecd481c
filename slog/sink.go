package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newscrawl"
)

// Ensure LoggingSink implements newscrawl.ArticleSink.
var _ newscrawl.ArticleSink = (*LoggingSink)(nil)

// LoggingSink wraps an ArticleSink with logging.
type LoggingSink struct {
	next   newscrawl.ArticleSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next newscrawl.ArticleSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Persist delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) Persist(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (path string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "persist",
			"count", len(articles),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Persist(ctx, captured, articles)
}
