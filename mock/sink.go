package mock

import (
	"context"
	"time"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.ArticleSink = (*ArticleSink)(nil)

// ArticleSink is a mock implementation of newscrawl.ArticleSink.
type ArticleSink struct {
	PersistFn func(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (string, error)
}

func (s *ArticleSink) Persist(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
	return s.PersistFn(ctx, captured, articles)
}
