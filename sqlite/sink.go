package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.ArticleSink = (*Sink)(nil)

// Sink persists a run's articles to <dir>/news_<YYYY-MM-DD>.db.
// Persisting twice on the same day updates rows by source URL.
type Sink struct {
	dir string
}

// NewSink creates a Sink writing into dir.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Path returns the database path for the given capture time.
func (s *Sink) Path(captured time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("news_%s.db", captured.Format(newscrawl.DateLayout)))
}

// Persist writes articles and returns the database path.
func (s *Sink) Persist(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := s.Path(captured)
	db := NewDB(path)
	if err := db.Open(); err != nil {
		return "", err
	}

	if _, err := NewArticleStore(db).UpsertArticles(ctx, articles); err != nil {
		db.Close()
		return "", err
	}
	if err := db.Close(); err != nil {
		return "", fmt.Errorf("failed to close database: %w", err)
	}
	return path, nil
}
