// Package parquet writes crawled articles as a columnar Parquet dataset.
package parquet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/newscrawl"
	"github.com/parquet-go/parquet-go"
)

var _ newscrawl.ArticleSink = (*Sink)(nil)

// Row is the on-disk record layout, one per article.
type Row struct {
	Title       string `parquet:"title"`
	Content     string `parquet:"content"`
	CaptureDate string `parquet:"capture_date"`
	SourceURL   string `parquet:"source_url"`
}

// NewRow converts an article into its dataset row.
func NewRow(a *newscrawl.Article) Row {
	return Row{
		Title:       a.Title,
		Content:     a.Content,
		CaptureDate: a.Date(),
		SourceURL:   a.SourceURL,
	}
}

// Sink writes a run's articles to <dir>/news_<YYYY-MM-DD>.parquet.
// The file is written under a .tmp name and renamed into place,
// so readers never see a partial dataset. An existing file for the
// same day is replaced.
type Sink struct {
	dir string
}

// NewSink creates a Sink writing into dir.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Path returns the dataset path for the given capture time.
func (s *Sink) Path(captured time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("news_%s.parquet", captured.Format(newscrawl.DateLayout)))
}

// Persist writes articles and returns the dataset path.
func (s *Sink) Persist(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
	rows := make([]Row, 0, len(articles))
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return "", err
		}
		rows = append(rows, NewRow(a))
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := s.Path(captured)
	tmp := path + ".tmp"
	if err := writeRows(tmp, rows); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move dataset into place: %w", err)
	}
	return path, nil
}

func writeRows(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}

	w := parquet.NewGenericWriter[Row](f, parquet.Compression(&parquet.Zstd))
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finish dataset: %w", err)
	}
	return f.Close()
}

// ReadFile reads every row of a dataset written by Sink.
func ReadFile(path string) ([]Row, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return rows, nil
}
