package newscrawl

import (
	"context"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for capture dates.
const DateLayout = "2006-01-02"

// Article is a single extracted news article.
type Article struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CaptureDate time.Time `json:"captureDate"`
	SourceURL   string    `json:"sourceUrl"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	return nil
}

// Date returns the capture date in ISO-8601 form.
func (a *Article) Date() string {
	return a.CaptureDate.Format(DateLayout)
}

// CaptureDay truncates t to midnight in its own location.
func CaptureDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ArticleContent holds the fields extracted from an article page.
type ArticleContent struct {
	Title   string
	Content string
}

// ArticleSink persists a run's articles as a single batch.
type ArticleSink interface {
	// Persist writes all articles captured on the given date and returns
	// the location of the written artifact.
	Persist(ctx context.Context, captured time.Time, articles []*Article) (string, error)
}
