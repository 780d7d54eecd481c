package fs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.ArticleSink = (*Sink)(nil)

// Sink writes a run's articles to <dir>/news_<YYYY-MM-DD>/, one markdown
// file per article, grouped by host. Articles whose URLs map to the same
// path get a numbered suffix, so every article gets its own file.
// Files are staged in a .tmp directory and moved into place once all are
// written; an existing directory for the day is replaced.
type Sink struct {
	dir string
}

// NewSink creates a Sink writing into dir.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Path returns the output directory for the given capture time.
func (s *Sink) Path(captured time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("news_%s", captured.Format(newscrawl.DateLayout)))
}

// Persist writes articles and returns the output directory.
func (s *Sink) Persist(ctx context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
	final := s.Path(captured)
	temp := final + ".tmp"

	if err := os.RemoveAll(temp); err != nil {
		return "", err
	}
	used := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if err := ctx.Err(); err != nil {
			os.RemoveAll(temp)
			return "", err
		}
		if err := writeArticle(temp, a, used); err != nil {
			os.RemoveAll(temp)
			return "", err
		}
	}
	if err := os.MkdirAll(temp, 0o755); err != nil {
		return "", err
	}

	if err := os.RemoveAll(final); err != nil {
		return "", err
	}
	if err := os.Rename(temp, final); err != nil {
		return "", err
	}
	return final, nil
}

func writeArticle(dir string, a *newscrawl.Article, used map[string]struct{}) error {
	if err := a.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(a.SourceURL)
	if err != nil {
		return newscrawl.Errorf(newscrawl.EINVALID, "invalid source URL %q", a.SourceURL)
	}

	relPath = uniquePath(relPath, used)
	fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatArticle(a)), 0o644)
}

// uniquePath returns relPath, or relPath with the first free "-N" suffix
// before its extension, and records the result in used.
func uniquePath(relPath string, used map[string]struct{}) string {
	candidate := relPath
	ext := path.Ext(relPath)
	stem := strings.TrimSuffix(relPath, ext)
	for n := 2; ; n++ {
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
}
