// Package fs writes crawled articles as a directory of markdown files.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newscrawl"
)

// URLToPath converts an article URL to a relative file path under its host.
// A query string is folded into a short hash suffix so distinct URLs stay distinct.
// Example: https://www.moneycontrol.com/news/markets/rally-123.html → www.moneycontrol.com/news/markets/rally-123.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || strings.ContainsAny(host, `/\`) || host == "." || host == ".." {
		host = "_"
	}

	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	switch {
	case p == "":
		p = "index"
	case strings.HasSuffix(u.Path, "/"):
		// Trailing slash becomes index.md in that directory
		p += "/index"
	default:
		p = strings.TrimSuffix(p, path.Ext(p))
	}

	if u.RawQuery != "" {
		p += "-" + shortHash(rawURL)
	}
	return host + "/" + p + ".md", nil
}

// shortHash returns 8 hex digits of the xxhash of s.
func shortHash(s string) string {
	return fmt.Sprintf("%08x", uint32(xxhash.Sum64String(s)))
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(a *newscrawl.Article) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(a.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(quoteYAML(a.Title))
	b.WriteString("\ncaptured: ")
	b.WriteString(a.Date())
	b.WriteString("\n---\n\n")
	b.WriteString(a.Content)
	b.WriteString("\n")
	return b.String()
}

// quoteYAML double-quotes s when it could be misread as YAML syntax.
func quoteYAML(s string) string {
	if s == "" || strings.ContainsAny(s, ":#\"'{}[],&*!|>%@`") || s != strings.TrimSpace(s) {
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
	}
	return s
}
