// Package goquery extracts listing and article data from news pages
// using CSS structural markers evaluated with goquery.
package goquery

import (
	"net/url"
	"strings"
	"sync"
)

// Markers are the structural markers locating data on a news site.
// Each field is a CSS selector except NextSymbol, which is literal text.
type Markers struct {
	// ArticleItem matches one article row on a listing page.
	ArticleItem string
	// NextContainer matches candidates for the pagination control.
	NextContainer string
	// NextSymbol is the exact text of the pagination control.
	NextSymbol string
	// Title matches the article headline.
	Title string
	// Body matches the article body container.
	Body string
	// Paragraph matches paragraphs inside Body.
	Paragraph string
}

// MoneycontrolMarkers returns the markers used by moneycontrol.com.
func MoneycontrolMarkers() Markers {
	return Markers{
		ArticleItem:   "li.clearfix",
		NextContainer: "span",
		NextSymbol:    "»",
		Title:         "h1.article_title.artTitle",
		Body:          "div#contentdata.content_wrapper.arti-flow",
		Paragraph:     "p",
	}
}

// Registry maps site hosts to their markers.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	markers  map[string]Markers
	fallback Markers
}

// NewRegistry creates a Registry that returns fallback for unknown hosts.
func NewRegistry(fallback Markers) *Registry {
	return &Registry{
		markers:  make(map[string]Markers),
		fallback: fallback,
	}
}

// Register sets the markers for a host. A leading "www." is ignored.
func (r *Registry) Register(host string, m Markers) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers[normalizeHost(host)] = m
}

// ForURL returns the markers registered for the host of rawURL,
// or the fallback markers.
func (r *Registry) ForURL(rawURL string) Markers {
	u, err := url.Parse(rawURL)
	if err != nil {
		return r.fallback
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.markers[normalizeHost(u.Hostname())]; ok {
		return m
	}
	return r.fallback
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
