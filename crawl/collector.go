package crawl

import (
	"sync"

	"github.com/fwojciec/newscrawl"
)

// Collector accumulates extracted articles across all categories of a run.
// At most one article per source URL is kept.
// It is safe for concurrent use by multiple goroutines.
type Collector struct {
	mu       sync.Mutex
	articles []*newscrawl.Article
	urls     map[string]struct{}
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{urls: make(map[string]struct{})}
}

// Add appends articles and returns how many were kept.
// Nil articles and articles whose source URL is already held are dropped.
func (c *Collector) Add(articles ...*newscrawl.Article) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, a := range articles {
		if a == nil {
			continue
		}
		if _, ok := c.urls[a.SourceURL]; ok {
			continue
		}
		c.urls[a.SourceURL] = struct{}{}
		c.articles = append(c.articles, a)
		added++
	}
	return added
}

// Articles returns a snapshot of the collected articles.
func (c *Collector) Articles() []*newscrawl.Article {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*newscrawl.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Len returns the number of collected articles.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.articles)
}
