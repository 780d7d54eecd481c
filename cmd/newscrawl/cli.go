package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/crawl"
	"github.com/fwojciec/newscrawl/fs"
	"github.com/fwojciec/newscrawl/goquery"
	"github.com/fwojciec/newscrawl/htmltomarkdown"
	nchttp "github.com/fwojciec/newscrawl/http"
	"github.com/fwojciec/newscrawl/parquet"
	"github.com/fwojciec/newscrawl/readability"
	ncslog "github.com/fwojciec/newscrawl/slog"
	"github.com/fwojciec/newscrawl/sqlite"
	"github.com/fwojciec/newscrawl/trafilatura"
)

// Bloom filter sizing for --dedup=bloom.
const (
	bloomCapacity = 1_000_000
	bloomFPRate   = 0.001
)

// retryBase is the first backoff delay when --retries is set.
const retryBase = time.Second

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Crawler *crawl.Crawler
	Sink    newscrawl.ArticleSink
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Concurrency        int           `short:"c" default:"4" env:"NEWSCRAWL_CONCURRENCY" help:"Concurrent article fetches per listing page"`
	Timeout            time.Duration `short:"t" default:"10s" env:"NEWSCRAWL_TIMEOUT" help:"Fetch timeout per page"`
	Out                string        `short:"o" default:"." env:"NEWSCRAWL_OUT" type:"path" help:"Output directory"`
	Format             string        `default:"parquet" enum:"parquet,sqlite,markdown" env:"NEWSCRAWL_FORMAT" help:"Dataset format (${enum})"`
	Extractor          string        `default:"markers" enum:"markers,trafilatura,readability" env:"NEWSCRAWL_EXTRACTOR" help:"Article extractor (${enum})"`
	Markdown           bool          `env:"NEWSCRAWL_MARKDOWN" help:"Store readability content as markdown"`
	Dedup              string        `default:"exact" enum:"exact,bloom" env:"NEWSCRAWL_DEDUP" help:"URL dedup strategy (${enum})"`
	ParallelCategories int           `default:"1" env:"NEWSCRAWL_PARALLEL_CATEGORIES" help:"Categories crawled at once"`
	Retries            int           `default:"0" env:"NEWSCRAWL_RETRIES" help:"Retries per failed fetch"`
	RPS                float64       `name:"rps" default:"0" env:"NEWSCRAWL_RPS" help:"Requests per second per domain (0 = unlimited)"`
	UserAgent          string        `env:"NEWSCRAWL_USER_AGENT" help:"User-Agent header"`
	Verbose            bool          `short:"v" env:"NEWSCRAWL_VERBOSE" help:"Log every fetch"`
	URLs               []string      `arg:"" optional:"" name:"category-url" help:"Category listing URLs (default: Moneycontrol sections)"`
}

// categories returns the configured categories, or the defaults.
func (c *CLI) categories() ([]newscrawl.Category, error) {
	if len(c.URLs) == 0 {
		return newscrawl.DefaultCategories(), nil
	}
	categories := make([]newscrawl.Category, 0, len(c.URLs))
	for _, u := range c.URLs {
		cat, err := newscrawl.CategoryFromURL(u)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// wire builds the crawler and sink described by the flags.
func (c *CLI) wire(logger *slog.Logger) *Dependencies {
	opts := []nchttp.Option{nchttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, nchttp.WithUserAgent(c.UserAgent))
	}
	fetcher := ncslog.NewLoggingFetcher(nchttp.NewFetcher(opts...), logger)

	markers := goquery.NewMoneycontrolExtractor()

	var articles newscrawl.ArticleExtractor
	switch c.Extractor {
	case "trafilatura":
		articles = trafilatura.NewExtractor()
	case "readability":
		var conv newscrawl.Converter
		if c.Markdown {
			conv = htmltomarkdown.NewConverter()
		}
		articles = readability.NewExtractor(conv)
	default:
		articles = markers
	}

	var seen newscrawl.URLSet
	switch c.Dedup {
	case "bloom":
		seen = crawl.NewBloomSet(bloomCapacity, bloomFPRate)
	default:
		seen = crawl.NewSeenSet(0)
	}

	var limiter newscrawl.DomainLimiter
	if c.RPS > 0 {
		limiter = crawl.NewDomainLimiter(c.RPS, 1)
	}

	var sink newscrawl.ArticleSink
	switch c.Format {
	case "sqlite":
		sink = sqlite.NewSink(c.Out)
	case "markdown":
		sink = fs.NewSink(c.Out)
	default:
		sink = parquet.NewSink(c.Out)
	}

	return &Dependencies{
		Crawler: &crawl.Crawler{
			Fetcher:             fetcher,
			Listings:            ncslog.NewLoggingListingExtractor(markers, logger),
			Articles:            articles,
			Seen:                seen,
			RateLimiter:         limiter,
			Concurrency:         c.Concurrency,
			CategoryConcurrency: c.ParallelCategories,
			RetryDelays:         crawl.BackoffDelays(c.Retries, retryBase),
		},
		Sink: ncslog.NewLoggingSink(sink, logger),
	}
}

// CrawlCmd crawls categories and persists what it collects.
type CrawlCmd struct {
	Categories []newscrawl.Category
}
