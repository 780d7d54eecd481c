package crawl

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/bloom"
)

// Compile-time interface verification.
var (
	_ newscrawl.URLSet = (*SeenSet)(nil)
	_ newscrawl.URLSet = (*BloomSet)(nil)
)

// DefaultSeenShards is the shard count used by NewSeenSet for non-positive input.
const DefaultSeenShards = 16

// SeenSet is an exact, grow-only set of URLs scheduled during a run.
// URLs are spread over shards by xxhash, each guarded by its own mutex,
// so concurrent category walks contend only when they hit the same shard.
// It is safe for concurrent use by multiple goroutines.
type SeenSet struct {
	shards []seenShard
}

type seenShard struct {
	mu   sync.Mutex
	urls map[string]struct{}
}

// NewSeenSet creates an empty SeenSet with the given number of shards.
func NewSeenSet(shards int) *SeenSet {
	if shards <= 0 {
		shards = DefaultSeenShards
	}
	s := &SeenSet{shards: make([]seenShard, shards)}
	for i := range s.shards {
		s.shards[i].urls = make(map[string]struct{})
	}
	return s
}

// Offer adds url to the set.
// Returns true if url was not present before.
func (s *SeenSet) Offer(url string) bool {
	shard := &s.shards[xxhash.Sum64String(url)%uint64(len(s.shards))]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.urls[url]; ok {
		return false
	}
	shard.urls[url] = struct{}{}
	return true
}

// Len returns the number of URLs in the set.
func (s *SeenSet) Len() int {
	n := 0
	for i := range s.shards {
		shard := &s.shards[i]
		shard.mu.Lock()
		n += len(shard.urls)
		shard.mu.Unlock()
	}
	return n
}

// BloomSet is a memory-bounded URLSet backed by a Bloom filter.
// A false positive makes Offer reject a URL that was never offered,
// so an article may be skipped, but no URL is ever accepted twice.
// It is safe for concurrent use by multiple goroutines.
type BloomSet struct {
	mu     sync.Mutex
	filter *bloom.Filter
	count  int
}

// NewBloomSet creates a BloomSet sized for n expected URLs
// with the given false positive rate.
func NewBloomSet(n uint, fpRate float64) *BloomSet {
	return &BloomSet{filter: bloom.NewFilter(n, fpRate)}
}

// Offer adds url to the set.
// Returns true if url was definitely not present before.
func (s *BloomSet) Offer(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.TestAndAdd(url) {
		return false
	}
	s.count++
	return true
}

// Len returns the number of URLs accepted by Offer.
func (s *BloomSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
