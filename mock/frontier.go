package mock

import (
	"context"

	"github.com/fwojciec/newscrawl"
)

var _ newscrawl.URLSet = (*URLSet)(nil)

// URLSet is a mock implementation of newscrawl.URLSet.
type URLSet struct {
	OfferFn func(url string) bool
	LenFn   func() int
}

func (s *URLSet) Offer(url string) bool {
	return s.OfferFn(url)
}

func (s *URLSet) Len() int {
	return s.LenFn()
}

var _ newscrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newscrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
