// Package faqcache wraps a FAQRepository with a TTL snapshot cache so the
// matcher does not hit the database on every utterance. The catalogue changes
// rarely; a short TTL keeps edits visible without a refresh endpoint.
package faqcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voltassist/internal/chat/repository"
	"voltassist/internal/model"
)

const snapshotKey = "catalogue"

type cachedRepository struct {
	inner repository.FAQRepository
	cache *expirable.LRU[string, []model.FAQ]
}

var _ repository.FAQRepository = (*cachedRepository)(nil)

// New wraps inner with a snapshot cache holding the catalogue for ttl.
func New(inner repository.FAQRepository, ttl time.Duration) repository.FAQRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cachedRepository{
		inner: inner,
		cache: expirable.NewLRU[string, []model.FAQ](1, nil, ttl),
	}
}

func (c *cachedRepository) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	if faqs, ok := c.cache.Get(snapshotKey); ok {
		return faqs, nil
	}

	faqs, err := c.inner.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Add(snapshotKey, faqs)
	return faqs, nil
}
