package api

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"newsproxy/app/cache"
	"newsproxy/app/feed"
	"newsproxy/app/sources"
)

// Fetcher retrieves and parses an upstream feed URL.
type Fetcher interface {
	Run(ctx context.Context, url string) (*gofeed.Feed, error)
}

type Handler struct {
	registry   *sources.Registry
	fetcher    Fetcher
	normalizer *feed.Normalizer
	cache      *cache.Cache
	now        func() time.Time
}

// cachedPayload augments a cache hit with its age in whole seconds.
type cachedPayload struct {
	feed.Payload
	Cached   bool `json:"cached"`
	CacheAge int  `json:"cacheAge"`
}

// errorPayload is the fetch-failure contract. Items is always present
// and empty so clients can render an empty list without special cases.
type errorPayload struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Items   []feed.Item `json:"items"`
}
