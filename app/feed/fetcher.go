package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &Fetcher{
		parser:  parser,
		timeout: timeout,
	}
}

// Run retrieves and parses the feed at url. A single attempt, no
// retries: a transient failure surfaces to the caller and self-heals
// on the client's next refresh.
func (f *Fetcher) Run(ctx context.Context, url string) (*gofeed.Feed, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(url, timeoutCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	return parsed, nil
}
