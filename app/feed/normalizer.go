package feed

import (
	"cmp"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	maxItems             = 20
	maxTitleLength       = 100
	maxDescriptionLength = 200

	defaultTitle       = "Google News"
	defaultLink        = "https://news.google.com"
	defaultDescription = "Latest news from Google News"
	defaultItemTitle   = "No title"
	defaultItemLink    = "#"
	defaultItemText    = "No description"
	defaultSource      = "Google News"
	defaultLabel       = "top"
)

// Heuristic cleanup, not a parser: any <...> span is markup, and text
// before the first bullet separator is a source prefix. Keep these as-is
// so output stays identical on existing inputs.
var (
	markupTags   = regexp.MustCompile(`<[^>]*>`)
	sourcePrefix = regexp.MustCompile(`^[^•]*•\s*`)
)

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run assembles the response payload from a parsed feed: feed-level
// defaults, the first 20 items normalized in feed order, and the
// resolved category label.
func (n *Normalizer) Run(parsed *gofeed.Feed, category string, now time.Time) Payload {
	rawItems := parsed.Items
	if len(rawItems) > maxItems {
		rawItems = rawItems[:maxItems]
	}

	items := make([]Item, 0, len(rawItems))
	for _, item := range rawItems {
		items = append(items, n.NormalizeItem(item, now))
	}

	return Payload{
		Title:       cmp.Or(parsed.Title, defaultTitle),
		Link:        cmp.Or(parsed.Link, defaultLink),
		Description: cmp.Or(parsed.Description, defaultDescription),
		Items:       items,
		LastUpdated: now.Format(time.RFC3339),
		Category:    cmp.Or(category, defaultLabel),
	}
}

// NormalizeItem is total: every missing field is replaced by its
// default, so no single malformed item can abort a batch.
func (n *Normalizer) NormalizeItem(item *gofeed.Item, now time.Time) Item {
	normalized := Item{
		Title:       truncate(cmp.Or(item.Title, defaultItemTitle), maxTitleLength),
		Link:        cmp.Or(item.Link, defaultItemLink),
		PubDate:     n.pubDate(item, now),
		Description: truncate(n.cleanDescription(cmp.Or(item.Content, item.Description, defaultItemText)), maxDescriptionLength),
		Source:      n.source(item),
		Categories:  item.Categories,
	}

	if normalized.Categories == nil {
		normalized.Categories = []string{}
	}

	return normalized
}

func (n *Normalizer) pubDate(item *gofeed.Item, now time.Time) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format(time.RFC3339)
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.Format(time.RFC3339)
	}
	return now.Format(time.RFC3339)
}

func (n *Normalizer) cleanDescription(s string) string {
	s = markupTags.ReplaceAllString(s, "")
	s = sourcePrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func (n *Normalizer) source(item *gofeed.Item) string {
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}

	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 && item.DublinCoreExt.Creator[0] != "" {
		return item.DublinCoreExt.Creator[0]
	}

	return defaultSource
}

// truncate cuts s to max runes and appends an ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
