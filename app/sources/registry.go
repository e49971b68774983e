package sources

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// The empty token selects the top stories feed.
const defaultCategory = ""

var defaultURLs = map[string]string{
	defaultCategory: "https://news.google.com/rss",
	"WORLD":         "https://news.google.com/rss/headlines/section/topic/WORLD",
	"NATION":        "https://news.google.com/rss/headlines/section/topic/NATION",
	"BUSINESS":      "https://news.google.com/rss/headlines/section/topic/BUSINESS",
	"TECHNOLOGY":    "https://news.google.com/rss/headlines/section/topic/TECHNOLOGY",
	"ENTERTAINMENT": "https://news.google.com/rss/headlines/section/topic/ENTERTAINMENT",
	"SPORTS":        "https://news.google.com/rss/headlines/section/topic/SPORTS",
	"SCIENCE":       "https://news.google.com/rss/headlines/section/topic/SCIENCE",
	"HEALTH":        "https://news.google.com/rss/headlines/section/topic/HEALTH",
}

// Registry maps category tokens to upstream feed URLs. The category
// set is fixed once the process has started.
type Registry struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewRegistry() *Registry {
	urls := make(map[string]string, len(defaultURLs))
	for category, url := range defaultURLs {
		urls[category] = url
	}
	return &Registry{urls: urls}
}

// LoadFile merges category URL overrides from a YAML file on top of
// the built-in defaults. Unknown categories in the file are added.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read sources file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse sources file: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for category, url := range overrides {
		if url == "" {
			return fmt.Errorf("empty URL for category '%s' in %s", category, path)
		}
		r.urls[category] = url
	}

	return nil
}

// Resolve returns the feed URL for a category token. Empty and
// unrecognized tokens resolve to the default URL, never an error.
func (r *Registry) Resolve(category string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if url, ok := r.urls[category]; ok {
		return url
	}
	return r.urls[defaultCategory]
}

// Categories returns the supported non-default tokens, sorted.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]string, 0, len(r.urls))
	for category := range r.urls {
		if category != defaultCategory {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)
	return categories
}
