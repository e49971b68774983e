package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsproxy/app/cache"
	"newsproxy/app/feed"
	"newsproxy/app/sources"
)

func NewHandler(registry *sources.Registry, fetcher Fetcher, ttlCache *cache.Cache) *Handler {
	return &Handler{
		registry:   registry,
		fetcher:    fetcher,
		normalizer: feed.NewNormalizer(),
		cache:      ttlCache,
		now:        time.Now,
	}
}

// GetNews serves the normalized feed for the requested category,
// from the cache when a fresh entry for the same category exists.
func (h *Handler) GetNews(c *gin.Context) {
	category := c.Query("category")
	now := h.now()

	if entry, ok := h.cache.Get(category, now); ok {
		age := int(now.Sub(entry.StoredAt).Seconds())
		slog.Debug("Serving from cache", "category", entry.Payload.Category, "age", age)

		c.JSON(http.StatusOK, cachedPayload{
			Payload:  entry.Payload,
			Cached:   true,
			CacheAge: age,
		})
		return
	}

	url := h.registry.Resolve(category)
	slog.Debug("Fetching feed", "category", category, "url", url)

	parsed, err := h.fetcher.Run(c.Request.Context(), url)
	if err != nil {
		// Failures never populate the cache; a stale-or-absent entry
		// persists for the next attempt.
		slog.Error("Feed fetch failed", "category", category, "url", url, "error", err)
		c.JSON(http.StatusInternalServerError, errorPayload{
			Error:   "Failed to fetch news",
			Message: err.Error(),
			Items:   []feed.Item{},
		})
		return
	}

	payload := h.normalizer.Run(parsed, category, now)
	h.cache.Put(category, payload, now)

	slog.Info("Feed fetched", "category", payload.Category, "items", len(payload.Items))

	c.JSON(http.StatusOK, payload)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":  time.Now().In(time.Local).Format(time.RFC3339),
		"categories": len(h.registry.Categories()),
	})
}
