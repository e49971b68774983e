package cache

import (
	"testing"
	"time"

	"newsproxy/app/feed"
)

func testPayload(category string) feed.Payload {
	return feed.Payload{
		Title:    "Test Feed",
		Link:     "https://example.com",
		Items:    []feed.Item{{Title: "Item 1"}},
		Category: category,
	}
}

func TestGetEmptyCache(t *testing.T) {
	c := New(5 * time.Minute)

	if _, ok := c.Get("", time.Now()); ok {
		t.Error("Expected miss on empty cache")
	}
}

func TestGetHitWithinTTL(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put("WORLD", testPayload("WORLD"), now)

	entry, ok := c.Get("WORLD", now.Add(4*time.Minute))
	if !ok {
		t.Fatal("Expected hit within TTL")
	}
	if entry.Category != "WORLD" {
		t.Errorf("Expected category 'WORLD', got '%s'", entry.Category)
	}
	if entry.Payload.Title != "Test Feed" {
		t.Errorf("Expected payload title 'Test Feed', got '%s'", entry.Payload.Title)
	}
	if !entry.StoredAt.Equal(now) {
		t.Errorf("Expected stored-at %v, got %v", now, entry.StoredAt)
	}
}

func TestGetMissOnCategorySwitch(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put("WORLD", testPayload("WORLD"), now)

	// A fresh entry for a different category is still a miss
	if _, ok := c.Get("BUSINESS", now.Add(time.Second)); ok {
		t.Error("Expected miss for a different category")
	}
}

func TestGetMissAfterExpiry(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put("", testPayload("top"), now)

	if _, ok := c.Get("", now.Add(5*time.Minute)); ok {
		t.Error("Expected miss at exactly TTL age")
	}
	if _, ok := c.Get("", now.Add(10*time.Minute)); ok {
		t.Error("Expected miss past TTL age")
	}
}

func TestGetHitJustBeforeExpiry(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put("", testPayload("top"), now)

	if _, ok := c.Get("", now.Add(5*time.Minute-time.Second)); !ok {
		t.Error("Expected hit just before TTL age")
	}
}

func TestPutReplacesSlot(t *testing.T) {
	c := New(5 * time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Put("WORLD", testPayload("WORLD"), now)
	c.Put("BUSINESS", testPayload("BUSINESS"), now.Add(time.Second))

	// The single slot now holds BUSINESS, so WORLD misses even though
	// its entry was still fresh when evicted
	if _, ok := c.Get("WORLD", now.Add(2*time.Second)); ok {
		t.Error("Expected miss for evicted category")
	}

	entry, ok := c.Get("BUSINESS", now.Add(2*time.Second))
	if !ok {
		t.Fatal("Expected hit for replacing category")
	}
	if entry.Payload.Category != "BUSINESS" {
		t.Errorf("Expected payload category 'BUSINESS', got '%s'", entry.Payload.Category)
	}
}
