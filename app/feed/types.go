package feed

// Item is the normalized output shape of a single feed entry.
type Item struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pubDate"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Categories  []string `json:"categories"`
}

// Payload is the assembled response for one category fetch.
type Payload struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
	LastUpdated string `json:"lastUpdated"`
	Category    string `json:"category"`
}
