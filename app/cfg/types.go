package cfg

type Cfg struct {
	// Server configuration
	Port string

	// Upstream fetching
	FetchTimeout int
	UserAgent    string
	SourcesFile  string

	// Cache
	CacheTTL int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
