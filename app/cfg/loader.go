package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Upstream fetching
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Upstream fetch timeout in seconds"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"NewsProxy/1.0" description:"User agent string for upstream requests"`
	SourcesFile  string `long:"sources-file" env:"SOURCES_FILE" description:"Optional YAML file with category feed URL overrides"`

	// Cache
	CacheTTL int `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Response cache time-to-live in seconds"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache TTL must be positive, got %d", raw.CacheTTL)
	}
	if raw.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %d", raw.FetchTimeout)
	}

	cfg := &Cfg{
		Port:         raw.Port,
		FetchTimeout: raw.FetchTimeout,
		UserAgent:    raw.UserAgent,
		SourcesFile:  raw.SourcesFile,
		CacheTTL:     raw.CacheTTL,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
