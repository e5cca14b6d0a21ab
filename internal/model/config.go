package model

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultEndpoint is the Federal Register query for uncorrected executive
// orders, oldest first.
const DefaultEndpoint = "https://www.federalregister.gov/api/v1/documents.json" +
	"?conditions[correction]=0" +
	"&conditions[presidential_document_type]=executive_order" +
	"&conditions[type][]=PRESDOCU" +
	"&order=oldest" +
	"&per_page=1000"

// DefaultHorizonDays caps how far into each term the comparison series
// extends, so short and long terms chart on the same axis.
const DefaultHorizonDays = 365

// Config is the complete runtime configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Cache  CacheConfig  `yaml:"cache"`
	Series SeriesConfig `yaml:"series"`
	Output OutputConfig `yaml:"output"`
	LLM    LLMConfig    `yaml:"llm"`
}

// APIConfig controls the Federal Register client.
type APIConfig struct {
	Endpoint          string        `yaml:"endpoint"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	PageWorkers       int           `yaml:"page_workers"`
}

// CacheConfig controls the layered corpus cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
}

// SeriesConfig controls the cumulative comparison series.
type SeriesConfig struct {
	HorizonDays int `yaml:"horizon_days"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	JSONPath string `yaml:"json_path"`
	Chart    bool   `yaml:"chart"`
}

// LLMConfig controls the optional narrative summary. Disabled unless a
// provider is set; never affects the computed numbers.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint:          DefaultEndpoint,
			Timeout:           2 * time.Minute,
			UserAgent:         "eopulse/0.1 (+https://github.com/ppiankov/eopulse)",
			MaxBodyBytes:      20_000_000,
			RequestsPerSecond: 2,
			Burst:             2,
			PageWorkers:       4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			DiskTTL:   24 * time.Hour,
			MemoryTTL: 10 * time.Minute,
		},
		Series: SeriesConfig{
			HorizonDays: DefaultHorizonDays,
		},
		Output: OutputConfig{
			Chart: true,
		},
		LLM: LLMConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// defaultCacheDir resolves to $XDG_CACHE_HOME/eopulse (or the OS
// equivalent), falling back to a hidden dir under $HOME.
func defaultCacheDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "eopulse")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eopulse-cache"
	}
	return filepath.Join(home, ".eopulse-cache")
}
